package v1

// BasePath is the prefix of every version 1 route.
const BasePath = "/api/v1/fkba"

// PanelPath is the prefix of the staff routes below BasePath.
const PanelPath = "/painel"
