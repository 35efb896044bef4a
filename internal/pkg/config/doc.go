// Package config loads the settings of the FKBA services.
//
// Settings come from a YAML file and may be overridden through environment
// variables prefixed with FKBA_. The legacy variable names used by earlier
// deployments (ASAAS_API_KEY, PORT, ...) are bound as well. Every settings
// struct validates itself before use.
package config
