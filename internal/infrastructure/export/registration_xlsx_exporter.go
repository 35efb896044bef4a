package export

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"

	"github.com/xuri/excelize/v2"
)

const (
	registrationSheet = "Inscricoes"
	maxColumnWidth    = 40
	createdAtLayout   = "2006-01-02 15:04"
)

var registrationHeaders = []string{
	"Criado em",
	"Evento",
	"Atleta",
	"Sexo",
	"Peso (kg)",
	"Total de lutas",
	"Academia",
	"Professor",
	"Regra",
	"Modalidade",
	"Status",
	"WhatsApp",
	"CPF",
}

// RegistrationXLSXExporter writes registrations to an Excel workbook.
type RegistrationXLSXExporter struct {
	location *time.Location
}

// NewRegistrationXLSXExporter renders creation times in loc.
func NewRegistrationXLSXExporter(loc *time.Location) *RegistrationXLSXExporter {
	if loc == nil {
		loc = time.UTC
	}
	return &RegistrationXLSXExporter{location: loc}
}

func (e *RegistrationXLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *RegistrationXLSXExporter) Extension() string {
	return "xlsx"
}

// Export writes one header row and one row per registration. Columns are
// sized to their longest value plus two, capped at 40.
func (e *RegistrationXLSXExporter) Export(registrations []*events.AthleteRegistration) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), registrationSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	widths := make([]int, len(registrationHeaders))
	track := func(values []interface{}) {
		for i, v := range values {
			if v == nil {
				continue
			}
			if n := utf8.RuneCountInString(fmt.Sprint(v)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	header := make([]interface{}, len(registrationHeaders))
	for i, h := range registrationHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(registrationSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	track(header)

	for i, reg := range registrations {
		row := e.row(reg)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(registrationSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
		track(row)
	}

	for i, width := range widths {
		column, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(registrationSheet, column, column, float64(min(width+2, maxColumnWidth))); err != nil {
			return nil, fmt.Errorf("failed to size column %s: %w", column, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *RegistrationXLSXExporter) row(reg *events.AthleteRegistration) []interface{} {
	var eventTitle, academy, coach string
	if reg.Event != nil {
		eventTitle = reg.Event.Title
	}
	if reg.Academy != nil {
		academy = reg.Academy.Name
	}
	if reg.Coach != nil {
		coach = reg.Coach.FullName
	}
	weight, _ := reg.WeightKg.Float64()

	return []interface{}{
		reg.CreatedAt.In(e.location).Format(createdAtLayout),
		eventTitle,
		reg.AthleteName,
		reg.Sex.Label(),
		weight,
		reg.TotalFights(),
		academy,
		coach,
		reg.RuleSet.Label(),
		reg.Modality.Label(),
		reg.Status.Label(),
		reg.WhatsApp,
		reg.CPFValue(),
	}
}
