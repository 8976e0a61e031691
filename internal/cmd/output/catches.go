package output

import (
	"io"
	"strings"

	"github.com/agentstation/catchlog/internal/views"
	"github.com/agentstation/catchlog/pkg/catches"
)

// CatchesTable lays out catch cards one per row. Wide adds the less used
// columns and the notes.
func CatchesTable(cards []views.CardView, wide bool) Data {
	headers := []string{"ID", "Espèce", "Date", "Taille (cm)", "Poids (kg)", "Remise à l'eau", "Lieu"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignCenter, AlignLeft}
	if wide {
		headers = append(headers, "Technique", "Météo", "Eau (°C)", "Notes")
		align = append(align, AlignLeft, AlignLeft, AlignRight, AlignLeft)
	}

	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		row := []string{c.ID, c.Species, c.CapturedAt, c.LengthCm, c.WeightKg, c.Released, c.Location}
		if wide {
			row = append(row, c.Technique, c.Weather, c.WaterTempC, strings.Join(c.Notes, "; "))
		}
		rows = append(rows, row)
	}
	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// CatchDetail lays out one card as property/value rows.
func CatchDetail(c views.CardView) Data {
	return Data{
		Headers: []string{"Propriété", "Valeur"},
		Rows: [][]string{
			{"ID", c.ID},
			{"Espèce", c.Species},
			{"Date", c.CapturedAt},
			{"Taille (cm)", c.LengthCm},
			{"Poids (kg)", c.WeightKg},
			{"Remise à l'eau", c.Released},
			{"Technique", c.Technique},
			{"Lieu", c.Location},
			{"Météo", c.Weather},
			{"Eau (°C)", c.WaterTempC},
			{"Notes", strings.Join(c.Notes, "\n")},
		},
	}
}

// SpeciesTable lists species names.
func SpeciesTable(list []catches.Species) Data {
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{s.Name})
	}
	return Data{Headers: []string{"Espèce"}, Rows: rows}
}

// Write renders a result: table formats draw the prepared layout, JSON and
// YAML encode raw.
func Write(w io.Writer, format Format, table Data, raw any) error {
	switch format {
	case FormatTable, FormatWide, "":
		return NewFormatter(FormatTable).Format(w, table)
	case FormatJSON, FormatYAML:
		return NewFormatter(format).Format(w, raw)
	}
	_, err := ParseFormat(string(format))
	return err
}
