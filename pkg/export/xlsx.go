// Package export renders one finished notation as a two-sheet spreadsheet:
// every note on the first sheet, the per-condition synthesis on the second.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Kouaj/Notations-sub000/entities"
)

const (
	sheetNotes    = "Notes"
	sheetSynthese = "Synthèse"
)

// Workbook builds the export file for one notation. Caller owns closing it.
func Workbook(n *entities.Notation) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetNotes); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetSynthese); err != nil {
		return nil, err
	}

	head := append([]string{"N°"}, conditionHeaders()...)
	head = append(head, "Partie")
	if err := setRow(f, sheetNotes, 1, head); err != nil {
		return nil, err
	}
	for i, note := range n.Notes {
		row := []any{i + 1}
		for _, cond := range entities.Conditions {
			row = append(row, note.Reading(cond))
		}
		row = append(row, string(note.Partie))
		if err := setRowAny(f, sheetNotes, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := setRow(f, sheetSynthese, 1, []string{"Condition", "Fréquence (%)", "Intensité"}); err != nil {
		return nil, err
	}
	for i, cond := range entities.Conditions {
		row := []any{
			title(cond),
			fmt.Sprintf("%.2f", n.Frequence[cond]),
			fmt.Sprintf("%.2f", n.Intensite[cond]),
		}
		if err := setRowAny(f, sheetSynthese, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Filename derives the file name from parcelle name and observation date.
func Filename(n *entities.Notation) string {
	name := strings.TrimSpace(n.ParcelleName)
	if name == "" {
		name = "notation"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("%s_%s.xlsx", name, n.Date.Format("2006-01-02"))
}

func conditionHeaders() []string {
	out := make([]string, len(entities.Conditions))
	for i, c := range entities.Conditions {
		out[i] = title(c)
	}
	return out
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func setRow(f *excelize.File, sheet string, row int, vals []string) error {
	anys := make([]any, len(vals))
	for i, v := range vals {
		anys[i] = v
	}
	return setRowAny(f, sheet, row, anys)
}

func setRowAny(f *excelize.File, sheet string, row int, vals []any) error {
	for i, v := range vals {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
