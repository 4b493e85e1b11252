package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"parcelnorm/internal/util"
)

const (
	sheetEntities      = "Entities"
	sheetRelationships = "Relationships"
	sheetReview        = "Review"
)

// ExportWorkbook writes a summary of one run: every written entity, every
// relationship and the labels that fell back to a default.
func ExportWorkbook(res Result, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetEntities); err != nil {
		return err
	}
	for _, name := range []string{sheetRelationships, sheetReview} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	writeRows(f, sheetEntities, []string{"kind", "name", "file"}, len(res.Entities), func(i int) []any {
		e := res.Entities[i]
		return []any{e.Kind, e.Name, e.Name + ".json"}
	})
	writeRows(f, sheetRelationships, []string{"from", "to", "file"}, len(res.Relationships), func(i int) []any {
		e := res.Relationships[i]
		return []any{e.From, e.To, e.FileName() + ".json"}
	})
	writeRows(f, sheetReview, []string{"domain", "raw", "suggestion", "score"}, len(res.Review), func(i int) []any {
		r := res.Review[i]
		return []any{r.Domain, r.Raw, util.Deref(r.Suggestion), derefFloat(r.Score)}
	})

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func writeRows(f *excelize.File, sheet string, headers []string, n int, row func(i int) []any) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i := 0; i < n; i++ {
		for col, value := range row(i) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}
}

func derefFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
