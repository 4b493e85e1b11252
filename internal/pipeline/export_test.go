package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"parcelnorm/internal"
	"parcelnorm/internal/relate"
	"parcelnorm/internal/util"
)

func TestExportWorkbook(t *testing.T) {
	res := Result{
		Entities:      []EntityRef{{Kind: "property", Name: "property"}, {Kind: "tax", Name: "tax_1"}},
		Relationships: []relate.Edge{{From: "property", To: "tax_1"}},
		Review: []internal.ReviewRow{
			{Domain: "deed_type", Raw: "AFFIDAVIT", Suggestion: util.StringPtr("WARRANTY DEED"), Score: util.FloatPtr(0.61)},
			{Domain: "space_type", Raw: "ZZQ"},
		},
	}
	path := filepath.Join(t.TempDir(), "out", "run.xlsx")
	require.NoError(t, ExportWorkbook(res, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetEntities)
	require.NoError(t, err)
	require.Equal(t, []string{"tax", "tax_1", "tax_1.json"}, rows[2])

	rows, err = f.GetRows(sheetRelationships)
	require.NoError(t, err)
	require.Equal(t, "relationship_property_to_tax_1.json", rows[1][2])

	suggestion, err := f.GetCellValue(sheetReview, "C2")
	require.NoError(t, err)
	require.Equal(t, "WARRANTY DEED", suggestion)

	for _, cell := range []string{"C3", "D3"} {
		v, err := f.GetCellValue(sheetReview, cell)
		require.NoError(t, err)
		require.Empty(t, v, "no suggestion leaves %s blank", cell)
	}
}
