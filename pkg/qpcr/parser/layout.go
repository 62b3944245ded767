package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
)

// ExtractLayout finds the plate-loading table in rows and returns the test name
// of every triplicate group. The table has a header row naming the four
// column groups ("1-3", "4-6", "7-9", "10-12") followed by the eight plate
// rows.
func ExtractLayout(sheetName string, rows [][]string) (models.PlateLayout, error) {
	var layout models.PlateLayout

	headerRow, columns := findHeader(rows)
	if headerRow < 0 {
		return layout, models.NewInputError(sheetName, "",
			fmt.Errorf("%w: no layout header with columns %s", models.ErrMalformedInput,
				strings.Join(models.SpanLabels[:], ", ")))
	}

	if n := len(rows) - headerRow - 1; n < models.Rows {
		return layout, models.NewInputError(sheetName, "",
			fmt.Errorf("%w: layout has %d plate rows, need %d", models.ErrMalformedInput, n, models.Rows))
	}

	labelCol := columns[0] - 1
	for r := 0; r < models.Rows; r++ {
		rowIdx := headerRow + 1 + r
		row := rows[rowIdx]

		if labelCol >= 0 && labelCol < len(row) {
			label := strings.ToUpper(strings.TrimSpace(row[labelCol]))
			if len(label) == 1 && label[0] >= 'A' && label[0] <= 'H' && int(label[0]-'A') != r {
				return layout, models.NewInputError(sheetName, cellName(labelCol+1, rowIdx+1),
					fmt.Errorf("%w: expected row %c, found %s", models.ErrMalformedInput, 'A'+r, label))
			}
		}

		for span, col := range columns {
			if col < len(row) {
				layout.Names[r][span] = strings.TrimSpace(row[col])
			}
		}
	}

	return layout, nil
}

// findHeader returns the header row index and the column index of each span
// label, or -1 when no row carries all four labels.
func findHeader(rows [][]string) (int, []int) {
	for rowIdx, row := range rows {
		columns := make([]int, models.Spans)
		found := 0
		for span, label := range models.SpanLabels {
			columns[span] = -1
			for colIdx, cell := range row {
				if normalizeHeader(cell) == label {
					columns[span] = colIdx
					found++
					break
				}
			}
		}
		if found == models.Spans {
			return rowIdx, columns
		}
	}
	return -1, nil
}

func normalizeHeader(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	s = strings.ReplaceAll(s, "–", "-")
	return s
}
