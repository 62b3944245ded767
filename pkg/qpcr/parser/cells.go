// Package parser reads the raw CT export and the plate layout out of a
// workbook.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
)

// DefaultCTRange is where the instrument export places the 96 CT values.
const DefaultCTRange = "I45:I140"

// undeterminedTokens are instrument outputs meaning "no amplification".
var undeterminedTokens = map[string]bool{
	"":             true,
	"undetermined": true,
	"undet":        true,
	"n/a":          true,
	"na":           true,
	"nan":          true,
	"no ct":        true,
	"-":            true,
}

// ExtractCT reads one CT reading per well from a single-column range of rows.
// Missing rows and cells count as undetermined.
func ExtractCT(sheetName string, rows [][]string, rng models.CellRange) ([]models.Reading, error) {
	if rng.Cols() != 1 {
		return nil, models.NewInputError(sheetName, "",
			fmt.Errorf("%w: CT range must span one column, got %d", models.ErrMalformedInput, rng.Cols()))
	}
	if rng.Rows() != models.Wells {
		return nil, models.NewInputError(sheetName, "",
			fmt.Errorf("%w: CT range must span %d rows, got %d", models.ErrMalformedInput, models.Wells, rng.Rows()))
	}

	result := make([]models.Reading, 0, models.Wells)
	for rowNum := rng.R1; rowNum <= rng.R2; rowNum++ {
		var value string
		if rowIdx := rowNum - 1; rowIdx < len(rows) && rng.C1-1 < len(rows[rowIdx]) {
			value = rows[rowIdx][rng.C1-1]
		}

		r, err := parseCT(value)
		if err != nil {
			return nil, models.NewInputError(sheetName, cellName(rng.C1, rowNum), err)
		}
		result = append(result, r)
	}

	return result, nil
}

// parseCT parses a CT cell. Recognised "no amplification" tokens become an
// undetermined reading; any other text is malformed. The instrument writes a
// CT of 0 for wells that never crossed threshold, so 0 is undetermined too.
func parseCT(s string) (models.Reading, error) {
	s = strings.TrimSpace(s)
	if undeterminedTokens[strings.ToLower(s)] {
		return models.Undetermined(), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return models.Reading{}, fmt.Errorf("%w: CT value %q is not a number", models.ErrMalformedInput, s)
	}
	r := models.Determined(f)
	if !r.Valid || f < 0 {
		return models.Reading{}, fmt.Errorf("%w: CT value %q out of range", models.ErrMalformedInput, s)
	}
	if f == 0 {
		return models.Undetermined(), nil
	}
	return r, nil
}
