package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range string like $I$45:$I$140.
func ParseRange(rangeStr string) (models.CellRange, error) {
	// Remove $ signs
	clean := strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(clean, ":")
	if len(parts) != 2 {
		return models.CellRange{}, fmt.Errorf("invalid range %q", rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}

	if endRow < startRow || endCol < startCol {
		return models.CellRange{}, fmt.Errorf("invalid range %q: end before start", rangeStr)
	}

	return models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}

// cellName formats 1-based coordinates, ignoring errors for out-of-range input.
func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
