package parser

import (
	"testing"

	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected models.CellRange
		wantErr  bool
	}{
		{"I45:I140", models.CellRange{R1: 45, C1: 9, R2: 140, C2: 9}, false},
		{"$I$45:$I$140", models.CellRange{R1: 45, C1: 9, R2: 140, C2: 9}, false},
		{"A1:E9", models.CellRange{R1: 1, C1: 1, R2: 9, C2: 5}, false},
		{"I45", models.CellRange{}, true},
		{"I140:I45", models.CellRange{}, true},
		{"1A:B2", models.CellRange{}, true},
	}

	for _, tt := range tests {
		result, err := ParseRange(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRange(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}
