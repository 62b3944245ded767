package models

import (
	"testing"
)

func TestWellPositionRoundTrip(t *testing.T) {
	for i := 0; i < Wells; i++ {
		pos := PositionFromIndex(i)
		if pos.Index() != i {
			t.Errorf("PositionFromIndex(%d).Index() = %d", i, pos.Index())
		}
		parsed, err := ParseWellPosition(pos.String())
		if err != nil {
			t.Fatalf("ParseWellPosition(%q): %v", pos.String(), err)
		}
		if parsed != pos {
			t.Errorf("ParseWellPosition(%q) = %+v, expected %+v", pos.String(), parsed, pos)
		}
	}
}

func TestWellPositionGroups(t *testing.T) {
	tests := []struct {
		label    string
		index    int
		span     int
		group    int
		groupTag string
		standard bool
	}{
		{"A1", 0, 0, 0, "A1-3", true},
		{"A3", 2, 0, 0, "A1-3", true},
		{"A4", 3, 1, 1, "A4-6", false},
		{"B5", 16, 1, 5, "B4-6", false},
		{"G2", 73, 0, 24, "G1-3", true},
		{"H1", 84, 0, 28, "H1-3", false},
		{"H12", 95, 3, 31, "H10-12", false},
	}

	for _, tt := range tests {
		pos, err := ParseWellPosition(tt.label)
		if err != nil {
			t.Fatalf("ParseWellPosition(%q): %v", tt.label, err)
		}
		if pos.Index() != tt.index || pos.Span() != tt.span || pos.Group() != tt.group {
			t.Errorf("%s: index/span/group = %d/%d/%d, expected %d/%d/%d",
				tt.label, pos.Index(), pos.Span(), pos.Group(), tt.index, tt.span, tt.group)
		}
		if pos.GroupLabel() != tt.groupTag {
			t.Errorf("%s: GroupLabel() = %q, expected %q", tt.label, pos.GroupLabel(), tt.groupTag)
		}
		if pos.IsStandard() != tt.standard {
			t.Errorf("%s: IsStandard() = %v, expected %v", tt.label, pos.IsStandard(), tt.standard)
		}
	}
}

func TestParseWellPositionInvalid(t *testing.T) {
	for _, s := range []string{"", "A", "I1", "A0", "A13", "1A", "AA"} {
		if _, err := ParseWellPosition(s); err == nil {
			t.Errorf("ParseWellPosition(%q) expected error", s)
		}
	}
}

func TestReading(t *testing.T) {
	if r := Determined(1.5); !r.Valid || r.String() != "1.5" || r.CellValue() != 1.5 {
		t.Errorf("Determined(1.5) = %+v", r)
	}
	var zero float64
	if r := Determined(1 / zero); r.Valid {
		t.Errorf("Determined(+Inf) should be undetermined")
	}
	if r := Undetermined(); r.String() != UndeterminedLabel || r.CellValue() != UndeterminedLabel {
		t.Errorf("Undetermined() renders as %q", r.String())
	}
}
