// Package plate maps plate coordinates onto the loading layout and prunes
// blank and standard wells from the derived records.
package plate

import (
	"fmt"

	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
)

// Wells builds one record per well in row-major order, tagging each with the
// test name of its triplicate group.
func Wells(ct []models.Reading, layout models.PlateLayout) ([]models.Well, error) {
	if len(ct) != models.Wells {
		return nil, fmt.Errorf("%w: expected %d CT readings, got %d",
			models.ErrMalformedInput, models.Wells, len(ct))
	}

	wells := make([]models.Well, models.Wells)
	for i := range wells {
		pos := models.PositionFromIndex(i)
		wells[i] = models.Well{
			Position: pos,
			TestName: layout.Name(pos.Row, pos.Span()),
			CT:       ct[i],
		}
	}
	return wells, nil
}

// Triplicates groups the records of a full plate. The returned groups point
// into wells, so later updates through either view are shared.
func Triplicates(wells []models.Well) ([]*models.Triplicate, error) {
	if len(wells) != models.Wells {
		return nil, fmt.Errorf("%w: expected %d wells, got %d",
			models.ErrMalformedInput, models.Wells, len(wells))
	}

	groups := make([]*models.Triplicate, models.Groups)
	for g := range groups {
		lead := wells[g*models.GroupSize].Position
		t := &models.Triplicate{
			Group:    g,
			Row:      lead.Row,
			Span:     lead.Span(),
			TestName: wells[g*models.GroupSize].TestName,
		}
		for k := 0; k < models.GroupSize; k++ {
			t.Wells = append(t.Wells, &wells[g*models.GroupSize+k])
		}
		groups[g] = t
	}
	return groups, nil
}

// PruneBlank returns the wells whose group has a layout name.
func PruneBlank(wells []models.Well) []models.Well {
	kept := make([]models.Well, 0, len(wells))
	for _, w := range wells {
		if w.Blank() {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}

// Summary returns one named row per tested group. Blank groups and the
// dilution series are left out; the device control is always kept.
func Summary(groups []*models.Triplicate) []models.NamedResultRow {
	var rows []models.NamedResultRow
	for _, t := range groups {
		if t.Blank() || t.IsStandard() {
			continue
		}
		rows = append(rows, models.NamedResultRow{
			TestName:     t.TestName,
			AverageTiter: t.AverageTiter,
			SDTiter:      t.SDTiter,
		})
	}
	return rows
}

// ResultRows assembles the per-well sheet rows. Group averages are attached to
// the first well of each triplicate.
func ResultRows(wells []models.Well, groups []*models.Triplicate) []models.ResultRow {
	rows := make([]models.ResultRow, 0, len(wells))
	for _, w := range wells {
		row := models.ResultRow{
			Position:    w.Position,
			CT:          w.CT,
			LogCopies:   w.LogCopies,
			CopiesPerML: w.CopiesPerML,
			Titer:       w.Titer,
			Outlier:     w.CTOutlier,
		}
		if (w.Position.Column-1)%models.GroupSize == 0 {
			t := groups[w.Position.Group()]
			avgCT, avgTiter, sdTiter := t.AverageCT, t.AverageTiter, t.SDTiter
			row.AverageCT = &avgCT
			row.AverageTiter = &avgTiter
			row.SDTiter = &sdTiter
		}
		rows = append(rows, row)
	}
	return rows
}
