// Package derive turns normalized collections into the views the admin UI
// renders: per-entity grade averages, free-text filtering and stable
// sorting. It is a pure derivation layer — it never fails and never mutates
// its inputs; missing fields degrade to empty/zero values for comparison.
package derive

import (
	"fmt"

	"github.com/okandemir/campusgate/internal/app/models"
)

// NoAverageDisplay is the display value for an entity with no graded entries
const NoAverageDisplay = "-"

type bucket struct {
	sum   float64
	count int
}

// GradeStats holds running sum/count per student and per module, built from
// a single scan of a grade list. Lookups are O(1) afterwards.
type GradeStats struct {
	students map[int64]*bucket
	modules  map[int64]*bucket
}

// ComputeGradeStats scans the grade list once and accumulates sums and
// counts keyed by student id and module id. A grade with a null score or a
// missing student/module reference is skipped entirely: it neither counts
// as zero nor biases the average.
func ComputeGradeStats(grades []models.Grade) *GradeStats {
	stats := &GradeStats{
		students: make(map[int64]*bucket),
		modules:  make(map[int64]*bucket),
	}

	for _, g := range grades {
		if g.Score == nil {
			continue
		}
		if g.Student == nil || g.Student.ID == 0 || g.Module == nil || g.Module.ID == 0 {
			continue
		}

		accumulate(stats.students, g.Student.ID, *g.Score)
		accumulate(stats.modules, g.Module.ID, *g.Score)
	}

	return stats
}

func accumulate(m map[int64]*bucket, id int64, score float64) {
	b, ok := m[id]
	if !ok {
		b = &bucket{}
		m[id] = b
	}
	b.sum += score
	b.count++
}

// StudentAverage returns the unrounded average score for a student.
// ok is false when the student has no graded entries.
func (s *GradeStats) StudentAverage(id int64) (avg float64, ok bool) {
	return average(s.students, id)
}

// ModuleAverage returns the unrounded average score for a module.
// ok is false when the module has no graded entries.
func (s *GradeStats) ModuleAverage(id int64) (avg float64, ok bool) {
	return average(s.modules, id)
}

func average(m map[int64]*bucket, id int64) (float64, bool) {
	b, ok := m[id]
	if !ok || b.count == 0 {
		return 0, false
	}
	return b.sum / float64(b.count), true
}

// FormatAverage renders an average rounded to one decimal place, or the
// no-data sentinel when ok is false. The stored average stays unrounded.
func FormatAverage(avg float64, ok bool) string {
	if !ok {
		return NoAverageDisplay
	}
	return fmt.Sprintf("%.1f", avg)
}
