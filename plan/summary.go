package plan

import "fmt"

// PlanSummary aggregates statistics about a computed study plan for final
// reporting. Useful for judging how balanced a plan is before committing to it.
type PlanSummary struct {
	NumLectures       int     // lectures covered by the plan
	NumDays           int     // study days in the plan
	TotalComplexity   int64   // the minimized complexity level
	PeakDay           int     // 1-based number of the costliest day
	PeakComplexity    int64   // cost of the costliest day
	MeanComplexity    float64 // average day cost
	SingleLectureDays int     // days holding exactly one lecture
	LongestDay        int     // most lectures assigned to any single day
}

// Summarize computes aggregate statistics from a StudyPlan.
// Safe for nil or empty plans (returns zero-value fields).
func Summarize(p *StudyPlan) *PlanSummary {
	summary := &PlanSummary{}
	if p == nil || len(p.Days) == 0 {
		return summary
	}

	summary.NumLectures = p.NumLectures()
	summary.NumDays = p.NumDays()
	summary.TotalComplexity = p.TotalComplexity

	for i, day := range p.Days {
		if day.Complexity > summary.PeakComplexity || summary.PeakDay == 0 {
			summary.PeakDay = i + 1
			summary.PeakComplexity = day.Complexity
		}
		if day.Lectures() == 1 {
			summary.SingleLectureDays++
		}
		if day.Lectures() > summary.LongestDay {
			summary.LongestDay = day.Lectures()
		}
	}
	summary.MeanComplexity = float64(p.TotalComplexity) / float64(len(p.Days))

	return summary
}

// Print displays the aggregated plan statistics.
func (s *PlanSummary) Print() {
	fmt.Println("=== Study Plan Summary ===")
	fmt.Printf("Lectures             : %d\n", s.NumLectures)
	fmt.Printf("Study Days           : %d\n", s.NumDays)
	fmt.Printf("Complexity Level     : %d\n", s.TotalComplexity)
	if s.NumDays > 0 {
		fmt.Printf("Peak Day             : day %d (complexity %d)\n", s.PeakDay, s.PeakComplexity)
		fmt.Printf("Mean Day Complexity  : %.2f\n", s.MeanComplexity)
		fmt.Printf("Single-Lecture Days  : %d\n", s.SingleLectureDays)
		fmt.Printf("Longest Day          : %d lectures\n", s.LongestDay)
	}
}
