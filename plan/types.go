package plan

// DaySpan is a contiguous, non-empty run of lectures assigned to one study day.
// First and Last are positions in the input sequence, 0-based and inclusive.
// Complexity is the day's cost: the maximum complexity among its lectures.
type DaySpan struct {
	First      int   `yaml:"first" json:"first"`
	Last       int   `yaml:"last" json:"last"`
	Complexity int64 `yaml:"complexity" json:"complexity"`
}

// Lectures returns the number of lectures covered by the span.
func (s DaySpan) Lectures() int {
	return s.Last - s.First + 1
}

// StudyPlan is one optimal partition of a lecture sequence into study days.
// Days are ordered and cover the whole sequence contiguously: Days[0].First is 0,
// each span starts right after its predecessor, and the final span ends at the
// last lecture. TotalComplexity is the sum of day costs, minimized by the solver.
type StudyPlan struct {
	Days            []DaySpan `yaml:"days" json:"days"`
	TotalComplexity int64     `yaml:"complexity_level" json:"complexity_level"`
}

// NumDays returns the number of study days in the plan.
func (p *StudyPlan) NumDays() int {
	return len(p.Days)
}

// NumLectures returns the number of lectures covered by the plan.
func (p *StudyPlan) NumLectures() int {
	if len(p.Days) == 0 {
		return 0
	}
	return p.Days[len(p.Days)-1].Last + 1
}
