package plan

// SweepRow is the outcome for one candidate day count.
type SweepRow struct {
	Days            int   `yaml:"days" json:"days"`
	TotalComplexity int64 `yaml:"complexity_level" json:"complexity_level"`
}

// Sweep computes the minimum complexity level for every day count from 1 to
// maxDays (maxDays within 1..len(complexities)). A single table fill serves
// every row: the final table row already holds the best level for each smaller
// day count, so the sweep costs no more than one maxDays solve.
//
// Row costs never decrease with the day count: splitting any day in two
// replaces one maximum with two that sum to at least as much. The first row is
// the sequence maximum and the len(complexities) row is the sequence sum.
func Sweep(complexities []int64, maxDays int) ([]SweepRow, error) {
	table, err := fillCostTable(complexities, maxDays)
	if err != nil {
		return nil, err
	}

	last := table[len(complexities)-1]
	rows := make([]SweepRow, maxDays)
	for d := 1; d <= maxDays; d++ {
		rows[d-1] = SweepRow{Days: d, TotalComplexity: last[d]}
	}
	return rows, nil
}
