package plan

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"
)

// unreachable marks cost-table entries not yet proven reachable by any valid
// partition. Complexities are validated non-negative at the input boundary, so
// every real total stays strictly below it.
const unreachable = int64(math.MaxInt64)

var (
	// ErrNoLectures indicates an empty complexity sequence.
	ErrNoLectures = errors.New("plan: no lectures to schedule")

	// ErrInvalidDayCount indicates a day count outside 1..len(sequence).
	// Fewer days than one is meaningless; more days than lectures cannot all
	// be non-empty.
	ErrInvalidDayCount = errors.New("plan: day count must be between 1 and the number of lectures")
)

// MinTotalComplexity returns the minimum achievable complexity level when the
// sequence is split into exactly days contiguous, non-empty groups. A group's
// cost is its maximum element; the level is the sum of group costs.
//
// The table entry (i, j) holds the best level for the prefix ending at lecture
// i split into j days. Row j=1 is the running maximum of the prefix. For j>=2
// the last day's start k walks from i backward while a running maximum of
// complexities[k..i] is maintained, so each (i, j) pair costs O(i) instead of
// O(i²). Overall O(n²·d) time, O(n·d) space.
func MinTotalComplexity(complexities []int64, days int) (int64, error) {
	table, err := fillCostTable(complexities, days)
	if err != nil {
		return 0, err
	}
	return table[len(complexities)-1][days], nil
}

// Solve computes the minimum complexity level like MinTotalComplexity and
// additionally reconstructs one optimal partition as a StudyPlan. When several
// boundary placements tie, the one with the shortest final day wins, so the
// returned plan is deterministic.
func Solve(complexities []int64, days int) (*StudyPlan, error) {
	table, err := fillCostTable(complexities, days)
	if err != nil {
		return nil, err
	}

	n := len(complexities)
	logrus.Debugf("solved %d lectures over %d days: complexity level %d", n, days, table[n-1][days])

	// Walk the table back from (n-1, days). For each day the start index is
	// re-derived by replaying the backward maximum scan until the recorded
	// total is met, so no parent table is kept alongside the costs.
	spans := make([]DaySpan, days)
	i := n - 1
	for j := days; j >= 2; j-- {
		want := table[i][j]
		dayMax := complexities[i]
		for k := i; ; k-- {
			if complexities[k] > dayMax {
				dayMax = complexities[k]
			}
			prev := table[k-1][j-1]
			if prev != unreachable && prev+dayMax == want {
				spans[j-1] = DaySpan{First: k, Last: i, Complexity: dayMax}
				i = k - 1
				break
			}
		}
	}
	// The first day is whatever prefix remains, and its cost sits in row j=1.
	spans[0] = DaySpan{First: 0, Last: i, Complexity: table[i][1]}

	return &StudyPlan{Days: spans, TotalComplexity: table[n-1][days]}, nil
}

// fillCostTable builds the (position, day count) cost table bottom-up.
// Entries start unreachable; column 0 is unused so day counts index directly.
func fillCostTable(complexities []int64, days int) ([][]int64, error) {
	n := len(complexities)
	if n == 0 {
		return nil, ErrNoLectures
	}
	if days < 1 || days > n {
		return nil, ErrInvalidDayCount
	}

	table := make([][]int64, n)
	for i := range table {
		row := make([]int64, days+1)
		for j := range row {
			row[j] = unreachable
		}
		table[i] = row
	}

	// One day covering 0..i costs the running maximum of the prefix.
	running := complexities[0]
	for i := 0; i < n; i++ {
		if complexities[i] > running {
			running = complexities[i]
		}
		table[i][1] = running
	}

	// Splitting fewer than j lectures into j non-empty days is impossible,
	// hence i starts at j-1. The candidate at boundary k charges the maximum
	// of complexities[k..i] on top of the best (j-1)-day split of the prefix
	// ending at k-1, provided that prefix entry is reachable.
	for j := 2; j <= days; j++ {
		for i := j - 1; i < n; i++ {
			dayMax := complexities[i]
			best := unreachable
			for k := i; k >= j-1; k-- {
				if complexities[k] > dayMax {
					dayMax = complexities[k]
				}
				prev := table[k-1][j-1]
				if prev == unreachable {
					continue
				}
				if cand := prev + dayMax; cand < best {
					best = cand
				}
			}
			table[i][j] = best
		}
	}

	return table, nil
}
