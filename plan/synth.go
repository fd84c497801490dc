package plan

import (
	"fmt"
	"math/rand"
)

// Synthetic complexity profiles. Two generations with the same profile, seed,
// and bounds produce bit-for-bit identical sequences.
const (
	// ProfileUniform draws every complexity independently across the range.
	ProfileUniform = "uniform"

	// ProfileRamp climbs toward the heavy end of the range as the course
	// progresses, with a little jitter.
	ProfileRamp = "ramp"

	// ProfileSpike keeps most lectures light and makes roughly one in six
	// heavy, the shape that rewards isolating heavy lectures on their own days.
	ProfileSpike = "spike"

	// ProfileExamWeek keeps the course light until the final stretch, then
	// draws the last sixth of lectures from the heavy end of the range.
	ProfileExamWeek = "examweek"
)

// validProfiles maps accepted synthetic profile names.
var validProfiles = map[string]bool{
	ProfileUniform:  true,
	ProfileRamp:     true,
	ProfileSpike:    true,
	ProfileExamWeek: true,
}

// IsValidProfile reports whether name is a recognized synthetic profile.
func IsValidProfile(name string) bool {
	return validProfiles[name]
}

// GenerateComplexities produces count lecture complexities within [low, high]
// using the named profile and a seeded RNG.
func GenerateComplexities(profile string, seed int64, count int, low, high int64) ([]int64, error) {
	if !IsValidProfile(profile) {
		return nil, fmt.Errorf("unknown profile %q; valid: uniform, ramp, spike, examweek", profile)
	}
	if count < 1 {
		return nil, fmt.Errorf("lecture count must be positive, got %d", count)
	}
	if low < 0 || high < low {
		return nil, fmt.Errorf("complexity bounds must satisfy 0 <= low <= high, got [%d, %d]", low, high)
	}

	rng := rand.New(rand.NewSource(seed))
	span := high - low
	out := make([]int64, count)

	switch profile {
	case ProfileUniform:
		for i := range out {
			out[i] = low + rng.Int63n(span+1)
		}
	case ProfileRamp:
		for i := range out {
			base := low
			if count > 1 {
				base += span * int64(i) / int64(count-1)
			}
			v := base + rng.Int63n(span/4+1)
			if v > high {
				v = high
			}
			out[i] = v
		}
	case ProfileSpike:
		for i := range out {
			if rng.Intn(6) == 0 {
				out[i] = high - rng.Int63n(span/4+1)
			} else {
				out[i] = low + rng.Int63n(span/4+1)
			}
		}
	case ProfileExamWeek:
		crunch := count / 6
		if crunch < 1 {
			crunch = 1
		}
		for i := range out {
			if i >= count-crunch {
				out[i] = high - rng.Int63n(span/4+1)
			} else {
				out[i] = low + rng.Int63n(span/4+1)
			}
		}
	}

	return out, nil
}
