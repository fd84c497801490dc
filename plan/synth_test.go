package plan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allProfiles = []string{ProfileUniform, ProfileRamp, ProfileSpike, ProfileExamWeek}

func TestIsValidProfile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{ProfileUniform, true},
		{ProfileRamp, true},
		{ProfileSpike, true},
		{ProfileExamWeek, true},
		{"", false},
		{"gauss", false},
		{"Uniform", false},
	}

	for _, tt := range tests {
		if got := IsValidProfile(tt.name); got != tt.want {
			t.Errorf("IsValidProfile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestGenerateComplexities_Deterministic(t *testing.T) {
	// Same profile, seed, and bounds must produce identical sequences
	for _, profile := range allProfiles {
		t.Run(profile, func(t *testing.T) {
			a, err := GenerateComplexities(profile, 42, 100, 5, 500)
			require.NoError(t, err)
			b, err := GenerateComplexities(profile, 42, 100, 5, 500)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		})
	}
}

func TestGenerateComplexities_SeedChangesSequence(t *testing.T) {
	a, err := GenerateComplexities(ProfileUniform, 1, 100, 0, 1000)
	require.NoError(t, err)
	b, err := GenerateComplexities(ProfileUniform, 2, 100, 0, 1000)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateComplexities_WithinBounds(t *testing.T) {
	for _, profile := range allProfiles {
		t.Run(profile, func(t *testing.T) {
			vals, err := GenerateComplexities(profile, 7, 200, 10, 100)
			require.NoError(t, err)
			require.Len(t, vals, 200)
			for i, v := range vals {
				if v < 10 || v > 100 {
					t.Errorf("%s[%d] = %d, outside [10, 100]", profile, i, v)
				}
			}
		})
	}
}

func TestGenerateComplexities_RampEndsAtHeavyEnd(t *testing.T) {
	// GIVEN a ramp over a wide range
	vals, err := GenerateComplexities(ProfileRamp, 3, 50, 0, 1000)
	require.NoError(t, err)

	// THEN the final lecture sits at the top of the range and the first near
	// the bottom (base plus at most a quarter-span of jitter)
	if last := vals[len(vals)-1]; last != 1000 {
		t.Errorf("ramp last value = %d, want 1000", last)
	}
	if vals[0] > 250 {
		t.Errorf("ramp first value = %d, want at most 250", vals[0])
	}
}

func TestGenerateComplexities_ExamWeekCrunchIsHeavy(t *testing.T) {
	// GIVEN sixty lectures, so the crunch is the final ten
	vals, err := GenerateComplexities(ProfileExamWeek, 11, 60, 0, 1000)
	require.NoError(t, err)

	for i, v := range vals {
		if i < 50 && v > 250 {
			t.Errorf("examweek[%d] = %d in the light stretch, want at most 250", i, v)
		}
		if i >= 50 && v < 750 {
			t.Errorf("examweek[%d] = %d in the crunch, want at least 750", i, v)
		}
	}
}

func TestGenerateComplexities_SpikeSeparatesBands(t *testing.T) {
	// GIVEN a long spiky course
	vals, err := GenerateComplexities(ProfileSpike, 5, 600, 0, 1000)
	require.NoError(t, err)

	// THEN every lecture is clearly light or clearly heavy, with some of each
	light, heavy := 0, 0
	for i, v := range vals {
		switch {
		case v <= 250:
			light++
		case v >= 750:
			heavy++
		default:
			t.Errorf("spike[%d] = %d, outside both bands", i, v)
		}
	}
	if light == 0 || heavy == 0 {
		t.Errorf("spike produced %d light / %d heavy lectures, want both bands populated", light, heavy)
	}
	if heavy >= light {
		t.Errorf("spike produced %d heavy vs %d light, want heavy in the minority", heavy, light)
	}
}

func TestGenerateComplexities_SingleLecture(t *testing.T) {
	for _, profile := range allProfiles {
		t.Run(profile, func(t *testing.T) {
			vals, err := GenerateComplexities(profile, 9, 1, 10, 100)
			require.NoError(t, err)
			require.Len(t, vals, 1)
			if vals[0] < 10 || vals[0] > 100 {
				t.Errorf("%s single value = %d, outside [10, 100]", profile, vals[0])
			}
		})
	}
}

func TestGenerateComplexities_DegenerateRange(t *testing.T) {
	// GIVEN low == high
	for _, profile := range allProfiles {
		vals, err := GenerateComplexities(profile, 13, 20, 7, 7)
		require.NoError(t, err)
		for i, v := range vals {
			if v != 7 {
				t.Errorf("%s[%d] = %d, want 7 for a degenerate range", profile, i, v)
			}
		}
	}
}

func TestGenerateComplexities_Errors(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		count   int
		low     int64
		high    int64
		wantErr string
	}{
		{"unknown profile", "gauss", 10, 0, 10, `unknown profile "gauss"`},
		{"zero count", ProfileUniform, 0, 0, 10, "lecture count must be positive"},
		{"negative count", ProfileUniform, -5, 0, 10, "lecture count must be positive"},
		{"negative low", ProfileUniform, 10, -1, 10, "complexity bounds"},
		{"inverted bounds", ProfileUniform, 10, 10, 5, "complexity bounds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateComplexities(tt.profile, 1, tt.count, tt.low, tt.high)
			if err == nil {
				t.Fatal("GenerateComplexities accepted invalid arguments")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateComplexities_FeedsSolver(t *testing.T) {
	// GIVEN a generated course
	vals, err := GenerateComplexities(ProfileExamWeek, 21, 40, 1, 100)
	require.NoError(t, err)

	// WHEN planned over a handful of day counts
	for _, d := range []int{1, 5, 10, 40} {
		level, err := MinTotalComplexity(vals, d)
		if err != nil {
			t.Fatalf("MinTotalComplexity(generated, %d) returned error: %v", d, err)
		}
		if level < 1 {
			t.Errorf("level for %d days = %d, want at least the lightest lecture", d, level)
		}
	}
}
