package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lectplan/lectplan/plan"
)

var (
	// CLI flags for the generate subcommand
	genProfile  string // Synthetic complexity profile
	genSeed     int64  // Seed for deterministic generation
	genLectures int    // Number of lectures to generate
	genDays     int    // Day count to embed in the token stream
	genMin      int64  // Lightest complexity
	genMax      int64  // Heaviest complexity
)

// generateCmd emits a synthetic lecture sequence as a solve-compatible
// token stream
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic lecture sequence in the solve input format",
	Long: `Generate writes a deterministic synthetic lecture sequence to stdout in the
token format solve reads: the lecture count, the complexities, then the day
count. The same profile, seed, and bounds always produce the same stream:

  lectplan generate --profile spike --lectures 40 | lectplan solve`,
	Run: func(cmd *cobra.Command, args []string) {
		setupCommand(cmd)

		complexities, err := plan.GenerateComplexities(genProfile, genSeed, genLectures, genMin, genMax)
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}

		days := genDays
		if days == 0 {
			days = defaultDayCount(genLectures)
		}
		if days < 1 || days > genLectures {
			logrus.Fatalf("Day count %d out of range for %d lectures", days, genLectures)
		}

		logrus.Debugf("generated %d lectures (profile %s, seed %d) over %d days", genLectures, genProfile, genSeed, days)

		fmt.Println(len(complexities))
		fmt.Println(formatComplexities(complexities))
		fmt.Println(days)
	},
}

// defaultDayCount is the day count embedded when --days is not given: a
// quarter of the course, one day at minimum.
func defaultDayCount(lectures int) int {
	days := lectures / 4
	if days < 1 {
		days = 1
	}
	return days
}

// formatComplexities renders values as one space-separated line.
func formatComplexities(complexities []int64) string {
	parts := make([]string, len(complexities))
	for i, v := range complexities {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, " ")
}

func init() {
	registerCommonFlags(generateCmd)
	generateCmd.Flags().StringVar(&genProfile, "profile", plan.ProfileUniform, "Complexity profile (uniform, ramp, spike, examweek)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for deterministic generation")
	generateCmd.Flags().IntVar(&genLectures, "lectures", 12, "Number of lectures to generate")
	generateCmd.Flags().IntVar(&genDays, "days", 0, "Day count to embed (default: a quarter of the lectures)")
	generateCmd.Flags().Int64Var(&genMin, "min", 1, "Lightest complexity")
	generateCmd.Flags().Int64Var(&genMax, "max", 10, "Heaviest complexity")

	rootCmd.AddCommand(generateCmd)
}
