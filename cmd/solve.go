package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lectplan/lectplan/plan"
)

var (
	// CLI flags for the solve subcommand
	solveInput     string // Path to a token-format sequence file
	solveCourse    string // Path to a course YAML file
	solveDays      int    // Day count override
	solveBreakdown bool   // Reconstruct the per-day split
	solveSummary   bool   // Print aggregate plan statistics
	solveFormat    string // Breakdown output format
)

// solveCmd computes the minimum complexity level for one lecture sequence
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute the minimum complexity level for a lecture sequence",
	Long: `Solve reads a lecture sequence and a day count, then prints the minimum
achievable complexity level.

The default input is the token stream on stdin: the lecture count n, then n
complexity values, then the day count, all whitespace-separated. The default
output is exactly one integer line, so solve composes with shell pipelines.
Course YAML files, per-day breakdowns, and summaries are opt-in via flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		setupCommand(cmd)

		if !validFormats[solveFormat] {
			logrus.Fatalf("Unknown format %q; valid: text, yaml, json", solveFormat)
		}
		if solveCourse != "" && solveInput != "" {
			logrus.Fatalf("--course and --input are mutually exclusive")
		}

		complexities, days := resolveSolveInput(cmd)

		if !solveBreakdown && !solveSummary {
			level, err := plan.MinTotalComplexity(complexities, days)
			if err != nil {
				logrus.Fatalf("Solve failed: %v", err)
			}
			fmt.Println(level)
			return
		}

		p, err := plan.Solve(complexities, days)
		if err != nil {
			logrus.Fatalf("Solve failed: %v", err)
		}
		if solveBreakdown {
			writePlan(p, solveFormat)
		} else {
			fmt.Println(p.TotalComplexity)
		}
		if solveSummary {
			plan.Summarize(p).Print()
		}
	},
}

// resolveSolveInput returns the complexity sequence and day count from the
// configured source: a course YAML file, a token file, or stdin tokens.
// --days (or LECTPLAN_DAYS) wins over the day count carried by the input.
func resolveSolveInput(cmd *cobra.Command) ([]int64, int) {
	daysOverride := cmd.Flags().Changed("days")

	if solveCourse != "" {
		spec, err := plan.LoadCourseSpec(solveCourse)
		if err != nil {
			logrus.Fatalf("Course spec failed: %v", err)
		}
		days := spec.Days
		if daysOverride {
			days = solveDays
		}
		if days < 1 {
			logrus.Fatalf("No day count: set days in %s or pass --days", solveCourse)
		}
		return spec.Complexities(), days
	}

	var (
		complexities []int64
		days         int
		err          error
	)
	if solveInput != "" {
		complexities, days, err = plan.ReadSequenceFile(solveInput)
	} else {
		complexities, days, err = plan.ReadSequence(os.Stdin)
	}
	if err != nil {
		logrus.Fatalf("Input parsing failed: %v", err)
	}
	if daysOverride {
		days = solveDays
	}
	return complexities, days
}

// writePlan renders a study plan to stdout in the requested format.
func writePlan(p *plan.StudyPlan, format string) {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(p)
		if err != nil {
			logrus.Fatalf("YAML marshal failed: %v", err)
		}
		fmt.Print(string(data))
	case "json":
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			logrus.Fatalf("JSON marshal failed: %v", err)
		}
		fmt.Println(string(data))
	default:
		for i, day := range p.Days {
			fmt.Printf("day %d: lectures %d-%d (complexity %d)\n", i+1, day.First+1, day.Last+1, day.Complexity)
		}
		fmt.Printf("complexity level: %d\n", p.TotalComplexity)
	}
}

func init() {
	registerCommonFlags(solveCmd)
	solveCmd.Flags().StringVar(&solveInput, "input", "", "Read tokens from a file instead of stdin")
	solveCmd.Flags().StringVar(&solveCourse, "course", "", "Plan a course YAML file instead of token input")
	solveCmd.Flags().IntVar(&solveDays, "days", 0, "Override the day count from the input or course file")
	solveCmd.Flags().BoolVar(&solveBreakdown, "breakdown", false, "Print which lectures land on which day")
	solveCmd.Flags().BoolVar(&solveSummary, "summary", false, "Print aggregate plan statistics")
	solveCmd.Flags().StringVar(&solveFormat, "format", "text", "Breakdown output format (text, yaml, json)")

	rootCmd.AddCommand(solveCmd)
}
