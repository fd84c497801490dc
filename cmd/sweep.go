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
	// CLI flags for the sweep subcommand
	sweepInput   string // Path to a token-format sequence file
	sweepCourse  string // Path to a course YAML file
	sweepMaxDays int    // Largest day count to evaluate
	sweepFormat  string // Output format
)

// sweepCmd evaluates every candidate day count in one pass
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compute the complexity level for every day count up to a maximum",
	Long: `Sweep solves the same lecture sequence for every day count from 1 up to
--max-days and prints one row per count. A single cost-table fill serves all
rows, so comparing schedules costs no more than one solve.

Without --max-days the sweep runs to the day count carried by the input, or to
the lecture count when the input has none.`,
	Run: func(cmd *cobra.Command, args []string) {
		setupCommand(cmd)

		if !validFormats[sweepFormat] {
			logrus.Fatalf("Unknown format %q; valid: text, yaml, json", sweepFormat)
		}
		if sweepCourse != "" && sweepInput != "" {
			logrus.Fatalf("--course and --input are mutually exclusive")
		}

		complexities, maxDays := resolveSweepInput(cmd)

		rows, err := plan.Sweep(complexities, maxDays)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		writeSweep(rows, sweepFormat)
	},
}

// resolveSweepInput returns the complexity sequence and the largest day count
// to evaluate. --max-days wins; otherwise the input's own day count serves as
// the cap, and a full sweep to the lecture count is the last resort.
func resolveSweepInput(cmd *cobra.Command) ([]int64, int) {
	capped := cmd.Flags().Changed("max-days")

	if sweepCourse != "" {
		spec, err := plan.LoadCourseSpec(sweepCourse)
		if err != nil {
			logrus.Fatalf("Course spec failed: %v", err)
		}
		complexities := spec.Complexities()
		switch {
		case capped:
			return complexities, sweepMaxDays
		case spec.Days > 0:
			return complexities, spec.Days
		default:
			return complexities, len(complexities)
		}
	}

	var (
		complexities []int64
		days         int
		err          error
	)
	if sweepInput != "" {
		complexities, days, err = plan.ReadSequenceFile(sweepInput)
	} else {
		complexities, days, err = plan.ReadSequence(os.Stdin)
	}
	if err != nil {
		logrus.Fatalf("Input parsing failed: %v", err)
	}
	if capped {
		return complexities, sweepMaxDays
	}
	if days > 0 && days <= len(complexities) {
		return complexities, days
	}
	return complexities, len(complexities)
}

// writeSweep renders sweep rows to stdout in the requested format.
func writeSweep(rows []plan.SweepRow, format string) {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			logrus.Fatalf("YAML marshal failed: %v", err)
		}
		fmt.Print(string(data))
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			logrus.Fatalf("JSON marshal failed: %v", err)
		}
		fmt.Println(string(data))
	default:
		fmt.Println("days  complexity level")
		for _, row := range rows {
			fmt.Printf("%4d  %16d\n", row.Days, row.TotalComplexity)
		}
	}
}

func init() {
	registerCommonFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepInput, "input", "", "Read tokens from a file instead of stdin")
	sweepCmd.Flags().StringVar(&sweepCourse, "course", "", "Sweep a course YAML file instead of token input")
	sweepCmd.Flags().IntVar(&sweepMaxDays, "max-days", 0, "Largest day count to evaluate (default: the input's day count)")
	sweepCmd.Flags().StringVar(&sweepFormat, "format", "text", "Output format (text, yaml, json)")

	rootCmd.AddCommand(sweepCmd)
}
