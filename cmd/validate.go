package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lectplan/lectplan/plan"
)

var validateCourse string // Path to the course YAML file to check

// validateCmd checks a course file without solving it
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that a course YAML file parses and validates",
	Run: func(cmd *cobra.Command, args []string) {
		setupCommand(cmd)

		spec, err := plan.LoadCourseSpec(validateCourse)
		if err != nil {
			logrus.Fatalf("Course spec failed: %v", err)
		}

		if spec.Days > 0 {
			fmt.Printf("course %q is valid: %d lectures over %d days\n", spec.Course, len(spec.Lectures), spec.Days)
		} else {
			fmt.Printf("course %q is valid: %d lectures, no day count set\n", spec.Course, len(spec.Lectures))
		}
	},
}

func init() {
	registerCommonFlags(validateCmd)
	validateCmd.Flags().StringVar(&validateCourse, "course", "", "Path to the course YAML file")
	_ = validateCmd.MarkFlagRequired("course")

	rootCmd.AddCommand(validateCmd)
}
