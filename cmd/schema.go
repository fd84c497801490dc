package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lectplan/lectplan/plan"
)

// schemaCmd prints the JSON schema for course YAML files
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema for course files",
	Long: `Schema emits the JSON schema describing the course file structure, for
editor integration and external validation tooling.`,
	Run: func(cmd *cobra.Command, args []string) {
		setupCommand(cmd)

		schema := jsonschema.Reflect(&plan.CourseSpec{})
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			logrus.Fatalf("JSON marshal failed: %v", err)
		}
		fmt.Println(string(data))
	},
}

func init() {
	registerCommonFlags(schemaCmd)
	rootCmd.AddCommand(schemaCmd)
}
