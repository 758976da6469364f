package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"classmark/layout"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the built-in layout as YAML",
	Long: `Print the built-in five-page layout as YAML.

The output is a starting point for a custom layout file:

    classmark layout > layout.yaml
    classmark generate -t exam.pdf -c class.yaml -l layout.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(layout.DefaultSpec())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
