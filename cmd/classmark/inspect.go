package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"classmark/mask"
	"classmark/template"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <template.pdf>",
	Short: "Show page count and page sizes of a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := template.Inspect(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pages:     %d\n", info.PageCount)
		fmt.Fprintf(out, "encrypted: %v\n", info.Encrypted)
		for i, s := range info.PageSizes {
			fmt.Fprintf(out, "page %2d:   %.2f x %.2f pt (%.1f x %.1f mm)\n",
				i+1, s.Width, s.Height, mask.PtToMm(s.Width), mask.PtToMm(s.Height))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
