// Command classmark stamps per-student identification onto a shared
// template PDF and concatenates the personalized copies into one
// combined document.
//
// # Usage
//
//	classmark generate -t exam.pdf -c class.yaml -o exam-class.pdf
//	classmark generate -t exam.pdf -c class.yaml -l layout.yaml --csv students.csv
//	classmark inspect exam.pdf
//	classmark layout > layout.yaml
//
// The class file carries the school, the teacher, the students, and
// optionally the SMTP settings used by --email. The layout file maps
// template pages to overlay masks; without one the built-in five-page
// layout is used.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "classmark",
	Short:         "Personalize a shared template PDF for a class of students",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "classmark:", err)
		os.Exit(1)
	}
}
