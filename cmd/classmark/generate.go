package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"classmark/layout"
	"classmark/mail"
	"classmark/overlay"
	"classmark/roster"
	"classmark/template"
)

var generateFlags struct {
	template string
	class    string
	layout   string
	output   string
	csv      string
	email    bool
	noSort   bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the personalized combined document",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&generateFlags.template, "template", "t", "", "template PDF shared by the class (required)")
	f.StringVarP(&generateFlags.class, "class", "c", "", "class YAML file with school, teacher and students (required)")
	f.StringVarP(&generateFlags.layout, "layout", "l", "", "layout YAML file (default: built-in five-page layout)")
	f.StringVarP(&generateFlags.output, "output", "o", "combined.pdf", "output file")
	f.StringVar(&generateFlags.csv, "csv", "", "CSV student export replacing the students in the class file")
	f.BoolVar(&generateFlags.email, "email", false, "mail the result using the class file's mail settings")
	f.BoolVar(&generateFlags.noSort, "no-sort", false, "keep roster order instead of sorting students by name")
	generateCmd.MarkFlagRequired("template")
	generateCmd.MarkFlagRequired("class")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	r, err := roster.Load(generateFlags.class)
	if err != nil {
		return err
	}

	if generateFlags.csv != "" {
		students, err := roster.LoadStudentsCSV(generateFlags.csv)
		if err != nil {
			return err
		}
		r.Class.Students = students
	}

	masks := layout.Default()
	if generateFlags.layout != "" {
		if masks, err = layout.Load(generateFlags.layout); err != nil {
			return err
		}
	}

	if err := template.Validate(generateFlags.template); err != nil {
		return err
	}

	opts := []overlay.Option{overlay.WithLogger(logger)}
	if generateFlags.noSort {
		opts = append(opts, overlay.WithoutSorting())
	}

	gen, err := overlay.New(generateFlags.template, r.Class, masks, opts...)
	if err != nil {
		return err
	}
	if err := gen.GenerateFile(generateFlags.output); err != nil {
		return err
	}

	logger.Info("combined document generated",
		zap.String("output", generateFlags.output),
		zap.Int("students", len(r.Class.Students)),
		zap.Int("layout_pages", len(masks)),
	)

	if generateFlags.email {
		subject := fmt.Sprintf("Personalized documents: %s", r.Class.School)
		body := "Die personalisierten Dokumente im Anhang.<br>"
		if err := mail.Send(r.Mail, subject, body, generateFlags.output); err != nil {
			return err
		}
		logger.Info("documents mailed", zap.String("to", r.Mail.To))
	}

	return nil
}
