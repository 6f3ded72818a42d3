// Package main provides the command line calculator.
package main

import (
	"cgpa-calculator/calculator"
	"cgpa-calculator/config"
	"cgpa-calculator/models"
	"cgpa-calculator/report"
	"cgpa-calculator/sheets"
	"cgpa-calculator/utils"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	scaleFile  string
	formula    string
	format     string
	percentage bool
	xlsxOut    string
	strict     bool
	semesters  int
	logLevel   string

	log *logrus.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "cgpa",
		Short:        "Compute SGPA and CGPA from graded subjects",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(); err != nil {
				return err
			}
			log, err := utils.NewLogger(opts.logLevel, "text")
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			log.SetOutput(cmd.ErrOrStderr())
			opts.log = log
			if opts.scaleFile == "" {
				opts.scaleFile = os.Getenv("GRADE_SCALE_FILE")
			}
			if opts.formula == "" {
				opts.formula = os.Getenv("PERCENTAGE_FORMULA")
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.scaleFile, "scale", "", "Grade scale file (.yaml, .toml or .json)")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "text", "Output format: text, json, yaml")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level")

	calcCmd := &cobra.Command{
		Use:   "calc [document]",
		Short: "Compute a report from a .yaml, .json, .toml or .xlsx document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, opts, args[0])
		},
	}
	calcCmd.Flags().BoolVar(&opts.percentage, "percentage", false, "Include the equivalent percentage")
	calcCmd.Flags().StringVar(&opts.formula, "formula", "", "Percentage formula over cgpa (default "+calculator.DefaultPercentageFormula+")")
	calcCmd.Flags().StringVar(&opts.xlsxOut, "xlsx-out", "", "Also write the report as a workbook")
	calcCmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when any semester has an error")

	scaleCmd := &cobra.Command{
		Use:   "scale",
		Short: "Print the grade scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScale(cmd, opts)
		},
	}

	templateCmd := &cobra.Command{
		Use:   "template [output.xlsx]",
		Short: "Write an empty workbook ready for import",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplate(opts, args[0])
		},
	}
	templateCmd.Flags().IntVar(&opts.semesters, "semesters", 1, "Number of semester sheets")

	rootCmd.AddCommand(calcCmd, scaleCmd, templateCmd)
	return rootCmd
}

func runCalc(cmd *cobra.Command, opts *options, path string) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	ws, err := readDocument(path)
	if err != nil {
		return err
	}
	opts.log.WithFields(logrus.Fields{"file": path, "semesters": len(ws.Semesters)}).Debug("document read")

	if opts.scaleFile != "" {
		table, err := config.LoadGradeScale(opts.scaleFile)
		if err != nil {
			return err
		}
		ws.GradeTable = table
	}
	if ws.GradeTable.Len() == 0 {
		ws.GradeTable = models.DefaultGradeTable()
	}
	if cmd.Flags().Changed("percentage") {
		ws.IncludePercentage = opts.percentage
	}

	formula, err := calculator.NewPercentageFormula(opts.formula)
	if err != nil {
		return err
	}
	rep, err := report.Build(ws, formula)
	if err != nil {
		return err
	}

	if opts.xlsxOut != "" {
		if err := writeWorkbook(opts.xlsxOut, rep); err != nil {
			return err
		}
		opts.log.WithField("file", opts.xlsxOut).Info("workbook written")
	}
	if err := report.Render(cmd.OutOrStdout(), rep, format); err != nil {
		return err
	}

	if opts.strict {
		return calculator.Diagnose(ws.Semesters, rep.GradeTable)
	}
	return nil
}

func writeWorkbook(path string, rep models.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create workbook")
	}
	if err := sheets.WriteReport(f, rep); err != nil {
		f.Close()
		return errors.Wrap(err, "write workbook")
	}
	return f.Close()
}

func runScale(cmd *cobra.Command, opts *options) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	table, err := config.LoadGradeScale(opts.scaleFile)
	if err != nil {
		return err
	}

	switch format {
	case report.FormatText:
		return report.RenderGradeTable(cmd.OutOrStdout(), table)
	default:
		data, err := config.EncodeGradeScale(table, "."+string(format))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
}

func runTemplate(opts *options, path string) error {
	if filepath.Ext(path) != ".xlsx" {
		return fmt.Errorf("template must be an .xlsx file: %s", path)
	}
	if opts.semesters < 1 {
		return fmt.Errorf("invalid semester count: %d", opts.semesters)
	}

	ws := models.NewWorkspace(nil)
	for i := 1; i < opts.semesters; i++ {
		ws = ws.AddSemester()
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create template")
	}
	if err := sheets.WriteTemplate(f, ws); err != nil {
		f.Close()
		return errors.Wrap(err, "write template")
	}
	opts.log.WithField("file", path).Info("template written")
	return f.Close()
}
