package report

import (
	"cgpa-calculator/models"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid format: %s (must be text, json, or yaml)", s)
}

// Render writes rep to w in the given format.
func Render(w io.Writer, rep models.Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return renderText(w, rep)
	}
	return errors.Errorf("unknown format %q", format)
}

func renderText(w io.Writer, rep models.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEMESTER\tSGPA\tCREDITS\tSTATUS")
	for _, s := range rep.Semesters {
		if s.Result.Valid() {
			fmt.Fprintf(tw, "%s\t%.2f\t%.1f\tok\n", s.Title, s.Result.SGPA, s.Result.TotalCredits)
		} else {
			fmt.Fprintf(tw, "%s\t-\t-\t%s\n", s.Title, s.Summary)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nOverall CGPA: %s\n", rep.CGPADisplay)
	if rep.Percentage != nil {
		fmt.Fprintf(w, "Equivalent Percentage: %s\n", rep.PercentageDisplay)
	}
	return nil
}

// RenderGradeTable writes t as an aligned two column table.
func RenderGradeTable(w io.Writer, t models.GradeTable) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GRADE\tPOINTS")
	for _, e := range t {
		fmt.Fprintf(tw, "%s\t%g\n", e.Grade, e.Points)
	}
	return tw.Flush()
}
