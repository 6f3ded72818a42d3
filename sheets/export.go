package sheets

import (
	"cgpa-calculator/models"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Summary"
	maxSheetName = 31
)

var subjectHeader = []interface{}{"Subject", "Grade", "Credits"}

// sheetNamer hands out valid, unique sheet names.
type sheetNamer struct {
	used map[string]bool
}

func newSheetNamer(reserved ...string) *sheetNamer {
	n := &sheetNamer{used: make(map[string]bool)}
	for _, r := range reserved {
		n.used[strings.ToLower(r)] = true
	}
	return n
}

func (n *sheetNamer) name(title string) string {
	base := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	base = strings.Trim(base, "'")
	if base == "" {
		base = "Semester"
	}

	candidate := truncate(base, maxSheetName)
	for i := 2; n.used[strings.ToLower(candidate)]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		candidate = truncate(base, maxSheetName-utf8.RuneCountInString(suffix)) + suffix
	}
	n.used[strings.ToLower(candidate)] = true
	return candidate
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func writeSubjects(f *excelize.File, sheet string, subjects []models.SubjectEntry) error {
	if err := f.SetSheetRow(sheet, "A1", &subjectHeader); err != nil {
		return err
	}
	for i, s := range subjects {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{s.Name, s.Grade, s.Credits}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "C", 18)
}

// WriteReport writes a Summary sheet followed by one sheet per semester.
func WriteReport(w io.Writer, rep models.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return errors.Wrap(err, "create summary sheet")
	}
	header := []interface{}{"Semester", "SGPA", "Credits", "Error"}
	if err := f.SetSheetRow(SummarySheet, "A1", &header); err != nil {
		return err
	}
	for i, s := range rep.Semesters {
		row := []interface{}{s.Title, s.Result.SGPA, s.Result.TotalCredits, s.Result.Error}
		if !s.Result.Valid() {
			row = []interface{}{s.Title, nil, nil, s.Result.Error}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
	}

	next := len(rep.Semesters) + 3
	totals := [][]interface{}{{"CGPA", rep.CGPA}}
	if rep.Percentage != nil {
		totals = append(totals, []interface{}{"Percentage", rep.PercentageDisplay})
	}
	for i := range totals {
		cell, err := excelize.CoordinatesToCellName(1, next+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &totals[i]); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SummarySheet, "A", "D", 18); err != nil {
		return err
	}

	namer := newSheetNamer(SummarySheet)
	for _, s := range rep.Semesters {
		sheet := namer.name(s.Title)
		if _, err := f.NewSheet(sheet); err != nil {
			return errors.Wrapf(err, "create sheet %q", sheet)
		}
		if err := writeSubjects(f, sheet, s.Subjects); err != nil {
			return errors.Wrapf(err, "write sheet %q", sheet)
		}
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

// WriteTemplate writes an importable workbook holding the semesters of ws.
func WriteTemplate(w io.Writer, ws models.Workspace) error {
	semesters := ws.Semesters
	if len(semesters) == 0 {
		semesters = []models.Semester{models.NewSemester(1)}
	}

	f := excelize.NewFile()
	defer f.Close()

	namer := newSheetNamer(SummarySheet)
	for i, s := range semesters {
		sheet := namer.name(s.Title)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return errors.Wrapf(err, "create sheet %q", sheet)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return errors.Wrapf(err, "create sheet %q", sheet)
		}
		if err := writeSubjects(f, sheet, s.Subjects); err != nil {
			return errors.Wrapf(err, "write sheet %q", sheet)
		}
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}
