// Package sheets reads semesters from spreadsheets and writes reports and
// import templates as spreadsheets.
package sheets

import (
	"cgpa-calculator/models"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// columns holds 0-based column indexes; -1 means absent.
type columns struct {
	name, grade, credits int
}

var defaultColumns = columns{name: -1, grade: 0, credits: 1}

// ReadSemesters reads one semester per sheet. The Summary sheet written by
// WriteReport is skipped.
func ReadSemesters(r io.Reader) ([]models.Semester, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer f.Close()

	var semesters []models.Semester
	for _, name := range f.GetSheetList() {
		if name == SummarySheet {
			continue
		}
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, errors.Wrapf(err, "read sheet %q", name)
		}
		semesters = append(semesters, ParseSheet(name, rows).WithIDs())
	}
	if len(semesters) == 0 {
		return nil, errors.New("workbook has no semester sheets")
	}
	return semesters, nil
}

// ParseSheet turns the rows of one sheet into a semester titled title. A
// header row naming Grade and Credits selects the columns; without one,
// column A is the grade and column B the credits.
func ParseSheet(title string, rows [][]string) models.Semester {
	sem := models.Semester{Title: title}
	cols := defaultColumns
	headerSeen := false

	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		if !headerSeen {
			headerSeen = true
			if c, ok := detectHeader(row); ok {
				cols = c
				continue
			}
		}
		sem.Subjects = append(sem.Subjects, models.SubjectEntry{
			Name:    strings.TrimSpace(cell(row, cols.name)),
			Grade:   cell(row, cols.grade),
			Credits: cell(row, cols.credits),
		})
	}
	return sem
}

func detectHeader(row []string) (columns, bool) {
	c := columns{name: -1, grade: -1, credits: -1}
	for i, v := range row {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "subject", "name":
			c.name = i
		case "grade":
			c.grade = i
		case "credits", "credit":
			c.credits = i
		}
	}
	return c, c.grade >= 0 && c.credits >= 0
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
