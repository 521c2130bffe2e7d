// Package export renders bugs, test cases and QA reports as downloadable CSV and JSON.
package export

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/UDARAS8/bugtracker/internal/model"
)

var (
	BugHeaders = []string{
		"_id", "title", "description", "status", "severity", "priority",
		"assignee", "reporter", "environment", "_creationTime",
	}
	TestCaseHeaders = []string{
		"_id", "name", "description", "category", "priority", "status",
		"automated", "lastRun", "_creationTime",
	}
	ReportHeaders = []string{
		"_id", "title", "bugsFound", "testsRun", "testsPassed", "testsFailed",
		"coverage", "reportDate", "generatedBy",
	}
)

// WriteCSV writes the header line and one line per row, separated by "\n".
// A field containing a comma, double quote or line break is quoted with embedded quotes doubled.
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	bw := bufio.NewWriter(w)
	writeLine(bw, headers)
	for _, row := range rows {
		bw.WriteByte('\n')
		writeLine(bw, row)
	}
	return bw.Flush()
}

func writeLine(w *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteString(quoteField(f))
	}
}

func quoteField(f string) string {
	if !strings.ContainsAny(f, ",\"\r\n") {
		return f
	}
	return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
}

func BugRows(bugs []model.Bug) [][]string {
	rows := make([][]string, len(bugs))
	for i, b := range bugs {
		rows[i] = []string{
			formatID(b.ID),
			b.Title,
			b.Description,
			string(b.Status),
			string(b.Severity),
			string(b.Priority),
			b.AssigneeName(),
			b.Reporter,
			b.Environment,
			epochMillis(b.CreatedAt),
		}
	}
	return rows
}

func TestCaseRows(tcs []model.TestCase) [][]string {
	rows := make([][]string, len(tcs))
	for i, tc := range tcs {
		lastRun := ""
		if tc.LastRun != nil {
			lastRun = epochMillis(*tc.LastRun)
		}
		rows[i] = []string{
			formatID(tc.ID),
			tc.Name,
			tc.Description,
			tc.Category,
			string(tc.Priority),
			string(tc.Status),
			strconv.FormatBool(tc.Automated),
			lastRun,
			epochMillis(tc.CreatedAt),
		}
	}
	return rows
}

func ReportRows(reports []model.QAReport) [][]string {
	rows := make([][]string, len(reports))
	for i, r := range reports {
		rows[i] = []string{
			formatID(r.ID),
			r.Title,
			strconv.Itoa(r.BugsFound),
			strconv.Itoa(r.TestsRun),
			strconv.Itoa(r.TestsPassed),
			strconv.Itoa(r.TestsFailed),
			strconv.Itoa(r.Coverage),
			epochMillis(r.ReportDate),
			r.GeneratedBy,
		}
	}
	return rows
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func epochMillis(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return strconv.FormatInt(t.UnixMilli(), 10)
}
