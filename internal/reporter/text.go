package reporter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pthm/aquality/internal/quality"
	"github.com/pthm/aquality/internal/ui"
)

// TextReporter prints one line per metric:
//
//	laconicity: 0.50 (1/2)
type TextReporter struct {
	w         io.Writer
	styles    *ui.Styles
	precision int
}

// NewTextReporter creates a new text reporter
func NewTextReporter(w io.Writer, u *ui.UI, precision int) *TextReporter {
	return &TextReporter{w: w, styles: u.Styles, precision: precision}
}

// Report outputs the metrics, followed by the breakdown tables if present
func (r *TextReporter) Report(res *quality.Result, breakdown *quality.Breakdown) error {
	for _, s := range res.Scores {
		ratio := s.Ratio()
		_, err := fmt.Fprintf(r.w, "%s: %s (%s)\n",
			r.styles.Metric.Render(s.Metric.Name),
			r.styles.Ratio(ratio).Render(strconv.FormatFloat(ratio, 'f', r.precision, 64)),
			r.styles.Count.Render(fmt.Sprintf("%d/%d", s.Count, s.Total)),
		)
		if err != nil {
			return err
		}
	}

	if breakdown == nil {
		return nil
	}

	sections := []struct {
		title string
		table *table.Table
	}{
		{"Constructs", r.constructTable(breakdown)},
		{"Concepts", r.conceptTable(breakdown)},
	}
	for _, sec := range sections {
		_, err := fmt.Fprintf(r.w, "\n%s\n%s\n", r.styles.Header.Render(sec.title), sec.table.String())
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *TextReporter) constructTable(b *quality.Breakdown) *table.Table {
	metrics := b.MetricsOf(quality.ScopeConstruct)

	headers := []string{"tool", "construct", "concepts"}
	for _, m := range metrics {
		headers = append(headers, m.Mark)
	}

	rows := make([][]string, 0, len(b.Constructs))
	for _, d := range b.Constructs {
		row := []string{d.Tool, d.Construct, joinOrDash(d.Concepts)}
		for _, m := range metrics {
			row = append(row, strconv.Itoa(d.Marks[m.Mark]))
		}
		rows = append(rows, row)
	}

	return r.newTable(headers, rows)
}

func (r *TextReporter) conceptTable(b *quality.Breakdown) *table.Table {
	metrics := b.MetricsOf(quality.ScopeConcept)

	headers := []string{"concept"}
	if len(b.Concepts) > 0 {
		for _, tc := range b.Concepts[0].Tools {
			headers = append(headers, tc.Tool)
		}
	}
	for _, m := range metrics {
		headers = append(headers, m.Mark)
	}

	rows := make([][]string, 0, len(b.Concepts))
	for _, d := range b.Concepts {
		row := []string{d.Concept}
		for _, tc := range d.Tools {
			row = append(row, joinOrDash(tc.Constructs))
		}
		for _, m := range metrics {
			row = append(row, strconv.Itoa(d.Marks[m.Mark]))
		}
		rows = append(rows, row)
	}

	return r.newTable(headers, rows)
}

func (r *TextReporter) newTable(headers []string, rows [][]string) *table.Table {
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = r.styles.Header.Render(h)
	}

	// piped output gets no box drawing characters
	border := lipgloss.HiddenBorder()
	if r.styles.Enabled() {
		border = lipgloss.NormalBorder()
	}

	return table.New().
		Border(border).
		BorderStyle(r.styles.Border).
		Headers(styled...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return r.styles.Cell
		})
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
