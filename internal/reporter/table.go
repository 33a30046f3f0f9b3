package reporter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pthm/aquality/internal/quality"
)

// TableReporter writes a single delimited line of counts:
// concepts, constructs, then one count per metric
type TableReporter struct {
	w         io.Writer
	delimiter rune
}

// NewTableReporter creates a new table reporter
func NewTableReporter(w io.Writer, delimiter rune) *TableReporter {
	return &TableReporter{w: w, delimiter: delimiter}
}

// Report outputs the counts. The breakdown is not part of the table format.
func (r *TableReporter) Report(res *quality.Result, _ *quality.Breakdown) error {
	counts := Counts(res)
	record := make([]string, len(counts))
	for i, c := range counts {
		record[i] = strconv.Itoa(c)
	}

	cw := csv.NewWriter(r.w)
	cw.Comma = r.delimiter
	if err := cw.Write(record); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
