package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/unbound-force/stride/internal/suite"
)

// WriteText writes check results as human-readable styled text: one
// [PASS]/[FAIL] line per case and a summary trailer. Output degrades
// gracefully for pipes and CI.
func WriteText(w io.Writer, results []suite.Result) error {
	s := DefaultStyles()

	for _, r := range results {
		if r.Passed {
			if _, err := fmt.Fprintf(w, "%s %s\n", s.Pass.Render("[PASS]"), r.Name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", s.Fail.Render("[FAIL]"), r.Name); err != nil {
			return err
		}
		fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("       got:  %s", r.Got)))
		fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("       want: %s", r.Want)))
	}

	sum := suite.Summarize(results)
	_, err := fmt.Fprintf(w, "\n%s\n", s.Header.Render(fmt.Sprintf(
		"%d case(s) run, %d passed, %d failed",
		sum.Total, sum.Passed, sum.Failed)))
	return err
}

// WriteSequence writes a generated sequence as one space-separated
// line. When sum is non-nil a styled sum line follows.
func WriteSequence(w io.Writer, values []int, sum *int64) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
		return err
	}

	if sum != nil {
		s := DefaultStyles()
		if _, err := fmt.Fprintf(w, "%s %d\n",
			s.SummaryLabel.Render("sum:"), *sum); err != nil {
			return err
		}
	}
	return nil
}
