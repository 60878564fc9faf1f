// Package report provides output formatters for check runs and
// generated sequences in JSON and human-readable text formats.
package report

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/unbound-force/stride/internal/suite"
)

// JSONReport is the top-level JSON output structure for check runs.
type JSONReport struct {
	Version string         `json:"version"`
	Summary suite.Summary  `json:"summary"`
	Results []suite.Result `json:"results"`
}

// WriteJSON writes check results as formatted JSON to the writer.
func WriteJSON(w io.Writer, results []suite.Result, version string) error {
	if results == nil {
		results = []suite.Result{}
	}
	rpt := JSONReport{
		Version: version,
		Summary: suite.Summarize(results),
		Results: results,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rpt)
}

// SequenceReport is the JSON output structure for one generation run.
type SequenceReport struct {
	Count  int    `json:"count"`
	Stride int    `json:"stride"`
	Values []int  `json:"values"`
	Sum    *int64 `json:"sum,omitempty"`
}

// WriteSequenceJSON writes a generated sequence as formatted JSON.
func WriteSequenceJSON(w io.Writer, rpt SequenceReport) error {
	if rpt.Values == nil {
		rpt.Values = []int{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rpt)
}
