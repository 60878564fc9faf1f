package suite

import (
	"fmt"
	"slices"

	"github.com/unbound-force/stride/internal/seq"
	"github.com/unbound-force/stride/internal/textutil"
)

// Result records the outcome of one executed case. Got and Want are
// rendered for display so reports need no knowledge of the op.
type Result struct {
	Name   string `json:"name"`
	Op     string `json:"op"`
	Passed bool   `json:"passed"`
	Got    string `json:"got"`
	Want   string `json:"want"`
}

// Summary aggregates a run.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Run executes every case in order. Execution never aborts early: a
// failed assertion is recorded as data, not raised as an error.
func Run(cases []Case) []Result {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		results = append(results, runCase(c))
	}
	return results
}

// Summarize counts passed and failed results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

func runCase(c Case) Result {
	r := Result{Name: c.Name, Op: string(c.Op)}

	switch c.Op {
	case OpGenerate:
		r.Want = fmt.Sprint(c.Want.Sequence)
		got, err := seq.Generate(c.Count)
		if err != nil {
			r.Got = fmt.Sprintf("error: %v", err)
			return r
		}
		r.Got = fmt.Sprint(got)
		r.Passed = slices.Equal(got, c.Want.Sequence)

	case OpSum:
		r.Want = fmt.Sprint(c.Want.Sum)
		values := c.Values
		if len(values) == 0 && c.Count > 0 {
			generated, err := seq.Generate(c.Count)
			if err != nil {
				r.Got = fmt.Sprintf("error: %v", err)
				return r
			}
			values = generated
		}
		got := seq.Sum(values)
		r.Got = fmt.Sprint(got)
		r.Passed = got == c.Want.Sum

	case OpDuplicate:
		r.Want = fmt.Sprintf("%q", c.Want.Text)
		got := textutil.Clone(c.Text)
		r.Got = fmt.Sprintf("%q", got)
		r.Passed = got == c.Want.Text

	default:
		r.Got = fmt.Sprintf("unknown op %q", c.Op)
		r.Want = "one of generate, sum, duplicate"
	}

	return r
}
