package suite_test

import (
	"strings"
	"testing"

	"github.com/unbound-force/stride/internal/suite"
)

func TestRun_GeneratePass(t *testing.T) {
	results := suite.Run([]suite.Case{{
		Name:  "gen",
		Op:    suite.OpGenerate,
		Count: 5,
		Want:  suite.Expect{Sequence: []int{0, 3, 6, 9, 12}},
	}})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if !results[0].Passed {
		t.Errorf("case failed: got %s, want %s", results[0].Got, results[0].Want)
	}
}

// TestRun_GenerateMismatch verifies that a wrong expectation is
// recorded as a failure with both sides rendered for the report.
func TestRun_GenerateMismatch(t *testing.T) {
	results := suite.Run([]suite.Case{{
		Name:  "gen-wrong",
		Op:    suite.OpGenerate,
		Count: 3,
		Want:  suite.Expect{Sequence: []int{0, 1, 2}},
	}})

	r := results[0]
	if r.Passed {
		t.Fatal("expected failure for wrong expectation")
	}
	if !strings.Contains(r.Got, "0 3 6") {
		t.Errorf("Got = %q, want rendered actual sequence", r.Got)
	}
	if !strings.Contains(r.Want, "0 1 2") {
		t.Errorf("Want = %q, want rendered expectation", r.Want)
	}
}

// TestRun_NegativeCountRecordedAsFailure verifies that a case slipping
// past load validation (built programmatically) fails with the
// library's error text instead of panicking.
func TestRun_NegativeCountRecordedAsFailure(t *testing.T) {
	results := suite.Run([]suite.Case{{
		Name:  "gen-negative",
		Op:    suite.OpGenerate,
		Count: -4,
		Want:  suite.Expect{Sequence: []int{}},
	}})

	r := results[0]
	if r.Passed {
		t.Fatal("expected failure for negative count")
	}
	if !strings.Contains(r.Got, "must be non-negative") {
		t.Errorf("Got = %q, want library error text", r.Got)
	}
}

func TestRun_SumExplicitValues(t *testing.T) {
	results := suite.Run([]suite.Case{{
		Name:   "sum",
		Op:     suite.OpSum,
		Values: []int{0, 3, 6, 9, 12},
		Want:   suite.Expect{Sum: 30},
	}})

	if !results[0].Passed {
		t.Errorf("case failed: got %s, want %s", results[0].Got, results[0].Want)
	}
}

// TestRun_SumGeneratedInput verifies the composed form: a sum case
// with a count and no values sums a generated sequence.
func TestRun_SumGeneratedInput(t *testing.T) {
	results := suite.Run([]suite.Case{{
		Name:  "sum-gen",
		Op:    suite.OpSum,
		Count: 50,
		Want:  suite.Expect{Sum: 3675},
	}})

	if !results[0].Passed {
		t.Errorf("case failed: got %s, want %s", results[0].Got, results[0].Want)
	}
}

func TestRun_DuplicatePassAndFail(t *testing.T) {
	results := suite.Run([]suite.Case{
		{
			Name: "dup-ok",
			Op:   suite.OpDuplicate,
			Text: "Hello",
			Want: suite.Expect{Text: "Hello"},
		},
		{
			Name: "dup-wrong",
			Op:   suite.OpDuplicate,
			Text: "Hello",
			Want: suite.Expect{Text: "Goodbye"},
		},
	})

	if !results[0].Passed {
		t.Errorf("dup-ok failed: got %s", results[0].Got)
	}
	if results[1].Passed {
		t.Error("dup-wrong passed, want failure")
	}
}

// TestRun_NoEarlyAbort verifies that a failing case does not stop the
// cases after it from running.
func TestRun_NoEarlyAbort(t *testing.T) {
	results := suite.Run([]suite.Case{
		{Name: "fails", Op: suite.OpSum, Values: []int{1}, Want: suite.Expect{Sum: 99}},
		{Name: "passes", Op: suite.OpSum, Values: []int{1}, Want: suite.Expect{Sum: 1}},
	})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Passed || !results[1].Passed {
		t.Errorf("results = %+v", results)
	}
}

func TestSummarize(t *testing.T) {
	s := suite.Summarize([]suite.Result{
		{Passed: true},
		{Passed: false},
		{Passed: true},
	})

	if s.Total != 3 || s.Passed != 2 || s.Failed != 1 {
		t.Errorf("Summarize = %+v, want total=3 passed=2 failed=1", s)
	}
}
