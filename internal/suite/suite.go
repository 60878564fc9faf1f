// Package suite defines and runs equality-assertion cases against the
// sequence and string utilities. A suite is either the built-in set of
// cases or a YAML file supplied by the user.
package suite

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Op selects which library operation a case exercises.
type Op string

const (
	OpGenerate  Op = "generate"
	OpSum       Op = "sum"
	OpDuplicate Op = "duplicate"
)

// Case is one equality assertion against the library.
type Case struct {
	// Name identifies the case in reports.
	Name string `yaml:"name" json:"name" validate:"required"`

	// Op selects the operation under test.
	Op Op `yaml:"op" json:"op" validate:"required,oneof=generate sum duplicate"`

	// Count is the element count for generate cases. A sum case with
	// no explicit values and a positive count sums a generated
	// sequence of that length instead.
	Count int `yaml:"count,omitempty" json:"count,omitempty" validate:"gte=0"`

	// Values is the input sequence for sum cases.
	Values []int `yaml:"values,omitempty" json:"values,omitempty"`

	// Text is the input string for duplicate cases.
	Text string `yaml:"text,omitempty" json:"text,omitempty"`

	// Want holds the expected outcome for the selected op.
	Want Expect `yaml:"want" json:"want"`
}

// Expect is the expected outcome of a case. Only the field matching
// the case's op is consulted.
type Expect struct {
	Sequence []int  `yaml:"sequence,omitempty" json:"sequence,omitempty"`
	Sum      int64  `yaml:"sum,omitempty" json:"sum,omitempty"`
	Text     string `yaml:"text,omitempty" json:"text,omitempty"`
}

// file is the top-level YAML suite document.
type file struct {
	Cases []Case `yaml:"cases" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Load reads and validates a YAML suite file.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite file: %w", err)
	}
	cases, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("suite file %q: %w", path, err)
	}
	return cases, nil
}

// Parse decodes a YAML suite document and validates every case.
func Parse(data []byte) ([]Case, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	return f.Cases, nil
}

// DefaultCases returns the built-in suite: the documented contract of
// the library, one assertion per guarantee.
func DefaultCases() []Case {
	return []Case{
		{
			Name:  "generate-five",
			Op:    OpGenerate,
			Count: 5,
			Want:  Expect{Sequence: []int{0, 3, 6, 9, 12}},
		},
		{
			Name:  "generate-empty",
			Op:    OpGenerate,
			Count: 0,
			Want:  Expect{Sequence: []int{}},
		},
		{
			Name:   "sum-basic",
			Op:     OpSum,
			Values: []int{0, 3, 6, 9, 12},
			Want:   Expect{Sum: 30},
		},
		{
			Name: "sum-empty",
			Op:   OpSum,
			Want: Expect{Sum: 0},
		},
		{
			Name:   "sum-single",
			Op:     OpSum,
			Values: []int{42},
			Want:   Expect{Sum: 42},
		},
		{
			Name:  "sum-generated-fifty",
			Op:    OpSum,
			Count: 50,
			Want:  Expect{Sum: 3675},
		},
		{
			Name: "duplicate-hello",
			Op:   OpDuplicate,
			Text: "Hello",
			Want: Expect{Text: "Hello"},
		},
		{
			Name: "duplicate-empty",
			Op:   OpDuplicate,
			Want: Expect{Text: ""},
		},
	}
}
