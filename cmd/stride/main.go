package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/unbound-force/stride/internal/report"
	"github.com/unbound-force/stride/internal/seq"
	"github.com/unbound-force/stride/internal/suite"
	"github.com/unbound-force/stride/internal/textutil"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

// reportVersion is the version stamped into JSON check reports.
const reportVersion = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "stride",
		Short: "Stride — strided sequence and string-copy utilities",
		Long: `Stride generates strided integer sequences, sums them, and makes
owned copies of strings. The check subcommand runs an equality
assertion suite against the library and reports pass/fail per case.`,
		Version: version,
	}

	root.AddCommand(newGenCmd())
	root.AddCommand(newSumCmd())
	root.AddCommand(newCloneCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// genParams holds the parsed flags for the gen command.
type genParams struct {
	count   int
	stride  int
	withSum bool
	format  string
	stdout  io.Writer
}

// runGen is the extracted, testable body of the gen command.
func runGen(p genParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}

	values, err := seq.GenerateStride(p.count, p.stride)
	if err != nil {
		return err
	}

	var sum *int64
	if p.withSum {
		s := seq.Sum(values)
		sum = &s
	}

	if p.format == "json" {
		return report.WriteSequenceJSON(p.stdout, report.SequenceReport{
			Count:  p.count,
			Stride: p.stride,
			Values: values,
			Sum:    sum,
		})
	}
	return report.WriteSequence(p.stdout, values, sum)
}

func newGenCmd() *cobra.Command {
	var (
		stride  int
		withSum bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "gen <count>",
		Short: "Generate a strided integer sequence",
		Long: `Generate a sequence of <count> elements where element i equals
i times the stride (default 3).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[0], err)
			}
			return runGen(genParams{
				count:   count,
				stride:  stride,
				withSum: withSum,
				format:  format,
				stdout:  os.Stdout,
			})
		},
	}

	cmd.Flags().IntVar(&stride, "stride", seq.Stride,
		"step between consecutive elements")
	cmd.Flags().BoolVar(&withSum, "sum", false,
		"also print the sum of the sequence")
	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")

	return cmd
}

// sumParams holds the parsed flags for the sum command.
type sumParams struct {
	args   []string
	count  int
	stdout io.Writer
}

// runSum is the extracted, testable body of the sum command. A count
// of -1 means no --count flag was given.
func runSum(p sumParams) error {
	if p.count >= 0 && len(p.args) > 0 {
		return fmt.Errorf("cannot combine --count with explicit values")
	}

	var values []int
	if p.count >= 0 {
		generated, err := seq.Generate(p.count)
		if err != nil {
			return err
		}
		values = generated
	} else {
		values = make([]int, 0, len(p.args))
		for _, arg := range p.args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid integer %q: %w", arg, err)
			}
			values = append(values, v)
		}
	}

	_, err := fmt.Fprintln(p.stdout, seq.Sum(values))
	return err
}

func newSumCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "sum [values...]",
		Short: "Sum a sequence of integers",
		Long: `Sum the integer arguments. With --count n, sum a generated
sequence of n elements instead. The sum of no values is 0.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSum(sumParams{
				args:   args,
				count:  count,
				stdout: os.Stdout,
			})
		},
	}

	cmd.Flags().IntVar(&count, "count", -1,
		"sum a generated sequence of this length instead of arguments")

	return cmd
}

// cloneParams holds the parsed input for the clone command.
type cloneParams struct {
	args   []string
	stdin  io.Reader
	stdout io.Writer
}

// runClone is the extracted, testable body of the clone command. With
// an argument it prints the copied string followed by a newline; with
// no argument it copies stdin verbatim.
func runClone(p cloneParams) error {
	if len(p.args) == 1 {
		_, err := fmt.Fprintln(p.stdout, textutil.Clone(p.args[0]))
		return err
	}

	data, err := io.ReadAll(p.stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	_, err = p.stdout.Write(textutil.CloneBytes(data))
	return err
}

func newCloneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clone [text]",
		Short: "Print an owned copy of a string",
		Long: `Print a copy of the argument (or of stdin when no argument is
given). The copy never shares storage with its input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClone(cloneParams{
				args:   args,
				stdin:  os.Stdin,
				stdout: os.Stdout,
			})
		},
	}
}

// checkParams holds the parsed flags for the check command.
type checkParams struct {
	suitePath   string
	format      string
	interactive bool
	stdout      io.Writer
	stderr      io.Writer
}

// runCheck is the extracted, testable body of the check command. It
// returns an error when any case fails, so the process exits non-zero.
func runCheck(p checkParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}

	cases := suite.DefaultCases()
	if p.suitePath != "" {
		loaded, err := suite.Load(p.suitePath)
		if err != nil {
			return err
		}
		cases = loaded
	}

	logger.Info("running check suite", "cases", len(cases))
	results := suite.Run(cases)

	if p.interactive {
		return runInteractiveCheck(results)
	}

	if p.format == "json" {
		if err := report.WriteJSON(p.stdout, results, reportVersion); err != nil {
			return err
		}
	} else {
		if err := report.WriteText(p.stdout, results); err != nil {
			return err
		}
	}

	if summary := suite.Summarize(results); summary.Failed > 0 {
		return fmt.Errorf("%d of %d case(s) failed", summary.Failed, summary.Total)
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	var (
		suitePath   string
		format      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the equality assertion suite",
		Long: `Run equality assertions against the sequence and string-copy
utilities and report pass/fail per case. Without --suite the built-in
cases run; with --suite a YAML case file is loaded instead. Exits
non-zero when any case fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(checkParams{
				suitePath:   suitePath,
				format:      format,
				interactive: interactive,
				stdout:      os.Stdout,
				stderr:      os.Stderr,
			})
		},
	}

	cmd.Flags().StringVar(&suitePath, "suite", "",
		"path to a YAML suite file (default: built-in cases)")
	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing results")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for check output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of stride check --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}
