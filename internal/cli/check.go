package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdlien/validator/internal/errorutil"
	"github.com/jdlien/validator/internal/validate"
)

var errValidationFailed = errors.New("validation failed")

type checkOptions struct {
	kind     string
	rng      string
	required bool
	format   string
	file     string
}

// checkReport is the check command's output
type checkReport struct {
	Results []validate.Result `json:"results" yaml:"results"`
	Valid   int               `json:"valid" yaml:"valid"`
	Invalid int               `json:"invalid" yaml:"invalid"`
}

func (r checkReport) text(w io.Writer) error {
	for _, res := range r.Results {
		var err error
		if res.Valid {
			_, err = fmt.Fprintf(w, "✓ %s: %s\n", res.Name, res.Value)
		} else {
			_, err = fmt.Fprintf(w, "✗ %s: %q - %s\n", res.Name, res.Input, res.Message)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d valid, %d invalid\n", r.Valid, r.Invalid)
	return err
}

func newCheckCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check [values...]",
		Short: "Validate values as date or time form fields",
		Long: `check normalizes each value with the configured template and reports
whether it is valid. With --range, dates must also be in the past or the
future. Values come from the arguments and, with --file, from a file with
one value per line (blank lines and lines starting with # are skipped).
The exit code is 2 when any value fails.`,
		Example: `  validator check "5 jan 99" "not a date"
  validator check --kind time 132pm 25:00
  validator check --range future --file dates.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd.Context())
			return runCheck(cmd.OutOrStdout(), a, opts, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&opts.kind, "kind", "k", string(validate.KindDate), "Field kind: date or time")
	fs.StringVarP(&opts.rng, "range", "r", "", "Date range: past or future")
	fs.BoolVar(&opts.required, "required", false, "Treat blank values as failures")
	fs.StringVar(&opts.file, "file", "", "Read values from a file, one per line")
	addFormatFlag(fs, &opts.format, "")
	return cmd
}

func runCheck(w io.Writer, a *app, opts checkOptions, args []string) error {
	start := time.Now()
	values := append([]string(nil), args...)

	if opts.file != "" {
		lines, err := errorutil.ReadLines(opts.file, "read values")
		if err != nil {
			return errorutil.LogAndWrap(a.log.Logger, "check", err, errorutil.FileContext(opts.file)...)
		}
		values = append(values, lines...)
	}
	if len(values) == 0 {
		return errors.New("no values to check: pass values as arguments or use --file")
	}

	kind := validate.Kind(strings.ToLower(opts.kind))
	fields := make([]validate.Field, len(values))
	for i, value := range values {
		fields[i] = validate.Field{
			Name:     fmt.Sprintf("%s[%d]", kind, i+1),
			Kind:     kind,
			Value:    value,
			Required: opts.required,
			Range:    opts.rng,
			Format:   opts.format,
		}
	}

	v := validate.New(validate.Options{
		DateFormat: a.config.Formats.Date,
		TimeFormat: a.config.Formats.Time,
		Messages:   a.config.Messages,
	}, a.log.Logger)

	var report checkReport
	err := errorutil.ExecuteWithLogging(a.log.Logger, "check", func() error {
		results, err := v.Fields(fields, a.now)
		report.Results = results

		var vErr *errorutil.ValidationError
		if errors.As(err, &vErr) {
			return nil
		}
		return err
	}, slog.String("kind", string(kind)), slog.Int("values", len(values)))
	if err != nil {
		return err
	}

	for _, res := range report.Results {
		if res.Valid {
			report.Valid++
		} else {
			report.Invalid++
		}
	}

	exitCode := 0
	if report.Invalid > 0 {
		exitCode = 2
	}
	if a.config.Logging.Enabled {
		a.log.LogExecutionSummary(start, a.configFile, "check", summaryLines(report), exitCode)
	}

	if err := render(w, a.output, report, report.text); err != nil {
		return err
	}
	if report.Invalid > 0 {
		return fmt.Errorf("%w: %d of %d values", errValidationFailed, report.Invalid, len(report.Results))
	}
	return nil
}

func summaryLines(r checkReport) []string {
	lines := []string{fmt.Sprintf("%d valid, %d invalid", r.Valid, r.Invalid)}
	for _, res := range r.Results {
		if !res.Valid {
			lines = append(lines, fmt.Sprintf("%s %q: %s", res.Name, res.Input, res.Message))
		}
	}
	return lines
}
