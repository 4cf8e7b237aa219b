package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jdlien/validator/internal/dateparse"
	"github.com/jdlien/validator/internal/dateutil"
	"github.com/jdlien/validator/internal/errorutil"
)

var errInvalidTime = errors.New("invalid time")

// addFormatFlag registers the shared --format/-f template flag
func addFormatFlag(fs *pflag.FlagSet, p *string, def string) {
	fs.StringVarP(p, "format", "f", def, `Display template, e.g. "YYYY-MM-DD" or "h:mm A" (default from config)`)
}

// parsed is the result of the date and time commands
type parsed struct {
	Input    string               `json:"input" yaml:"input"`
	Value    string               `json:"value" yaml:"value"`
	Template string               `json:"template" yaml:"template"`
	ISO      string               `json:"iso,omitempty" yaml:"iso,omitempty"`
	Clock    *dateparse.TimeParts `json:"clock,omitempty" yaml:"clock,omitempty"`
}

func (p parsed) text(w io.Writer) error {
	_, err := fmt.Fprintln(w, p.Value)
	return err
}

func newDateCmd() *cobra.Command {
	var template string
	var withTime bool

	cmd := &cobra.Command{
		Use:   "date <input...>",
		Short: "Parse a date and print it in a display template",
		Example: `  validator date 5 jan 99
  validator date --format "DD/MM/YYYY" "tues. 02-03 4:15pm"
  validator date --datetime "today 9:05 am"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd.Context())
			input := strings.Join(args, " ")

			if template == "" {
				template = a.config.Formats.Date
				if withTime {
					template = a.config.Formats.DateTime
				}
			}

			t, err := dateparse.ParseDate(input, a.now)
			if err != nil {
				a.log.LogAttrs(cmd.Context(), slog.LevelDebug, "Date did not parse",
					append(errorutil.InputContext(input, template), slog.String("error", err.Error()))...)
				return err
			}

			result := parsed{
				Input:    input,
				Value:    dateutil.FormatDateTime(t, template),
				Template: template,
				ISO:      t.Format(time.RFC3339),
			}
			return render(cmd.OutOrStdout(), a.output, result, result.text)
		},
	}

	addFormatFlag(cmd.Flags(), &template, "")
	cmd.Flags().BoolVar(&withTime, "datetime", false, "Use the configured datetime template")
	return cmd
}

func newTimeCmd() *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "time <input...>",
		Short: "Parse a time of day and print it in a display template",
		Example: `  validator time 132pm
  validator time --format "HH:mm:ss" "9 a"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd.Context())
			input := strings.Join(args, " ")

			if template == "" {
				template = a.config.Formats.Time
			}

			tp, ok := dateparse.ParseTime(input, a.now)
			if !ok {
				a.log.LogAttrs(cmd.Context(), slog.LevelDebug, "Time did not parse",
					errorutil.InputContext(input, template)...)
				return fmt.Errorf("%w: %q", errInvalidTime, input)
			}

			result := parsed{
				Input:    input,
				Value:    dateutil.ParseTimeToString(input, template, a.now),
				Template: template,
				Clock:    &tp,
			}
			return render(cmd.OutOrStdout(), a.output, result, result.text)
		},
	}

	addFormatFlag(cmd.Flags(), &template, "")
	return cmd
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <input> <template>",
		Short: "Parse input and render it with an explicit template",
		Example: `  validator format "5 jan 99" "dddd, MMMM D YYYY"
  validator format "2024-03-13 14:05" "[at] h:mm a"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd.Context())
			input, template := args[0], args[1]

			value := dateutil.FormatString(input, template, a.now)
			if value == "" {
				return fmt.Errorf("%w: %q", dateparse.ErrInvalidDate, input)
			}
			result := parsed{
				Input:    input,
				Value:    value,
				Template: template,
			}
			return render(cmd.OutOrStdout(), a.output, result, result.text)
		},
	}
}

func newFPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fp <template>",
		Short: "Translate a display template to date picker format tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd.Context())
			result := struct {
				Template string `json:"template" yaml:"template"`
				Picker   string `json:"picker" yaml:"picker"`
			}{args[0], dateutil.MomentToFPFormat(args[0])}

			return render(cmd.OutOrStdout(), a.output, result, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, result.Picker)
				return err
			})
		},
	}
}

func newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month <token>",
		Short: "Resolve a month name, prefix or number",
		Example: `  validator month sept
  validator month "août"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd.Context())

			index, err := dateparse.MonthToNumber(args[0])
			if err != nil {
				return err
			}
			result := struct {
				Token string `json:"token" yaml:"token"`
				Index int    `json:"index" yaml:"index"`
				Name  string `json:"name,omitempty" yaml:"name,omitempty"`
			}{Token: args[0], Index: index}
			if index >= 0 && index < 12 {
				result.Name = time.Month(index + 1).String()
			}

			return render(cmd.OutOrStdout(), a.output, result, func(w io.Writer) error {
				if result.Name == "" {
					_, err := fmt.Fprintf(w, "%d\n", result.Index)
					return err
				}
				_, err := fmt.Fprintf(w, "%d (%s)\n", result.Index, result.Name)
				return err
			})
		},
	}
}

func newYearCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "year <token>",
		Short:   "Expand a one, two or four digit year",
		Example: `  validator year "'99"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd.Context())

			year, err := dateparse.YearToFull(args[0], a.now)
			if err != nil {
				return err
			}
			result := struct {
				Token string `json:"token" yaml:"token"`
				Year  int    `json:"year" yaml:"year"`
			}{args[0], year}

			return render(cmd.OutOrStdout(), a.output, result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%d\n", result.Year)
				return err
			})
		},
	}
}
