// Package cli implements the validator command line: parsing and formatting
// loosely written dates and times, and validating them as form fields would.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdlien/validator/internal/config"
	"github.com/jdlien/validator/internal/errorutil"
	"github.com/jdlien/validator/internal/logger"
)

// Version is set at build time
var Version = "dev"

type contextKey string

const appKey contextKey = "app"

// app is the state shared by every command once flags and config are loaded
type app struct {
	config     *config.Config
	configFile string
	log        *logger.Logger
	now        time.Time
	output     outputFormat
}

type globalFlags struct {
	configFile string
	now        string
	output     outputFormat
	verbose    bool
}

func withApp(ctx context.Context, a *app) context.Context {
	return context.WithValue(ctx, appKey, a)
}

func fromContext(ctx context.Context) *app {
	if ctx == nil {
		return nil
	}
	a, _ := ctx.Value(appKey).(*app)
	return a
}

// NewRootCmd creates the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	flags := globalFlags{output: outputText}

	cmd := &cobra.Command{
		Use:   "validator",
		Short: "Parse, normalize and validate loosely written dates and times",
		Long: `validator reads dates such as "5 Jan 99", "jan/5/30", "3 30 05" or
"tues. 02-03 4:15pm" and times such as "132pm", works out which numbers
are the year, month, day and clock, and prints them in a display template.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			a, err := newApp(flags)
			if err != nil {
				return err
			}
			cmd.SetContext(withApp(cmd.Context(), a))
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configFile, "config", "c", "", "Path to a TOML configuration file (default $VALIDATOR_CONFIG)")
	pf.StringVar(&flags.now, "now", "", `Reference time, e.g. "2024-01-17 12:00:00" (default the system clock)`)
	pf.VarP(&flags.output, "output", "o", "Output format: text, json or yaml")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log at debug level")

	cmd.AddCommand(
		newDateCmd(),
		newTimeCmd(),
		newFormatCmd(),
		newFPCmd(),
		newMonthCmd(),
		newYearCmd(),
		newCheckCmd(),
		newConfigCmd(),
	)
	return cmd
}

func newApp(flags globalFlags) (*app, error) {
	configFile := flags.configFile
	if configFile == "" {
		configFile = os.Getenv("VALIDATOR_CONFIG")
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if flags.now != "" {
		cfg.Clock.Now = flags.now
	}
	if flags.verbose {
		cfg.Logging.Level = "debug"
	}

	now, err := cfg.Now(time.Now())
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg, configFile)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	log.LogAttrs(context.Background(), slog.LevelDebug, "Configuration loaded",
		append(errorutil.ConfigContext(configFile), slog.String("now", now.Format(time.RFC3339)))...)

	return &app{
		config:     cfg,
		configFile: configFile,
		log:        log,
		now:        now,
		output:     flags.output,
	}, nil
}

// newLogger opens the configured logger. When the log file cannot be opened
// the run continues with console logging only.
func newLogger(cfg *config.Config, configFile string) (*logger.Logger, error) {
	log, err := logger.NewLogger(cfg.Logging)
	if err == nil || !cfg.Logging.Enabled {
		return log, err
	}

	consoleOnly := cfg.Logging
	consoleOnly.Enabled = false
	log, fallbackErr := logger.NewLogger(consoleOnly)
	if fallbackErr != nil {
		return nil, fallbackErr
	}
	errorutil.LogWarning(log.Logger, "open log file", err, errorutil.ConfigContext(configFile)...)
	return log, nil
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	cmd := NewRootCmd()

	executed, err := cmd.ExecuteC()
	if a := fromContext(executed.Context()); a != nil {
		defer a.log.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errValidationFailed) {
			return 2
		}
		return 1
	}
	return 0
}
