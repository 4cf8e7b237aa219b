package validate

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jdlien/validator/internal/constants"
	"github.com/jdlien/validator/internal/dateparse"
	"github.com/jdlien/validator/internal/dateutil"
	"github.com/jdlien/validator/internal/errorutil"
)

// Kind selects the input handler for a field
type Kind string

const (
	KindDate Kind = "date"
	KindTime Kind = "time"
)

// ErrUnknownKind is returned for a field whose Kind has no handler
var ErrUnknownKind = errors.New("unknown field kind")

// Messages are the errors shown for invalid fields
type Messages struct {
	Required   string `toml:"required" json:"required" yaml:"required"`
	Date       string `toml:"date" json:"date" yaml:"date"`
	DatePast   string `toml:"date_past" json:"date_past" yaml:"date_past"`
	DateFuture string `toml:"date_future" json:"date_future" yaml:"date_future"`
	DateRange  string `toml:"date_range" json:"date_range" yaml:"date_range"`
	Time       string `toml:"time" json:"time" yaml:"time"`
}

func DefaultMessages() Messages {
	return Messages{
		Required:   constants.MsgRequired,
		Date:       constants.MsgDate,
		DatePast:   constants.MsgDatePast,
		DateFuture: constants.MsgDateFuture,
		DateRange:  constants.MsgDateRange,
		Time:       constants.MsgTime,
	}
}

// withDefaults fills blank messages from DefaultMessages
func (m Messages) withDefaults() Messages {
	d := DefaultMessages()
	fill := func(s *string, def string) {
		if *s == "" {
			*s = def
		}
	}
	fill(&m.Required, d.Required)
	fill(&m.Date, d.Date)
	fill(&m.DatePast, d.DatePast)
	fill(&m.DateFuture, d.DateFuture)
	fill(&m.DateRange, d.DateRange)
	fill(&m.Time, d.Time)
	return m
}

// InputHandler normalizes one kind of value and decides whether the result
// is valid. Parse returns "" when it cannot normalize the value.
type InputHandler struct {
	Parse   func(value, template string, now time.Time) string
	IsValid func(value string, now time.Time) bool
	Error   string
}

// Handlers returns the date and time handlers using messages m
func Handlers(m Messages) map[Kind]InputHandler {
	return map[Kind]InputHandler{
		KindDate: {
			Parse:   dateutil.ParseDateToString,
			IsValid: func(value string, now time.Time) bool { return IsDate(value, now) },
			Error:   m.Date,
		},
		KindTime: {
			Parse:   dateutil.ParseTimeToString,
			IsValid: IsTime,
			Error:   m.Time,
		},
	}
}

// Options configure a Validator. Blank formats fall back to the package
// defaults of dateutil.
type Options struct {
	DateFormat string
	TimeFormat string
	Messages   Messages
}

// Field is one value to validate
type Field struct {
	Name     string
	Kind     Kind
	Value    string
	Required bool
	// Range is "past", "future" or empty
	Range string
	// Format overrides the Options format for this field's Kind
	Format string
	// Message replaces the required and generic range messages
	Message string
}

// Result is the outcome for one field. Value holds the normalized text, or
// the input unchanged when it could not be normalized.
type Result struct {
	Name    string `json:"name" yaml:"name"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Input   string `json:"input" yaml:"input"`
	Value   string `json:"value" yaml:"value"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Validator runs fields through their input handlers. It holds no mutable
// state and is safe for concurrent use.
type Validator struct {
	opts     Options
	handlers map[Kind]InputHandler
	logger   *slog.Logger
}

// New creates a Validator. A nil logger discards output.
func New(opts Options, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	opts.Messages = opts.Messages.withDefaults()
	return &Validator{
		opts:     opts,
		handlers: Handlers(opts.Messages),
		logger:   logger,
	}
}

// Field validates f. An invalid value yields a Result with Valid false and a
// *errorutil.ValidationError; an unknown Kind yields ErrUnknownKind.
func (v *Validator) Field(f Field, now time.Time) (Result, error) {
	handler, ok := v.handlers[f.Kind]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
	}

	name := f.Name
	if name == "" {
		name = string(f.Kind)
	}
	res := Result{Name: name, Kind: f.Kind, Input: f.Value, Value: f.Value}
	vb := errorutil.NewValidationBuilder(name)

	switch {
	case errorutil.IsEmptyString(f.Value):
		if f.Required {
			vb.Add(name, f.Value, firstNonEmpty(f.Message, v.opts.Messages.Required))
		}
	default:
		if parsed := handler.Parse(f.Value, v.template(f), now); parsed != "" {
			res.Value = parsed
		}
		if !handler.IsValid(res.Value, now) {
			vb.Add(name, f.Value, handler.Error)
		} else if msg := v.checkRange(res.Value, f, now); msg != "" {
			vb.Add(name, f.Value, msg)
		}
	}

	err := vb.Build()
	res.Valid = err == nil
	if err != nil {
		res.Message = err.(*errorutil.ValidationError).Errors[0].Message
		v.logger.Debug("Field failed validation",
			slog.String("field", name),
			slog.String("kind", string(f.Kind)),
			slog.String("input", f.Value),
			slog.String("message", res.Message))
	}
	return res, err
}

// Fields validates every field and returns all results. The error, when not
// nil, is a single *errorutil.ValidationError listing every failure.
func (v *Validator) Fields(fields []Field, now time.Time) ([]Result, error) {
	results := make([]Result, 0, len(fields))
	vb := errorutil.NewValidationBuilder("fields")

	for _, f := range fields {
		res, err := v.Field(f, now)
		var vErr *errorutil.ValidationError
		switch {
		case errors.As(err, &vErr):
			for _, fe := range vErr.Errors {
				vb.Add(fe.Field, fe.Value, fe.Message)
			}
		case err != nil:
			return results, err
		}
		results = append(results, res)
	}

	if vb.HasErrors() {
		v.logger.Debug("Fields failed validation",
			slog.Int("failed", vb.ErrorCount()),
			slog.Int("fields", len(fields)))
	}
	return results, vb.Build()
}

func (v *Validator) template(f Field) string {
	if f.Format != "" {
		return f.Format
	}
	if f.Kind == KindTime {
		return v.opts.TimeFormat
	}
	return v.opts.DateFormat
}

// checkRange returns the message for a date outside f.Range, or "" when the
// range is satisfied or the value is not a date
func (v *Validator) checkRange(value string, f Field, now time.Time) string {
	if f.Range == "" {
		return ""
	}
	t, err := dateparse.ParseDate(value, now)
	if err != nil || IsDateInRange(t, f.Range, now) {
		return ""
	}
	switch f.Range {
	case RangePast:
		return v.opts.Messages.DatePast
	case RangeFuture:
		return v.opts.Messages.DateFuture
	}
	return firstNonEmpty(f.Message, v.opts.Messages.DateRange)
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
