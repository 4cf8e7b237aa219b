package validate

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdlien/validator/internal/constants"
	"github.com/jdlien/validator/internal/errorutil"
)

func TestValidatorField(t *testing.T) {
	v := New(Options{}, nil)

	tests := []struct {
		name    string
		field   Field
		value   string
		valid   bool
		message string
	}{
		{"date normalized", Field{Kind: KindDate, Value: "jan/5/30"}, "2030-Jan-05", true, ""},
		{"date with format", Field{Kind: KindDate, Value: "jan/5/30", Format: "YYYY-MM-DD"}, "2030-01-05", true, ""},
		{"invalid date kept", Field{Kind: KindDate, Value: "not a date"}, "not a date", false, constants.MsgDate},
		{"time normalized", Field{Kind: KindTime, Value: "132pm"}, "1:32 PM", true, ""},
		{"time with format", Field{Kind: KindTime, Value: "132pm", Format: "HH:mm"}, "13:32", true, ""},
		{"invalid time", Field{Kind: KindTime, Value: "25:00"}, "25:00", false, constants.MsgTime},
		{"past range", Field{Kind: KindDate, Value: "tomorrow", Range: RangePast}, "2024-Jan-18", false, constants.MsgDatePast},
		{"future range", Field{Kind: KindDate, Value: "2024-01-16", Range: RangeFuture}, "2024-Jan-16", false, constants.MsgDateFuture},
		{"today is in the future", Field{Kind: KindDate, Value: "today", Range: RangeFuture}, "2024-Jan-17", true, ""},
		{"empty optional", Field{Kind: KindDate, Value: ""}, "", true, ""},
		{"empty required", Field{Kind: KindDate, Value: " ", Required: true}, " ", false, constants.MsgRequired},
		{"custom required message", Field{Kind: KindTime, Required: true, Message: "Pick a time"}, "", false, "Pick a time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := v.Field(tt.field, ref)
			assert.Equal(t, tt.value, res.Value)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.message, res.Message)
			assert.Equal(t, tt.field.Value, res.Input)

			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var vErr *errorutil.ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Len(t, vErr.Errors, 1)
			assert.Equal(t, string(tt.field.Kind), vErr.Errors[0].Field)
			assert.Equal(t, tt.message, vErr.Errors[0].Message)
		})
	}
}

func TestValidatorUnknownKind(t *testing.T) {
	_, err := New(Options{}, nil).Field(Field{Kind: "color", Value: "red"}, ref)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestValidatorOptions(t *testing.T) {
	v := New(Options{
		DateFormat: "D MMMM YYYY",
		TimeFormat: "HH:mm:ss",
		Messages:   Messages{Date: "Bad date"},
	}, nil)

	res, _ := v.Field(Field{Name: "dob", Kind: KindDate, Value: "5 jan 99"}, ref)
	assert.Equal(t, "5 January 1999", res.Value)
	assert.Equal(t, "dob", res.Name)

	res, _ = v.Field(Field{Kind: KindTime, Value: "9:05 pm"}, ref)
	assert.Equal(t, "21:05:00", res.Value)

	res, _ = v.Field(Field{Kind: KindDate, Value: "foo"}, ref)
	assert.Equal(t, "Bad date", res.Message)

	res, _ = v.Field(Field{Kind: KindTime, Value: "foo"}, ref)
	assert.Equal(t, constants.MsgTime, res.Message, "blank messages fall back to defaults")
}

func TestValidatorFields(t *testing.T) {
	v := New(Options{}, nil)

	results, err := v.Fields([]Field{
		{Name: "start", Kind: KindDate, Value: "5 Jan 99"},
		{Name: "end", Kind: KindDate, Value: "not a date"},
		{Name: "at", Kind: KindTime, Value: "25:00"},
	}, ref)

	require.Len(t, results, 3)
	assert.True(t, results[0].Valid)
	assert.False(t, results[1].Valid)
	assert.False(t, results[2].Valid)

	var vErr *errorutil.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "fields", vErr.Context)
	require.Len(t, vErr.Errors, 2)
	assert.Equal(t, "end", vErr.Errors[0].Field)
	assert.Equal(t, "at", vErr.Errors[1].Field)

	_, err = v.Fields([]Field{{Kind: KindDate, Value: "today"}}, ref)
	assert.NoError(t, err)

	_, err = v.Fields([]Field{{Kind: "zip", Value: "12345"}}, ref)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestValidatorLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _ = New(Options{}, logger).Field(Field{Name: "when", Kind: KindDate, Value: "foo bar"}, ref)
	assert.Contains(t, buf.String(), `msg="Field failed validation"`)
	assert.Contains(t, buf.String(), "field=when")
}

func TestValidatorLogsFieldsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	v := New(Options{}, logger)

	_, _ = v.Fields([]Field{
		{Kind: KindDate, Value: "foo bar"},
		{Kind: KindDate, Value: "today"},
		{Kind: KindTime, Value: "noon"},
	}, ref)
	assert.Contains(t, buf.String(), `msg="Fields failed validation" failed=2 fields=3`)

	buf.Reset()
	_, _ = v.Fields([]Field{{Kind: KindDate, Value: "today"}}, ref)
	assert.NotContains(t, buf.String(), "Fields failed validation")
}
