package errorutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationBuilder(t *testing.T) {
	err := NewValidationBuilder("formats").
		RequiredString("date", "  ").
		RequiredInt("max_files", 0).
		OneOf("level", "loud", []string{"debug", "info"}).
		OneOf("output", "", []string{"text"}).
		Custom("time", "x", func(v any) bool { return v == "h:mm A" }, "unsupported").
		Check("now", "soon", errors.New("invalid date")).
		Check("location", "UTC", nil).
		Build()
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "formats", vErr.Context)

	fields := make([]string, 0, len(vErr.Errors))
	for _, fe := range vErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"date", "max_files", "level", "time", "now"}, fields)
	assert.Equal(t, "must be one of: debug, info", vErr.Errors[2].Message)
	assert.Contains(t, err.Error(), "formats validation failed: date: is required; ")
}

func TestValidationBuilderEmpty(t *testing.T) {
	vb := NewValidationBuilder("nothing")
	assert.False(t, vb.HasErrors())
	assert.Equal(t, 0, vb.ErrorCount())
	assert.NoError(t, vb.Build())

	vb.Add("field", 1, "bad")
	assert.True(t, vb.HasErrors())
	assert.Equal(t, 1, vb.ErrorCount())
}

func TestValidateConfig(t *testing.T) {
	err := ValidateConfig("clock", func(vb *ValidationBuilder) *ValidationBuilder {
		return vb.RequiredString("location", "")
	})
	assert.EqualError(t, err, "clock configuration validation failed: location: is required")

	assert.Equal(t, "x validation failed", (&ValidationError{Context: "x"}).Error())
}
