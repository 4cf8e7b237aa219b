package dateparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdlien/validator/internal/constants"
)

func TestDisambiguatorResolve(t *testing.T) {
	tests := []struct {
		text     string
		expected dateParts
		visits   int
	}{
		{"2022 5 13", dateParts{year: 2022, month: 5, day: 13}, 6},
		{"3 30 05", dateParts{year: 2005, month: 3, day: 30}, 6},
		{"5 jan 99", dateParts{year: 1999, month: 1, day: 5}, 6},
		{"jan 5th 2020", dateParts{year: 2020, month: 1, day: 5}, 6},
		{"99 12 25", dateParts{year: 1999, month: 12, day: 25}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d, err := newDisambiguator(tt.text, ref)
			require.NoError(t, err)

			parts, err := d.resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parts)
			assert.Equal(t, tt.visits, d.visits)
		})
	}
}

func TestDisambiguatorPrependsCurrentYear(t *testing.T) {
	d, err := newDisambiguator("02-03", ref)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024", "02", "03"}, d.tokens)

	_, err = newDisambiguator("jan 2020", ref)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDisambiguatorVisitLimit(t *testing.T) {
	d, err := newDisambiguator("1 2 3 4 5 6 7", ref)
	require.NoError(t, err)

	_, err = d.resolve()
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, 7, d.visits, "the limit is checked once per pass")

	d, err = newDisambiguator("13 13 13", ref)
	require.NoError(t, err)

	_, err = d.resolve()
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.LessOrEqual(t, d.visits, constants.MaxTokenVisits+len(d.tokens))
}

func TestDisambiguatorMeanings(t *testing.T) {
	d := &disambiguator{now: ref}
	assert.Equal(t, []part{partYear}, d.meanings(0))
	assert.Equal(t, []part{partYear}, d.meanings(32))
	assert.Equal(t, []part{partDay, partYear}, d.meanings(13))
	assert.Equal(t, []part{partMonth, partDay, partYear}, d.meanings(12))

	d.parts.month = 4
	assert.Equal(t, []part{partDay, partYear}, d.meanings(7))

	d.parts.year = 2001
	assert.Equal(t, []part{partDay}, d.meanings(7))
	assert.Empty(t, d.meanings(40))
}
