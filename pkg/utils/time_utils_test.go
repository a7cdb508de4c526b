package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-11-21")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, 21, d.Day())

	_, err = ParseDate("21/11/2026")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestParseDatePtr(t *testing.T) {
	got, err := ParseDatePtr(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := ""
	got, err = ParseDatePtr(&empty)
	require.NoError(t, err)
	assert.Nil(t, got)

	s := "2026-01-05"
	got, err = ParseDatePtr(&s)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 5, got.Day())
}

func TestParseDateTimePtr(t *testing.T) {
	rfc := "2026-01-05T18:30:00Z"
	got, err := ParseDateTimePtr(&rfc)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 18, got.Hour())

	plain := "2026-01-05 18:30:00"
	got, err = ParseDateTimePtr(&plain)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 30, got.Minute())

	bad := "yesterday"
	_, err = ParseDateTimePtr(&bad)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestValidateTimePtr(t *testing.T) {
	ok := "18:30"
	got, err := ValidateTimePtr(&ok)
	require.NoError(t, err)
	assert.Equal(t, &ok, got)

	bad := "6:30 PM"
	_, err = ValidateTimePtr(&bad)
	assert.ErrorIs(t, err, ErrBadRequest)

	got, err = ValidateTimePtr(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
