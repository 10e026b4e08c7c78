package vaw

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestParseDottedDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		quality DateQuality
	}{
		{"15.06.2020", time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC), QualityPrecise},
		{"00.00.2018", time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC), QualityEstimated},
		{"00.05.2018", time.Date(2018, 5, 1, 0, 0, 0, 0, time.UTC), QualityEstimated},
		{"12.00.2018", time.Date(2018, 9, 12, 0, 0, 0, 0, time.UTC), QualityEstimated},
		{"01.09.1880", time.Date(1880, 9, 1, 0, 0, 0, 0, time.UTC), QualityPrecise},
		{"29.02.2020", time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC), QualityPrecise},
		{"5.6.2020", time.Date(2020, 6, 5, 0, 0, 0, 0, time.UTC), QualityPrecise},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDottedDate(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, d.Time)
			assert.Equal(t, tt.quality, d.Quality)
		})
	}
}

func TestParseCompactDate(t *testing.T) {
	assert := assert.New(t)

	d, err := ParseCompactDate("20180000")
	assert.NoError(err)
	assert.Equal(time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC), d.Time)
	assert.Equal(QualityEstimated, d.Quality)
	assert.True(d.IsEstimated())

	d, err = ParseCompactDate("20200615")
	assert.NoError(err)
	assert.Equal(time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC), d.Time)
	assert.Equal(QualityPrecise, d.Quality)
	assert.False(d.IsEstimated())

	d, err = ParseCompactDate("20190300")
	assert.NoError(err)
	assert.Equal(time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC), d.Time)
	assert.Equal(QualityEstimated, d.Quality)
}

func TestParseMonthDayDate(t *testing.T) {
	assert := assert.New(t)

	d, err := ParseMonthDayDate("0615", "2020")
	assert.NoError(err)
	assert.Equal(time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC), d.Time)
	assert.Equal(QualityPrecise, d.Quality)

	d, err = ParseMonthDayDate("0000", "2018")
	assert.NoError(err)
	assert.Equal(time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC), d.Time)
	assert.Equal(QualityEstimated, d.Quality)

	_, err = ParseMonthDayDate("615", "2020")
	assert.ErrorIs(err, ErrDateFormat)
}

func TestParseDate_Invalid(t *testing.T) {
	dotted := []string{"", "15.06", "15.06.2020.1", "aa.06.2020", "15.xx.2020", "15.06.yyyy",
		"31.09.2018", "30.02.2020", "29.02.2019", "15.13.2020", "0.06.2020", "-1.06.2020", "15..2020"}
	for _, in := range dotted {
		_, err := ParseDottedDate(in)
		assert.ErrorIs(t, err, ErrDateFormat, "dotted %q", in)
	}

	compact := []string{"", "2020061", "202006150", "2020ab15", "20201301", "20200230", "20200631"}
	for _, in := range compact {
		_, err := ParseCompactDate(in)
		assert.ErrorIs(t, err, ErrDateFormat, "compact %q", in)
	}
}

func TestDateFormatError(t *testing.T) {
	_, err := ParseDottedDate("31.09.2018")
	var dfe *DateFormatError
	if assert.True(t, errors.As(err, &dfe)) {
		assert.Equal(t, "31.09.2018", dfe.Input)
		assert.Contains(t, dfe.Error(), "no such day")
	}
}

func TestDateQuality_String(t *testing.T) {
	assert.Equal(t, "precise", QualityPrecise.String())
	assert.Equal(t, "estimated", QualityEstimated.String())
	assert.Equal(t, "DateQuality(3)", DateQuality(3).String())
}

func TestDate_String(t *testing.T) {
	d, err := ParseDottedDate("00.00.2018")
	assert.NoError(t, err)
	assert.Equal(t, "2018-09-01 (estimated)", d.String())
}
