package vaw

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// DateQuality tells whether day and month of a date were known or defaulted.
// The values are the quality codes used in the GLAMOS database.
type DateQuality int

// Date qualities.
const (
	QualityPrecise   DateQuality = 1  // Day and month are known.
	QualityEstimated DateQuality = 11 // Day and/or month were unknown and set to the default.
)

func (q DateQuality) String() string {
	switch q {
	case QualityPrecise:
		return "precise"
	case QualityEstimated:
		return "estimated"
	}
	return fmt.Sprintf("DateQuality(%d)", int(q))
}

const (
	// unknownDatePart is used by VAW for an unknown day or month, e.g. 00.00.2018.
	unknownDatePart = "00"

	defaultDay   = 1
	defaultMonth = time.September // end of the hydrological year
)

// Date is a calendar date with its quality.
type Date struct {
	Time    time.Time // Midnight UTC.
	Quality DateQuality
}

// IsEstimated reports whether day or month were unknown.
func (d Date) IsEstimated() bool {
	return d.Quality == QualityEstimated
}

func (d Date) String() string {
	return d.Time.Format("2006-01-02") + " (" + d.Quality.String() + ")"
}

// ParseDottedDate parses a date in the format dd.mm.yyyy. A day or month of 00 identifies an
// unknown value, e.g. 00.00.2018 is translated into 01.09.2018 with an estimated quality.
func ParseDottedDate(s string) (Date, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Date{}, &DateFormatError{Input: s, Reason: "expected dd.mm.yyyy"}
	}
	return normalizeDate(s, parts[0], parts[1], parts[2])
}

// ParseCompactDate parses a date in the format yyyymmdd. Unknown days or months are
// handled like in ParseDottedDate.
func ParseCompactDate(s string) (Date, error) {
	if len(s) != 8 {
		return Date{}, &DateFormatError{Input: s, Reason: "expected yyyymmdd"}
	}
	return normalizeDate(s, s[6:], s[4:6], s[:4])
}

// ParseMonthDayDate parses a date given as mmdd and yyyy in separate tokens.
func ParseMonthDayDate(mmdd, yyyy string) (Date, error) {
	return ParseCompactDate(yyyy + mmdd)
}

func normalizeDate(in, dd, mm, yyyy string) (Date, error) {
	quality := QualityPrecise
	if dd == unknownDatePart || mm == unknownDatePart {
		quality = QualityEstimated
	}

	var err error
	day := defaultDay
	if dd != unknownDatePart {
		if day, err = parseDatePart(dd); err != nil {
			return Date{}, &DateFormatError{Input: in, Reason: "day: " + err.Error()}
		}
	}

	month := int(defaultMonth)
	if mm != unknownDatePart {
		if month, err = parseDatePart(mm); err != nil {
			return Date{}, &DateFormatError{Input: in, Reason: "month: " + err.Error()}
		}
	}

	year, err := parseDatePart(yyyy)
	if err != nil {
		return Date{}, &DateFormatError{Input: in, Reason: "year: " + err.Error()}
	}

	// time.Date normalizes overflowing values, so check we got what we asked for.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return Date{}, &DateFormatError{Input: in, Reason: fmt.Sprintf("no such day: %04d-%02d-%02d", year, month, day)}
	}

	return Date{Time: t, Quality: quality}, nil
}

// parseDatePart parses an unsigned decimal date token.
func parseDatePart(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, errors.Newf("not a number: %q", s)
		}
	}
	return strconv.Atoi(s)
}
