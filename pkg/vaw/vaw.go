// Package vaw provides readers for the semicolon separated glacier observation files
// generated by VAW (Versuchsanstalt für Wasserbau, ETH Zurich), e.g. length change and
// mass balance records.
//
// All VAW files start with a metadata header line carrying the glacier short name and the
// VAW identifier (pkVaw) of the glacier:
//
//	# Length change;rhone;1;Rhonegletscher;
//
// The identifier is used to bind the file to a glacier of a caller supplied registry.
package vaw

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// errors
var (
	// ErrGlacierNotFound is returned if no glacier of the registry matches the VAW identifier of the header.
	ErrGlacierNotFound = errors.New("vaw: glacier not found")

	// ErrInvalidVawIdentifier is returned if the VAW identifier of the header is missing or not an integer.
	ErrInvalidVawIdentifier = errors.New("vaw: invalid VAW identifier")

	// ErrDateFormat is returned for date tokens that can not be normalized.
	ErrDateFormat = errors.New("vaw: invalid date")
)

// use a single instance of Validate, it caches struct info
var validate = validator.New()

// GlacierNotFoundError is returned by the reader constructors if the registry does not contain
// a glacier with the pkVaw given in the file header.
type GlacierNotFoundError struct {
	Path      string // The file.
	PkVaw     string // VAW identifier as given in the header.
	ShortName string // Glacier short name as given in the header.
}

func (e *GlacierNotFoundError) Error() string {
	return fmt.Sprintf("%s: no corresponding glacier found. Header information given VAW-PK %s and short name %s",
		e.Path, e.PkVaw, e.ShortName)
}

func (e *GlacierNotFoundError) Unwrap() error { return ErrGlacierNotFound }

// DateFormatError is returned if a date token is malformed or denotes an impossible date.
type DateFormatError struct {
	Input  string // The date token.
	Reason string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("vaw: invalid date %q: %s", e.Input, e.Reason)
}

func (e *DateFormatError) Unwrap() error { return ErrDateFormat }

// HeaderError describes a failure while parsing a header line. Header errors do not
// abort the parsing, they are logged and collected in Header.Warnings.
type HeaderError struct {
	Path     string
	Line     int    // 1-based line number.
	Position int    // Field position, -1 if the error is not related to a field.
	Label    string // Field label.
	Err      error
}

func (e *HeaderError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("%s @ %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s @ %d: field %d (%s): %v", e.Path, e.Line, e.Position, e.Label, e.Err)
}

func (e *HeaderError) Unwrap() error { return e.Err }
