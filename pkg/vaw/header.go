package vaw

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Positions of the common fields in the metadata header line.
const (
	HeaderPosShortName     = 1 // Glacier short name.
	HeaderPosVawIdentifier = 2 // VAW identifier (pkVaw).
	HeaderPosGlacierName   = 3 // Full glacier name, not given in all file types.
)

// DataSourcePrefix is removed from the data source reference in the last header line.
const DataSourcePrefix = "# © "

// HeaderField is a field of the metadata header line.
type HeaderField struct {
	Position int    `validate:"gte=0"` // Index in the ";" separated header line.
	Label    string `validate:"required"`
}

// HeaderConfig describes the header of a VAW file type.
type HeaderConfig struct {
	Fields           []HeaderField `validate:"required,unique=Position,dive"`
	NumHeaderLines   int           `validate:"gte=0"` // The last header line holds the data source. 0 if there is none.
	DataSourcePrefix string
}

// BaseHeaderConfig returns the header configuration common to all VAW files.
func BaseHeaderConfig() HeaderConfig {
	return HeaderConfig{
		Fields: []HeaderField{
			{Position: HeaderPosShortName, Label: "Glacier short name"},
			{Position: HeaderPosVawIdentifier, Label: "VAW identifier"},
		},
		DataSourcePrefix: DataSourcePrefix,
	}
}

// Header holds the values parsed from the header lines.
type Header struct {
	values        map[int]string
	DataSource    string  // Source of the data, e.g. "VAW / ETH Zurich".
	HasDataSource bool    // false if the file has no data source line.
	Warnings      []error // Problems found while parsing, see HeaderError.
}

// Get returns the value of the header field at position pos.
func (hdr Header) Get(pos int) (string, bool) {
	v, ok := hdr.values[pos]
	return v, ok
}

// Fields returns a copy of all header field values by position.
func (hdr Header) Fields() map[int]string {
	m := make(map[int]string, len(hdr.values))
	for k, v := range hdr.values {
		m[k] = v
	}
	return m
}

// ShortName returns the glacier short name.
func (hdr Header) ShortName() string {
	return hdr.values[HeaderPosShortName]
}

// VawIdentifier returns the VAW identifier as given in the header.
func (hdr Header) VawIdentifier() string {
	return hdr.values[HeaderPosVawIdentifier]
}

// GlacierName returns the full glacier name if the file type provides it.
func (hdr Header) GlacierName() string {
	return hdr.values[HeaderPosGlacierName]
}

// decodeHeader reads the header lines from r. Problems in single lines are logged and collected
// as warnings, only read errors are returned.
func decodeHeader(r io.Reader, path string, conf HeaderConfig, logger *zap.Logger) (Header, error) {
	hdr := Header{values: make(map[int]string, len(conf.Fields))}

	warn := func(herr *HeaderError) {
		logger.Warn("parse header",
			zap.String("file", path),
			zap.Int("line", herr.Line),
			zap.Int("position", herr.Position),
			zap.Error(herr.Err))
		hdr.Warnings = append(hdr.Warnings, herr)
	}

	lastLine := conf.NumHeaderLines
	if lastLine < 1 {
		lastLine = 1
	}

	sc := bufio.NewScanner(r)
	lineNum := 0
	for lineNum < lastLine && sc.Scan() {
		lineNum++
		line := sc.Text()

		if lineNum == 1 {
			parts := strings.Split(line, ";")
			for _, field := range conf.Fields {
				if field.Position >= len(parts) {
					warn(&HeaderError{Path: path, Line: lineNum, Position: field.Position, Label: field.Label,
						Err: errors.Newf("line has only %d fields", len(parts))})
					continue
				}
				hdr.values[field.Position] = strings.TrimSpace(parts[field.Position])
			}
		}

		if lineNum == conf.NumHeaderLines {
			src := strings.TrimSpace(line)
			if conf.DataSourcePrefix != "" {
				src = strings.TrimPrefix(src, conf.DataSourcePrefix)
			}
			hdr.DataSource = src
			hdr.HasDataSource = true
		}
	}

	if err := sc.Err(); err != nil {
		return hdr, errors.Wrapf(err, "%s: read header", path)
	}

	if lineNum == 0 {
		warn(&HeaderError{Path: path, Line: 1, Position: -1, Err: errors.New("no header line")})
	} else if lineNum < conf.NumHeaderLines {
		warn(&HeaderError{Path: path, Line: lineNum + 1, Position: -1,
			Err: errors.Newf("file ends after %d of %d header lines", lineNum, conf.NumHeaderLines)})
	}

	return hdr, nil
}
