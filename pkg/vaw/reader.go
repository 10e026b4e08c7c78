package vaw

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vaw-glaciology/govaw/pkg/glacier"
	"go.uber.org/zap"
)

// FileReader is implemented by the readers of all VAW file types.
type FileReader interface {
	Header() Header
	Glacier() *glacier.Glacier
	NumDataLines() int
}

// Reader contains fields and methods that can be used by all VAW file types.
// The file types embed Reader and add the decoding of their data lines.
type Reader struct {
	Path string

	conf         HeaderConfig
	header       Header
	glacier      *glacier.Glacier
	numDataLines int
	logger       *zap.Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger for diagnostic messages. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(rd *Reader) {
		if logger != nil {
			rd.logger = logger
		}
	}
}

// WithHeaderConfig replaces the header configuration of the file type.
func WithHeaderConfig(conf HeaderConfig) Option {
	return func(rd *Reader) {
		rd.conf = conf
	}
}

// NewReader reads the header of the VAW file at path and binds the file to the glacier of the
// registry whose pkVaw matches the VAW identifier in the header.
// A GlacierNotFoundError is returned if there is no such glacier.
func NewReader(path string, glaciers glacier.Registry, opts ...Option) (*Reader, error) {
	return newReader(path, glaciers, BaseHeaderConfig(), opts)
}

func newReader(path string, glaciers glacier.Registry, conf HeaderConfig, opts []Option) (*Reader, error) {
	rd := &Reader{Path: path, conf: conf, numDataLines: -1, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(rd)
	}

	if err := validate.Struct(rd.conf); err != nil {
		return nil, errors.Wrap(err, "vaw: header configuration")
	}

	rd.logger.Debug("read VAW file", zap.String("file", path))

	if err := rd.parseHeader(); err != nil {
		return nil, err
	}

	g, err := rd.resolveGlacier(glaciers)
	if err != nil {
		return nil, err
	}
	rd.glacier = g
	return rd, nil
}

// parseHeader reads the header lines. It is called once by the constructors.
func (rd *Reader) parseHeader() error {
	r, err := openFile(rd.Path)
	if err != nil {
		return err
	}
	defer r.Close()

	hdr, err := decodeHeader(r, rd.Path, rd.conf, rd.logger)
	if err != nil {
		return err
	}
	rd.header = hdr
	return nil
}

// resolveGlacier looks up the glacier given in the header. Glaciers sharing the same pkVaw
// are ambiguous; the first one in key order is taken and a warning is logged.
func (rd *Reader) resolveGlacier(glaciers glacier.Registry) (*glacier.Glacier, error) {
	idStr := rd.header.VawIdentifier()
	pkVaw, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidVawIdentifier, "%s: %q (short name %q)", rd.Path, idStr, rd.header.ShortName())
	}

	var found *glacier.Glacier
	var matches []string
	for _, key := range glaciers.Keys() {
		g := glaciers[key]
		if g == nil || g.PkVaw != pkVaw {
			continue
		}
		if found == nil {
			found = g
		}
		matches = append(matches, key)
	}

	if found == nil {
		return nil, &GlacierNotFoundError{Path: rd.Path, PkVaw: idStr, ShortName: rd.header.ShortName()}
	}

	if len(matches) > 1 {
		rd.logger.Warn("ambiguous VAW identifier",
			zap.String("file", rd.Path),
			zap.Int("pkVaw", pkVaw),
			zap.Strings("glaciers", matches),
			zap.String("used", matches[0]))
	}

	return found, nil
}

// Header returns the parsed header.
func (rd *Reader) Header() Header {
	return rd.header
}

// Glacier returns the glacier the file belongs to.
func (rd *Reader) Glacier() *glacier.Glacier {
	return rd.glacier
}

// DataSource returns the data source reference of the header, if given.
func (rd *Reader) DataSource() (string, bool) {
	return rd.header.DataSource, rd.header.HasDataSource
}

// NumDataLines returns the number of lines parsed containing observation data.
// Returns -1 in case the data was not parsed yet.
func (rd *Reader) NumDataLines() int {
	return rd.numDataLines
}

// readData reads the file again, skips the header and passes the trimmed ";" separated fields
// of every data line to decodeRow. Empty lines and comments are skipped. The first error
// returned by decodeRow stops the reading.
func (rd *Reader) readData(decodeRow func(fields []string) error) error {
	r, err := openFile(rd.Path)
	if err != nil {
		return err
	}
	defer r.Close()

	sc := bufio.NewScanner(r)
	lineNum, numData := 0, 0
	for sc.Scan() {
		lineNum++
		if lineNum <= rd.conf.NumHeaderLines {
			continue
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ";")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if err := decodeRow(fields); err != nil {
			return errors.Wrapf(err, "%s: line %d", rd.Path, lineNum)
		}
		numData++
	}

	if err := sc.Err(); err != nil {
		return errors.Wrapf(err, "%s: read data", rd.Path)
	}

	rd.numDataLines = numData
	rd.logger.Debug("read data lines", zap.String("file", rd.Path), zap.Int("count", numData))
	return nil
}

// parseFloat parses a numeric data field.
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
