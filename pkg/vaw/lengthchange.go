package vaw

import (
	"github.com/cockroachdb/errors"
	"github.com/vaw-glaciology/govaw/pkg/glacier"
)

// LengthChange is a length change observation of a glacier tongue between two surveys.
//
// Data line:
//
//	15.09.2017;05.10.2018;-11.3;2210;VAW
type LengthChange struct {
	DateFrom  Date    // Date of the reference survey.
	DateTo    Date    // Date of the survey.
	Variation float64 // Length change in m, negative for a retreat.
	Elevation float64 // Elevation of the tongue in m a.s.l., 0 if not measured.
	Observer  string
}

// LengthChangeReader reads VAW length change files.
type LengthChangeReader struct {
	*Reader
	Data []LengthChange // Valid after ReadData.
}

// LengthChangeHeaderConfig returns the header configuration of length change files.
// The header consists of the metadata line, the column titles, the units and the data source.
func LengthChangeHeaderConfig() HeaderConfig {
	conf := BaseHeaderConfig()
	conf.Fields = append(conf.Fields, HeaderField{Position: HeaderPosGlacierName, Label: "Glacier name"})
	conf.NumHeaderLines = 4
	return conf
}

// NewLengthChangeReader reads the header of a length change file and binds it to its glacier.
func NewLengthChangeReader(path string, glaciers glacier.Registry, opts ...Option) (*LengthChangeReader, error) {
	rd, err := newReader(path, glaciers, LengthChangeHeaderConfig(), opts)
	if err != nil {
		return nil, err
	}
	return &LengthChangeReader{Reader: rd}, nil
}

// ReadData reads all length change observations.
func (lc *LengthChangeReader) ReadData() ([]LengthChange, error) {
	var data []LengthChange
	err := lc.readData(func(fields []string) error {
		obs, err := decodeLengthChange(fields)
		if err != nil {
			return err
		}
		data = append(data, obs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	lc.Data = data
	return data, nil
}

func decodeLengthChange(fields []string) (obs LengthChange, err error) {
	if len(fields) < 3 {
		return obs, errors.Newf("length change: expected at least 3 fields, got %d", len(fields))
	}

	if obs.DateFrom, err = ParseDottedDate(fields[0]); err != nil {
		return obs, errors.Wrap(err, "parse date from")
	}
	if obs.DateTo, err = ParseDottedDate(fields[1]); err != nil {
		return obs, errors.Wrap(err, "parse date to")
	}
	if obs.Variation, err = parseFloat(fields[2]); err != nil {
		return obs, errors.Wrap(err, "parse variation")
	}

	if len(fields) > 3 && fields[3] != "" {
		if obs.Elevation, err = parseFloat(fields[3]); err != nil {
			return obs, errors.Wrap(err, "parse elevation")
		}
	}
	if len(fields) > 4 {
		obs.Observer = fields[4]
	}
	return obs, nil
}
