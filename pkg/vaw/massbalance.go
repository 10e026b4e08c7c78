package vaw

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/vaw-glaciology/govaw/pkg/glacier"
)

// MassBalance is the glacier-wide mass balance of a hydrological year.
// Begin and end of the period are given as mmdd; the period begins in the autumn of the
// previous year.
//
// Data line:
//
//	2019;0919;0000;1650;-710;2.65
type MassBalance struct {
	Year          int     // Hydrological year.
	Begin         Date    // Begin of the measurement period.
	End           Date    // End of the measurement period.
	WinterBalance float64 // mm w.e.
	AnnualBalance float64 // mm w.e.
	Area          float64 // Glacier area in km2.
}

// MassBalanceReader reads VAW mass balance files.
type MassBalanceReader struct {
	*Reader
	Data []MassBalance // Valid after ReadData.
}

// MassBalanceHeaderConfig returns the header configuration of mass balance files.
func MassBalanceHeaderConfig() HeaderConfig {
	conf := BaseHeaderConfig()
	conf.Fields = append(conf.Fields, HeaderField{Position: HeaderPosGlacierName, Label: "Glacier name"})
	conf.NumHeaderLines = 4
	return conf
}

// NewMassBalanceReader reads the header of a mass balance file and binds it to its glacier.
func NewMassBalanceReader(path string, glaciers glacier.Registry, opts ...Option) (*MassBalanceReader, error) {
	rd, err := newReader(path, glaciers, MassBalanceHeaderConfig(), opts)
	if err != nil {
		return nil, err
	}
	return &MassBalanceReader{Reader: rd}, nil
}

// ReadData reads the mass balances of all years.
func (mb *MassBalanceReader) ReadData() ([]MassBalance, error) {
	var data []MassBalance
	err := mb.readData(func(fields []string) error {
		bal, err := decodeMassBalance(fields)
		if err != nil {
			return err
		}
		data = append(data, bal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	mb.Data = data
	return data, nil
}

func decodeMassBalance(fields []string) (bal MassBalance, err error) {
	if len(fields) < 6 {
		return bal, errors.Newf("mass balance: expected 6 fields, got %d", len(fields))
	}

	yyyy := fields[0]
	if bal.Year, err = strconv.Atoi(yyyy); err != nil {
		return bal, errors.Wrap(err, "parse year")
	}

	if bal.Begin, err = ParseMonthDayDate(fields[1], fmt.Sprintf("%04d", bal.Year-1)); err != nil {
		return bal, errors.Wrap(err, "parse begin")
	}
	if bal.End, err = ParseMonthDayDate(fields[2], yyyy); err != nil {
		return bal, errors.Wrap(err, "parse end")
	}

	if bal.WinterBalance, err = parseFloat(fields[3]); err != nil {
		return bal, errors.Wrap(err, "parse winter balance")
	}
	if bal.AnnualBalance, err = parseFloat(fields[4]); err != nil {
		return bal, errors.Wrap(err, "parse annual balance")
	}
	if bal.Area, err = parseFloat(fields[5]); err != nil {
		return bal, errors.Wrap(err, "parse area")
	}
	return bal, nil
}
