package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"github.com/vaw-glaciology/govaw/pkg/glacier"
	"github.com/vaw-glaciology/govaw/pkg/vaw"
	"go.uber.org/zap"
)

type tool struct {
	logger *zap.Logger
}

func (t *tool) glaciers(c *cli.Context) (glacier.Registry, error) {
	path := c.String("glaciers")
	if path == "" {
		return nil, cli.Exit("no glacier registry given, use --glaciers", 1)
	}
	reg, err := glacier.LoadRegistry(path)
	if err != nil {
		return nil, cli.Exit(err, 1)
	}
	t.logger.Debug("glacier registry loaded", zap.String("file", path), zap.Int("count", len(reg)))
	return reg, nil
}

func (t *tool) header(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("header needs at least one file", 1)
	}
	reg, err := t.glaciers(c)
	if err != nil {
		return err
	}

	failed := 0
	rows := pterm.TableData{{"File", "Short name", "pkVaw", "Glacier", "Data source", "Warnings"}}
	for _, path := range c.Args().Slice() {
		rd, err := vaw.NewReader(path, reg, vaw.WithLogger(t.logger))
		if err != nil {
			t.logger.Error("read header", zap.String("file", path), zap.Error(err))
			failed++
			continue
		}
		hdr := rd.Header()
		src, _ := rd.DataSource()
		rows = append(rows, []string{path, hdr.ShortName(), hdr.VawIdentifier(), rd.Glacier().String(), src,
			strconv.Itoa(len(hdr.Warnings))})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d files failed", failed, c.NArg()), 1)
	}
	return nil
}

func (t *tool) lengthChange(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("lengthchange needs exactly one file", 1)
	}
	reg, err := t.glaciers(c)
	if err != nil {
		return err
	}

	lc, err := vaw.NewLengthChangeReader(c.Args().First(), reg, vaw.WithLogger(t.logger))
	if err != nil {
		return cli.Exit(err, 1)
	}
	data, err := lc.ReadData()
	if err != nil {
		return cli.Exit(err, 1)
	}

	pterm.DefaultSection.Println(lc.Glacier().String())
	rows := pterm.TableData{{"From", "Quality", "To", "Quality", "Variation [m]", "Elevation [m]", "Observer"}}
	for _, obs := range data {
		rows = append(rows, []string{
			formatDate(obs.DateFrom), obs.DateFrom.Quality.String(),
			formatDate(obs.DateTo), obs.DateTo.Quality.String(),
			strconv.FormatFloat(obs.Variation, 'f', 1, 64),
			strconv.FormatFloat(obs.Elevation, 'f', 0, 64),
			obs.Observer,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func (t *tool) massBalance(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("massbalance needs exactly one file", 1)
	}
	reg, err := t.glaciers(c)
	if err != nil {
		return err
	}

	mb, err := vaw.NewMassBalanceReader(c.Args().First(), reg, vaw.WithLogger(t.logger))
	if err != nil {
		return cli.Exit(err, 1)
	}
	data, err := mb.ReadData()
	if err != nil {
		return cli.Exit(err, 1)
	}

	pterm.DefaultSection.Println(mb.Glacier().String())
	rows := pterm.TableData{{"Year", "Begin", "End", "Winter [mm w.e.]", "Annual [mm w.e.]", "Area [km2]"}}
	for _, bal := range data {
		rows = append(rows, []string{
			strconv.Itoa(bal.Year),
			bal.Begin.String(),
			bal.End.String(),
			strconv.FormatFloat(bal.WinterBalance, 'f', 0, 64),
			strconv.FormatFloat(bal.AnnualBalance, 'f', 0, 64),
			strconv.FormatFloat(bal.Area, 'f', 3, 64),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func (t *tool) date(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("date needs at least one token", 1)
	}

	failed := 0
	rows := pterm.TableData{{"Token", "Date", "Quality"}}
	for _, tok := range c.Args().Slice() {
		d, err := parseDateToken(tok)
		if err != nil {
			t.logger.Error("normalize date", zap.String("token", tok), zap.Error(err))
			failed++
			continue
		}
		rows = append(rows, []string{tok, formatDate(d), d.Quality.String()})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d invalid date tokens", failed), 1)
	}
	return nil
}

func (t *tool) compress(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("compress needs at least one file", 1)
	}
	for _, path := range c.Args().Slice() {
		gzPath, err := vaw.Compress(path)
		if err != nil {
			return cli.Exit(err, 1)
		}
		t.logger.Info("compressed", zap.String("file", path), zap.String("to", gzPath))
	}
	return nil
}

// parseDateToken normalizes a date in one of the VAW conventions dd.mm.yyyy or yyyymmdd.
func parseDateToken(tok string) (vaw.Date, error) {
	if strings.Contains(tok, ".") {
		return vaw.ParseDottedDate(tok)
	}
	return vaw.ParseCompactDate(tok)
}

func formatDate(d vaw.Date) string {
	return d.Time.Format("2006-01-02")
}
