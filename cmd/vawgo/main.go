// Command-line tool for reading VAW glacier observation files.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	version = "0.1.0"
)

func main() {
	tool := &tool{logger: zap.NewNop()}

	app := &cli.App{
		Name:    "vawgo",
		Usage:   "read VAW glacier observation files",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "glaciers",
				Aliases: []string{"g"},
				Usage:   "YAML `FILE` with the glacier registry",
				EnvVars: []string{"VAWGO_GLACIERS"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level: debug, info, warn, error",
				EnvVars: []string{"VAWGO_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "write logs as JSON",
			},
		},
		Before: func(c *cli.Context) error {
			logger, err := newLogger(c.String("log-level"), c.Bool("log-json"))
			if err != nil {
				return cli.Exit(err, 1)
			}
			tool.logger = logger
			return nil
		},
		After: func(c *cli.Context) error {
			_ = tool.logger.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "header",
				Usage:     "Print the header information and the glacier of VAW files",
				ArgsUsage: "FILE...",
				Action:    tool.header,
			},
			{
				Name:      "lengthchange",
				Aliases:   []string{"lc"},
				Usage:     "Print the observations of a length change file",
				ArgsUsage: "FILE",
				Action:    tool.lengthChange,
			},
			{
				Name:      "massbalance",
				Aliases:   []string{"mb"},
				Usage:     "Print the observations of a mass balance file",
				ArgsUsage: "FILE",
				Action:    tool.massBalance,
			},
			{
				Name:      "date",
				Usage:     "Normalize VAW date tokens (dd.mm.yyyy or yyyymmdd)",
				ArgsUsage: "TOKEN...",
				Action:    tool.date,
			},
			{
				Name:      "compress",
				Usage:     "Compress VAW files using gzip, the source files will be removed",
				ArgsUsage: "FILE...",
				Action:    tool.compress,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newLogger returns a console logger, or a JSON logger if json is set, writing to stderr.
func newLogger(level string, json bool) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	conf := zap.NewDevelopmentConfig()
	if json {
		conf = zap.NewProductionConfig()
	}
	conf.Level = lvl
	conf.OutputPaths = []string{"stderr"}
	conf.ErrorOutputPaths = []string{"stderr"}
	return conf.Build()
}
