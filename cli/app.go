// Package cli contains all business logic needed by the kneejcs command line tool.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	"go.viam.com/jcs/logging"
)

const (
	// Flags.
	generalFlagConfig  = "config"
	generalFlagData    = "data"
	generalFlagDebug   = "debug"
	generalFlagLogFile = "log-file"

	solveFlagFormat  = "format"
	solveFlagSummary = "summary"

	plotFlagOutput     = "output"
	plotFlagComponents = "component"

	formatTable = "table"
	formatCSV   = "csv"

	prevLoggerMetadataKey = "previous_logger"
)

var configFlag = &cli.StringFlag{
	Name:     generalFlagConfig,
	Aliases:  []string{"c"},
	Required: true,
	Usage:    "load the knee calibration from `FILE`",
}

var dataFlag = &cli.StringFlag{
	Name:     generalFlagData,
	Aliases:  []string{"d"},
	Required: true,
	Usage:    "read tracker samples from the Polaris export `FILE`",
}

// NewApp returns the kneejcs app writing results to out and errors to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "kneejcs",
		Usage:           "compute knee joint motion from optical tracker recordings",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:  generalFlagLogFile,
				Usage: "write logs as JSON to `FILE` instead of stderr",
			},
		},
		Before: func(c *cli.Context) error {
			level := logging.INFO
			if c.Bool(generalFlagDebug) {
				level = logging.DEBUG
			}
			var logger logging.Logger
			if path := c.String(generalFlagLogFile); path != "" {
				logger = logging.NewFileLogger("kneejcs", path, level)
			} else {
				logger = logging.NewLogger("kneejcs")
				logger.SetLevel(level)
			}
			if c.App.Metadata == nil {
				c.App.Metadata = map[string]interface{}{}
			}
			c.App.Metadata[prevLoggerMetadataKey] = logging.Global()
			logging.ReplaceGlobal(logger)
			return nil
		},
		After: func(c *cli.Context) error {
			//nolint:errcheck
			loggerFrom(c).Sync()
			if prev, ok := c.App.Metadata[prevLoggerMetadataKey].(logging.Logger); ok {
				logging.ReplaceGlobal(prev)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "solve",
				Usage:     "compute tibiofemoral (and patellofemoral) motion for every captured frame",
				UsageText: "kneejcs solve --config <config> --data <export> [--format table|csv] [--summary]",
				Flags: []cli.Flag{
					configFlag,
					dataFlag,
					&cli.StringFlag{
						Name:  solveFlagFormat,
						Usage: "output format, table or csv; defaults to table on a terminal and csv otherwise",
					},
					&cli.BoolFlag{
						Name:  solveFlagSummary,
						Usage: "print per component statistics after the motion",
					},
				},
				Action: SolveAction,
			},
			{
				Name:   "frames",
				Usage:  "print every bone's anatomical frame and tracker offset",
				Flags:  []cli.Flag{configFlag},
				Action: FramesAction,
			},
			{
				Name:  "plot",
				Usage: "plot motion components over time",
				Flags: []cli.Flag{
					configFlag,
					dataFlag,
					&cli.StringFlag{
						Name:     plotFlagOutput,
						Aliases:  []string{"o"},
						Required: true,
						Usage:    "write the plot to `FILE`; the extension selects the format (png, svg, pdf)",
					},
					&cli.StringSliceFlag{
						Name:  plotFlagComponents,
						Value: cli.NewStringSlice("flexion", "external", "varus"),
						Usage: "motion components to plot",
					},
				},
				Action: PlotAction,
			},
			{
				Name:   "schema",
				Usage:  "print the JSON schema of the config file",
				Action: SchemaAction,
			},
		},
	}
}

// loggerFrom returns the logger installed as global by the app for the duration of a command.
func loggerFrom(_ *cli.Context) logging.Logger {
	return logging.Global()
}
