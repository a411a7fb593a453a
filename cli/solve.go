package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"go.viam.com/jcs/config"
	"go.viam.com/jcs/jcs"
	"go.viam.com/jcs/knee"
	"go.viam.com/jcs/polaris"
)

// solveRun is a loaded config and recording, solved.
type solveRun struct {
	cfg     *config.Config
	session *knee.Session
	results []knee.Result
}

func solveFromFlags(c *cli.Context) (*solveRun, error) {
	logger := loggerFrom(c)
	cfg, err := config.Read(c.String(generalFlagConfig))
	if err != nil {
		return nil, err
	}
	logger.Debugw("read config", "path", cfg.ConfigFilePath, "side", cfg.Side, "scale", cfg.Scale())

	rec, err := polaris.ReadFile(c.String(generalFlagData))
	if err != nil {
		return nil, err
	}
	logger.Debugw("read recording", "tools", rec.Tools, "rows", len(rec.Rows))

	session, err := cfg.Session(logger)
	if err != nil {
		return nil, err
	}
	samples, err := rec.Samples(cfg.Tools, cfg.Scale())
	if err != nil {
		return nil, err
	}
	results, err := session.Solve(c.Context, samples)
	if err != nil {
		return nil, err
	}
	return &solveRun{cfg: cfg, session: session, results: results}, nil
}

// SolveAction prints the motion of every captured frame.
func SolveAction(c *cli.Context) error {
	format := c.String(solveFlagFormat)
	if format == "" {
		format = defaultFormat(c.App.Writer)
	}
	if format != formatTable && format != formatCSV {
		return errors.Errorf("unknown format %q, expected %s or %s", format, formatTable, formatCSV)
	}

	run, err := solveFromFlags(c)
	if err != nil {
		return err
	}
	withPatella := run.session.Patella() != nil

	if format == formatCSV {
		if err := writeMotionCSV(c.App.Writer, run.results, withPatella); err != nil {
			return err
		}
	} else {
		writeMotionTable(c.App.Writer, run.results, withPatella)
	}

	if c.Bool(solveFlagSummary) {
		summaries, err := jcs.Summarize(knee.TibiofemoralMotions(run.results))
		if err != nil {
			return err
		}
		writeSummaryTable(c.App.Writer, summaries)
	}
	return nil
}

func defaultFormat(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return formatTable
	}
	return formatCSV
}

func motionHeader(withPatella bool) []string {
	header := []string{"frame"}
	header = append(header, jcs.MotionFields[:]...)
	if withPatella {
		header = append(header, lo.Map(jcs.MotionFields[:], func(f string, _ int) string { return "patella_" + f })...)
	}
	return append(header, "error")
}

func motionCells(m *jcs.Motion, format func(float64) string, undefined string) []string {
	if m == nil {
		return lo.Times(len(jcs.MotionFields), func(int) string { return undefined })
	}
	values := m.Values()
	return lo.Map(values[:], func(v float64, _ int) string { return format(v) })
}

func resultCells(r knee.Result, withPatella bool, format func(float64) string, undefined string) []string {
	cells := []string{strconv.Itoa(r.Frame)}
	cells = append(cells, motionCells(r.Tibiofemoral, format, undefined)...)
	if withPatella {
		cells = append(cells, motionCells(r.Patellofemoral, format, undefined)...)
	}
	errText := ""
	if r.Err != nil {
		errText = r.Err.Error()
	}
	return append(cells, errText)
}

func writeMotionCSV(w io.Writer, results []knee.Result, withPatella bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(motionHeader(withPatella)); err != nil {
		return err
	}
	format := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	for _, r := range results {
		if err := cw.Write(resultCells(r, withPatella, format, "")); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeMotionTable(w io.Writer, results []knee.Result, withPatella bool) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(toRow(motionHeader(withPatella)))
	format := func(v float64) string { return fmt.Sprintf("%.2f", v) }
	for _, r := range results {
		tw.AppendRow(toRow(resultCells(r, withPatella, format, "undefined")))
	}
	tw.Render()
}

func writeSummaryTable(w io.Writer, summaries []jcs.Summary) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle("tibiofemoral summary")
	tw.AppendHeader(table.Row{"component", "n", "mean", "std dev", "min", "max"})
	for _, s := range summaries {
		tw.AppendRow(table.Row{
			s.Component, s.Count,
			fmt.Sprintf("%.3f", s.Mean), fmt.Sprintf("%.3f", s.StdDev),
			fmt.Sprintf("%.3f", s.Min), fmt.Sprintf("%.3f", s.Max),
		})
	}
	tw.Render()
}

func toRow(cells []string) table.Row {
	return lo.Map(cells, func(s string, _ int) interface{} { return s })
}
