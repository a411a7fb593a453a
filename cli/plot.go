package cli

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"go.viam.com/jcs/jcs"
	"go.viam.com/jcs/knee"
)

// PlotAction renders the selected tibiofemoral motion components against frame number.
func PlotAction(c *cli.Context) error {
	components := c.StringSlice(plotFlagComponents)
	for _, name := range components {
		if !lo.Contains(jcs.MotionFields[:], name) {
			return errors.Errorf("unknown motion component %q, expected one of %v", name, jcs.MotionFields)
		}
	}

	run, err := solveFromFlags(c)
	if err != nil {
		return err
	}
	p, err := motionPlot(run.results, components)
	if err != nil {
		return err
	}
	output := c.String(plotFlagOutput)
	if err := p.Save(10*vg.Inch, 5*vg.Inch, output); err != nil {
		return errors.Wrapf(err, "saving plot to %s", output)
	}
	loggerFrom(c).Infow("wrote plot", "path", output, "components", components)
	return nil
}

func motionPlot(results []knee.Result, components []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "tibiofemoral motion"
	p.X.Label.Text = "frame"
	p.Y.Label.Text = "degrees / length"
	p.Add(plotter.NewGrid())

	var lines []interface{}
	for _, name := range components {
		idx := lo.IndexOf(jcs.MotionFields[:], name)
		pts := plotter.XYs{}
		for _, r := range results {
			if r.Tibiofemoral == nil {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(r.Frame), Y: r.Tibiofemoral.Values()[idx]})
		}
		lines = append(lines, name, pts)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, err
	}
	return p, nil
}
