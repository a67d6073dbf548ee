package cli

import (
	"errors"
	"fmt"

	"github.com/Radha57/Pcod-Tracker/internal/chart"
	"github.com/Radha57/Pcod-Tracker/internal/constants"
)

type ChartCmd struct {
	Kind   string `help:"Chart to draw: water (last 7 days) or logs (last 30 days)." enum:"water,logs" default:"water"`
	Output string `short:"o" help:"Output file (.svg or .png). Defaults to pcod_<kind>_chart.svg."`
}

func (c *ChartCmd) Run(ctx *Context) error {
	kind, err := chart.ParseKind(c.Kind)
	if err != nil {
		return err
	}
	output := c.Output
	if output == "" {
		output = fmt.Sprintf("pcod_%s_chart.svg", kind)
	}

	opts := chart.Options{
		Path:   output,
		Kind:   kind,
		Width:  ctx.Config.Chart.Width,
		Height: ctx.Config.Chart.Height,
	}
	if err := chart.Save(opts, ctx.Store.LoadAll(), ctx.Today()); err != nil {
		if errors.Is(err, chart.ErrNoEntries) {
			days := constants.WaterWindowDays
			if kind == chart.KindLogs {
				days = constants.CountWindowDays
			}
			return fmt.Errorf("nothing to chart in the last %d days: %w", days, err)
		}
		return fmt.Errorf("chart failed: %w", err)
	}

	ctx.printf("✓ Chart written to %s\n", output)
	return nil
}
