package chart

import (
	"time"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/metrics"
	"github.com/Radha57/Pcod-Tracker/internal/models"
)

const (
	marginLeft   = 56.0
	marginRight  = 24.0
	marginTop    = 56.0
	marginBottom = 48.0
)

// slot is one calendar day on the x axis
type slot struct {
	Date    time.Time
	Value   int
	Present bool
	X       float64
	Y       float64
}

type layout struct {
	Kind   Kind
	Title  string
	Width  int
	Height int

	Slots []slot
	YMax  int
	Goal  int // horizontal reference line, 0 for none

	PlotX, PlotY, PlotW, PlotH float64
	SlotW                      float64
}

func buildLayout(kind Kind, log models.Log, today time.Time, width, height int) (layout, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	days := kind.days()
	today = models.NormalizeDate(today)
	window := metrics.WindowLastNDaysAsOf(log, days, today)

	values := map[string]int{}
	switch kind {
	case KindLogs:
		for _, c := range metrics.DailyCounts(window) {
			values[c.Date.Format(constants.DateFormat)] = c.Count
		}
	default:
		for _, v := range metrics.WaterSeries(window) {
			values[v.Date.Format(constants.DateFormat)] = v.Value
		}
	}

	l := layout{
		Kind:   kind,
		Title:  kind.title(),
		Width:  width,
		Height: height,
		PlotX:  marginLeft,
		PlotY:  marginTop,
		PlotW:  float64(width) - marginLeft - marginRight,
		PlotH:  float64(height) - marginTop - marginBottom,
	}
	if kind == KindWater {
		l.Goal = constants.HydrationGoalGlasses
	}

	present := 0
	start := today.AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		v, ok := values[d.Format(constants.DateFormat)]
		if ok {
			present++
		}
		l.Slots = append(l.Slots, slot{Date: d, Value: v, Present: ok})
		if v > l.YMax {
			l.YMax = v
		}
	}
	if present == 0 {
		return layout{}, ErrNoEntries
	}
	if l.Goal > l.YMax {
		l.YMax = l.Goal
	}
	if l.YMax < 1 {
		l.YMax = 1
	}

	l.SlotW = l.PlotW / float64(days)
	for i := range l.Slots {
		l.Slots[i].X = l.PlotX + l.SlotW*(float64(i)+0.5)
		l.Slots[i].Y = l.yFor(l.Slots[i].Value)
	}
	return l, nil
}

func (l layout) yFor(v int) float64 {
	return l.PlotY + l.PlotH - l.PlotH*float64(v)/float64(l.YMax)
}

// ticks returns the y values to label, at most five plus zero.
func (l layout) ticks() []int {
	step := (l.YMax + 4) / 5
	if step < 1 {
		step = 1
	}
	var out []int
	for v := 0; v <= l.YMax; v += step {
		out = append(out, v)
	}
	return out
}

// showLabel thins the x axis labels of the 30-day chart.
func (l layout) showLabel(i int) bool {
	if len(l.Slots) <= 10 {
		return true
	}
	return i%5 == 0 || i == len(l.Slots)-1
}

func (l layout) label(i int) string {
	if len(l.Slots) <= 10 {
		return l.Slots[i].Date.Format("Mon 02")
	}
	return l.Slots[i].Date.Format("01/02")
}
