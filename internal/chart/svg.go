package chart

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ajstarks/svgo"
)

func renderSVG(w io.Writer, l layout) {
	canvas := svg.New(w)
	canvas.Start(l.Width, l.Height)
	canvas.Rect(0, 0, l.Width, l.Height, fmt.Sprintf("fill:%s", css(colorBackdrop)))
	canvas.Text(int(l.PlotX), 32, l.Title, fmt.Sprintf("fill:%s;font-size:16px;font-family:sans-serif;font-weight:bold", css(colorText)))

	left, right := int(l.PlotX), int(l.PlotX+l.PlotW)
	bottom := int(l.PlotY + l.PlotH)
	for _, v := range l.ticks() {
		y := int(l.yFor(v))
		canvas.Line(left, y, right, y, fmt.Sprintf("stroke:%s;stroke-width:1", css(colorGrid)))
		canvas.Text(left-8, y+4, strconv.Itoa(v), fmt.Sprintf("fill:%s;font-size:11px;font-family:monospace;text-anchor:end", css(colorAxis)))
	}
	canvas.Line(left, bottom, right, bottom, fmt.Sprintf("stroke:%s;stroke-width:1.5", css(colorAxis)))
	canvas.Line(left, int(l.PlotY), left, bottom, fmt.Sprintf("stroke:%s;stroke-width:1.5", css(colorAxis)))

	if l.Goal > 0 {
		y := int(l.yFor(l.Goal))
		canvas.Line(left, y, right, y, fmt.Sprintf("stroke:%s;stroke-width:1.5;stroke-dasharray:6,4", css(colorGoal)))
		canvas.Text(right, y-6, fmt.Sprintf("goal %d", l.Goal), fmt.Sprintf("fill:%s;font-size:11px;font-family:sans-serif;text-anchor:end", css(colorGoal)))
	}

	switch l.Kind {
	case KindLogs:
		barW := int(l.SlotW * 0.7)
		if barW < 1 {
			barW = 1
		}
		for _, s := range l.Slots {
			if s.Value == 0 {
				continue
			}
			canvas.Rect(int(s.X)-barW/2, int(s.Y), barW, bottom-int(s.Y), fmt.Sprintf("fill:%s", css(colorBar)))
		}
	default:
		var xs, ys []int
		for _, s := range l.Slots {
			if !s.Present {
				continue
			}
			xs = append(xs, int(s.X))
			ys = append(ys, int(s.Y))
		}
		if len(xs) > 1 {
			canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:2.5", css(colorWater)))
		}
		for i := range xs {
			canvas.Circle(xs[i], ys[i], 4, fmt.Sprintf("fill:%s", css(colorWater)))
		}
	}

	for i, s := range l.Slots {
		if !l.showLabel(i) {
			continue
		}
		canvas.Text(int(s.X), bottom+18, l.label(i), fmt.Sprintf("fill:%s;font-size:11px;font-family:monospace;text-anchor:middle", css(colorAxis)))
	}

	canvas.End()
}
