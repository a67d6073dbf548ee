package chart

import (
	"fmt"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"
)

func renderPNG(path string, l layout) error {
	dc := gg.NewContext(l.Width, l.Height)
	dc.SetColor(colorBackdrop)
	dc.Clear()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(colorText)
	dc.DrawStringAnchored(l.Title, l.PlotX, 28, 0, 0.5)

	left, right := l.PlotX, l.PlotX+l.PlotW
	bottom := l.PlotY + l.PlotH

	dc.SetLineWidth(1)
	for _, v := range l.ticks() {
		y := l.yFor(v)
		dc.SetColor(colorGrid)
		dc.DrawLine(left, y, right, y)
		dc.Stroke()
		dc.SetColor(colorAxis)
		dc.DrawStringAnchored(fmt.Sprint(v), left-8, y, 1, 0.5)
	}

	dc.SetColor(colorAxis)
	dc.SetLineWidth(1.5)
	dc.DrawLine(left, bottom, right, bottom)
	dc.Stroke()
	dc.DrawLine(left, l.PlotY, left, bottom)
	dc.Stroke()

	if l.Goal > 0 {
		y := l.yFor(l.Goal)
		dc.SetColor(colorGoal)
		dc.SetDash(6, 4)
		dc.DrawLine(left, y, right, y)
		dc.Stroke()
		dc.SetDash()
		dc.DrawStringAnchored(fmt.Sprintf("goal %d", l.Goal), right, y-8, 1, 0.5)
	}

	switch l.Kind {
	case KindLogs:
		barW := l.SlotW * 0.7
		dc.SetColor(colorBar)
		for _, s := range l.Slots {
			if s.Value == 0 {
				continue
			}
			dc.DrawRectangle(s.X-barW/2, s.Y, barW, bottom-s.Y)
			dc.Fill()
		}
	default:
		dc.SetColor(colorWater)
		dc.SetLineWidth(2.5)
		first := true
		for _, s := range l.Slots {
			if !s.Present {
				continue
			}
			if first {
				dc.MoveTo(s.X, s.Y)
				first = false
			} else {
				dc.LineTo(s.X, s.Y)
			}
		}
		dc.Stroke()
		for _, s := range l.Slots {
			if s.Present {
				dc.DrawCircle(s.X, s.Y, 4)
				dc.Fill()
			}
		}
	}

	dc.SetColor(colorAxis)
	for i, s := range l.Slots {
		if l.showLabel(i) {
			dc.DrawStringAnchored(l.label(i), s.X, bottom+16, 0.5, 0.5)
		}
	}

	return dc.SavePNG(path)
}
