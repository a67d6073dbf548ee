// Package chart renders the water and log-count charts as SVG or PNG.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/models"
)

// ErrNoEntries is returned when the chart window holds no entries.
var ErrNoEntries = errors.New("no entries in window")

type Kind string

const (
	KindWater Kind = "water" // glasses per day, last 7 days
	KindLogs  Kind = "logs"  // entries per day, last 30 days
)

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindWater:
		return KindWater, nil
	case KindLogs:
		return KindLogs, nil
	}
	return "", fmt.Errorf("unknown chart kind %q (use water or logs)", s)
}

func (k Kind) days() int {
	if k == KindLogs {
		return constants.CountWindowDays
	}
	return constants.WaterWindowDays
}

func (k Kind) title() string {
	if k == KindLogs {
		return fmt.Sprintf("Logs per day (last %d days)", constants.CountWindowDays)
	}
	return fmt.Sprintf("Water intake (last %d days)", constants.WaterWindowDays)
}

// Options controls chart export.
type Options struct {
	Path   string // format inferred from extension when Format is empty
	Format string // "svg" or "png"
	Kind   Kind
	Width  int
	Height int
}

const (
	DefaultWidth  = 720
	DefaultHeight = 360
)

var (
	colorBackdrop = color.RGBA{R: 0xfa, G: 0xf7, B: 0xfb, A: 0xff}
	colorAxis     = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	colorGrid     = color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	colorText     = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	colorWater    = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	colorGoal     = color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	colorBar      = color.RGBA{R: 0xdb, G: 0x27, B: 0x77, A: 0xff}
)

// Save renders the chart to opts.Path.
func Save(opts Options, log models.Log, today time.Time) error {
	format := strings.ToLower(strings.TrimPrefix(opts.Format, "."))
	if format == "" {
		switch strings.ToLower(filepath.Ext(opts.Path)) {
		case ".png":
			format = "png"
		case ".svg":
			format = "svg"
		default:
			format = "svg"
			if opts.Path != "" && filepath.Ext(opts.Path) == "" {
				opts.Path += ".svg"
			}
		}
	}
	if format != "svg" && format != "png" {
		return fmt.Errorf("unsupported format %q (want svg or png)", format)
	}
	if opts.Path == "" {
		return fmt.Errorf("output path is required")
	}
	if opts.Kind == "" {
		opts.Kind = KindWater
	}

	l, err := buildLayout(opts.Kind, log, today, opts.Width, opts.Height)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	if format == "png" {
		return renderPNG(opts.Path, l)
	}

	f, err := os.Create(opts.Path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	defer f.Close()
	renderSVG(f, l)
	return f.Close()
}

// WaterChartSVG writes the last-7-days water line chart.
func WaterChartSVG(w io.Writer, log models.Log, today time.Time) error {
	return writeSVG(w, KindWater, log, today)
}

// LogCountChartSVG writes the last-30-days entries-per-day bar chart.
func LogCountChartSVG(w io.Writer, log models.Log, today time.Time) error {
	return writeSVG(w, KindLogs, log, today)
}

// SavePNG renders the chart of the given kind to a PNG file.
func SavePNG(path string, kind Kind, log models.Log, today time.Time) error {
	return Save(Options{Path: path, Format: "png", Kind: kind}, log, today)
}

func writeSVG(w io.Writer, kind Kind, log models.Log, today time.Time) error {
	l, err := buildLayout(kind, log, today, DefaultWidth, DefaultHeight)
	if err != nil {
		return err
	}
	renderSVG(w, l)
	return nil
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
