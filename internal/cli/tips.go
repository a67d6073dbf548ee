package cli

import (
	"github.com/charmbracelet/glamour"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/logger"
)

type TipsCmd struct {
	Plain bool `help:"Print raw markdown instead of rendering it."`
}

func (c *TipsCmd) Run(ctx *Context) error {
	md := constants.WellnessSuggestions + "\n---\n\n_" + constants.Disclaimer + "_\n"
	if c.Plain {
		ctx.printf("%s", md)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err == nil {
		var rendered string
		rendered, err = r.Render(md)
		if err == nil {
			ctx.printf("%s", rendered)
			return nil
		}
	}

	logger.Debug("Markdown rendering failed, printing raw text", "error", err)
	ctx.printf("%s", md)
	return nil
}
