package cli

import "fmt"

type ClearCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if !c.Yes {
		confirmed := false
		form := newConfirmForm(
			"Clear all data?",
			"Every entry will be removed. A backup is taken first.",
			&confirmed,
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirmation: %w", err)
		}
		if !confirmed {
			ctx.println("Clear cancelled.")
			return nil
		}
	}

	if len(ctx.Store.LoadAll()) > 0 {
		ctx.PerformAutomaticBackup()
	}

	if err := ctx.Store.ClearAll(); err != nil {
		return fmt.Errorf("could not clear data: %w", err)
	}
	ctx.println("✓ Cleared all data.")
	return nil
}
