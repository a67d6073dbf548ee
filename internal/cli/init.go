package cli

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.EnsureInitialized(); err != nil {
		return err
	}
	ctx.printf("Initialized pcod-tracker data file at: %s\n", ctx.Store.GetDataPath())
	return nil
}
