package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("✅ Storage initialized at %s\n", ctx.Store.GetConfigPath())
	return nil
}
