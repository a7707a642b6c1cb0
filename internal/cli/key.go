package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/commutewell/internal/keyring"
)

type SetOpenAIKeyCmd struct {
	Key string `arg:"" optional:"" help:"API key; prompted for when omitted."`
}

func (c *SetOpenAIKeyCmd) Run(ctx *Context) error {
	key := c.Key
	if key == "" {
		prompt := huh.NewInput().
			Title("OpenAI API key").
			EchoMode(huh.EchoModePassword).
			Value(&key)
		if err := prompt.Run(); err != nil {
			return err
		}
	}

	if err := keyring.SetOpenAIKey(key); err != nil {
		return err
	}
	fmt.Println("✅ API key stored in OS keyring")
	return nil
}

type DeleteOpenAIKeyCmd struct{}

func (c *DeleteOpenAIKeyCmd) Run(ctx *Context) error {
	if err := keyring.DeleteOpenAIKey(); err != nil {
		return err
	}
	fmt.Println("✅ API key removed from OS keyring")
	return nil
}
