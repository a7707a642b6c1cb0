package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/relay"
	"github.com/julianstephens/commutewell/internal/tui"
)

type TuiCmd struct {
	Device string `help:"Display device endpoint URL; defaults to COMMUTEWELL_DEVICE_URL or the built-in address."`
	NoSync bool   `help:"Disable pushing snapshots to the display device."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	var r *relay.Relay
	if !c.NoSync {
		endpoint := c.Device
		if endpoint == "" {
			endpoint = DeviceURL()
		}
		r = relay.New(endpoint, constants.DefaultSyncQuiet)
		defer r.Close()
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, r), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
