package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/relay"
	"github.com/julianstephens/commutewell/internal/wellness"
)

type SyncCmd struct {
	Device string `help:"Display device endpoint URL; defaults to COMMUTEWELL_DEVICE_URL or the built-in address."`
}

func (c *SyncCmd) Run(ctx *Context) error {
	endpoint := c.Device
	if endpoint == "" {
		endpoint = DeviceURL()
	}

	snapshot := wellness.NewBuilder(ctx.Store).Snapshot(time.Now())

	r := relay.New(endpoint, constants.DefaultSyncQuiet)
	defer r.Close()
	if err := r.Flush(snapshot); err != nil {
		return fmt.Errorf("device sync failed: %w", err)
	}

	fmt.Printf("✅ Snapshot pushed to %s (score %d)\n", endpoint, snapshot.WellnessScore)
	return nil
}
