package cli

import (
	"os"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/storage"
	"github.com/julianstephens/commutewell/internal/watch"
)

// Context is shared by every command.
type Context struct {
	Store *storage.Store
	Hub   *watch.Hub
}

// DeviceURL resolves the remote display endpoint: env override first,
// then the built-in default.
func DeviceURL() string {
	if url := os.Getenv(constants.DeviceURLEnv); url != "" {
		return url
	}
	return constants.DefaultDeviceURL
}
