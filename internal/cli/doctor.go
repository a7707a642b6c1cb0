package cli

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/keyring"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	if err := checkStorage(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	// Check 2: display device reachable (warning only; the relay is
	// best-effort anyway)
	if err := checkDevice(); err != nil {
		fmt.Printf("⚠ Display device: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Display device: OK\n")
	}

	// Check 3: API server process
	if running, err := serveProcessRunning(); err != nil {
		fmt.Printf("⚠ API server: WARNING\n")
		fmt.Printf("   could not inspect processes: %v\n", err)
	} else if running {
		fmt.Printf("✓ API server: running\n")
	} else {
		fmt.Printf("⊘ API server: not running (start with 'commutewell serve')\n")
	}

	// Check 4: OpenAI key available (warning only; predictions fall
	// back to static text)
	if hasOpenAIKey() {
		fmt.Printf("✓ OpenAI API key: configured\n")
	} else {
		fmt.Printf("⚠ OpenAI API key: not configured, predictions use static explanations\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All required checks passed 🎉")
	return nil
}

func checkStorage(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	_, err := ctx.Store.GetAllCheckins()
	return err
}

func checkDevice() error {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(DeviceURL())
	if err != nil {
		return fmt.Errorf("device not reachable at %s: %v", DeviceURL(), err)
	}
	resp.Body.Close()
	return nil
}

// serveProcessRunning looks for another commutewell process, which in
// practice means a running serve command.
func serveProcessRunning() (bool, error) {
	processes, err := ps.Processes()
	if err != nil {
		return false, err
	}
	self := os.Getpid()
	for _, p := range processes {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			return true, nil
		}
	}
	return false, nil
}

func hasOpenAIKey() bool {
	if os.Getenv(constants.OpenAIKeyEnv) != "" {
		return true
	}
	_, err := keyring.GetOpenAIKey()
	return err == nil
}
