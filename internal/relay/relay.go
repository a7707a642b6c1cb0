package relay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/logger"
	"github.com/julianstephens/commutewell/internal/models"
)

// syncKey is the change-detection tuple: only these fields decide
// whether a snapshot is worth pushing again.
type syncKey struct {
	score          int
	streak         int
	tasksCompleted int
	commuteTime    float64
	energy         string
	stress         string
	comfort        string
}

func keyOf(s models.WellnessSnapshot) syncKey {
	return syncKey{
		score:          s.WellnessScore,
		streak:         s.Streak,
		tasksCompleted: s.TasksCompleted,
		commuteTime:    s.CommuteTime,
		energy:         string(s.Trends.Energy.Direction),
		stress:         string(s.Trends.Stress.Direction),
		comfort:        string(s.Trends.Comfort.Direction),
	}
}

// Relay pushes wellness snapshots to the remote display, debounced by a
// quiet period. There is a single pending slot: every schedule with new
// data cancels the previous timer, so only the latest snapshot within an
// idle window goes out. Delivery is best effort; failures are logged and
// swallowed, never retried.
type Relay struct {
	endpoint string
	quiet    time.Duration
	client   *http.Client

	mu      sync.Mutex
	timer   *time.Timer
	lastKey *syncKey
}

// New creates a relay for the device endpoint with the given quiet
// period.
func New(endpoint string, quiet time.Duration) *Relay {
	return &Relay{
		endpoint: endpoint,
		quiet:    quiet,
		client:   &http.Client{Timeout: constants.DeviceSyncTimeout},
	}
}

// Schedule queues a snapshot for delivery after the quiet period.
// Snapshots whose comparison key matches the last scheduled one are
// ignored so unrelated field churn cannot re-trigger a push.
func (r *Relay) Schedule(snapshot models.WellnessSnapshot) {
	key := keyOf(snapshot)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastKey != nil && *r.lastKey == key {
		return
	}
	r.lastKey = &key

	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.quiet, func() {
		r.send(snapshot)
	})
}

// Flush sends a snapshot immediately, bypassing the debounce. Used by
// the one-shot sync command.
func (r *Relay) Flush(snapshot models.WellnessSnapshot) error {
	r.mu.Lock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	key := keyOf(snapshot)
	r.lastKey = &key
	r.mu.Unlock()

	return r.post(snapshot)
}

// Close cancels any pending delivery.
func (r *Relay) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// send is the fire-and-forget delivery path: errors are logged at warn
// and dropped. The next data change re-arms the debounce naturally.
func (r *Relay) send(snapshot models.WellnessSnapshot) {
	if err := r.post(snapshot); err != nil {
		logger.Warn("Device sync failed", "endpoint", r.endpoint, "error", err)
	} else {
		logger.Debug("Device sync delivered", "endpoint", r.endpoint, "score", snapshot.WellnessScore)
	}
}

func (r *Relay) post(snapshot models.WellnessSnapshot) error {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	resp, err := r.client.Post(r.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("device responded with status %d", resp.StatusCode)
	}
	return nil
}
