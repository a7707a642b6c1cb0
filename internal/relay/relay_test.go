package relay

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/models"
)

// captureServer records every payload the relay delivers.
type captureServer struct {
	mu     sync.Mutex
	bodies []models.WellnessSnapshot
	srv    *httptest.Server
}

func newCaptureServer(t *testing.T) *captureServer {
	t.Helper()
	cs := &captureServer{}
	cs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		var snap models.WellnessSnapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			t.Errorf("decode body: %v", err)
		}
		cs.mu.Lock()
		cs.bodies = append(cs.bodies, snap)
		cs.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(cs.srv.Close)
	return cs
}

func (cs *captureServer) received() []models.WellnessSnapshot {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	out := make([]models.WellnessSnapshot, len(cs.bodies))
	copy(out, cs.bodies)
	return out
}

func snapshotWithScore(score int) models.WellnessSnapshot {
	return models.WellnessSnapshot{
		WellnessScore: score,
		Streak:        2,
		TotalTasks:    5,
		Trends:        models.StableTrends(),
	}
}

func TestScheduleDebouncesToLatest(t *testing.T) {
	srv := newCaptureServer(t)
	r := New(srv.srv.URL, 50*time.Millisecond)
	defer r.Close()

	// Three rapid changes within one quiet window: only the last should
	// be delivered.
	r.Schedule(snapshotWithScore(60))
	r.Schedule(snapshotWithScore(70))
	r.Schedule(snapshotWithScore(80))

	time.Sleep(300 * time.Millisecond)

	got := srv.received()
	if len(got) != 1 {
		t.Fatalf("device received %d pushes, want 1", len(got))
	}
	if got[0].WellnessScore != 80 {
		t.Errorf("delivered score = %d, want the latest (80)", got[0].WellnessScore)
	}
}

func TestScheduleSkipsUnchangedSnapshots(t *testing.T) {
	srv := newCaptureServer(t)
	r := New(srv.srv.URL, 50*time.Millisecond)
	defer r.Close()

	same := snapshotWithScore(75)
	r.Schedule(same)
	time.Sleep(200 * time.Millisecond)

	// Identical comparison key: no new push should be armed.
	r.Schedule(same)
	time.Sleep(200 * time.Millisecond)

	if got := srv.received(); len(got) != 1 {
		t.Errorf("device received %d pushes for identical data, want 1", len(got))
	}
}

func TestScheduleIgnoresFocusOnlyChanges(t *testing.T) {
	srv := newCaptureServer(t)
	r := New(srv.srv.URL, 50*time.Millisecond)
	defer r.Close()

	first := snapshotWithScore(75)
	first.TodaysFocus = "Drink more water today"
	r.Schedule(first)
	time.Sleep(200 * time.Millisecond)

	// A different tip with the same comparison key is not a change.
	second := snapshotWithScore(75)
	second.TodaysFocus = "Try box breathing in traffic"
	r.Schedule(second)
	time.Sleep(200 * time.Millisecond)

	if got := srv.received(); len(got) != 1 {
		t.Errorf("device received %d pushes, want 1 (focus text is not a change)", len(got))
	}
}

func TestFlushSendsImmediately(t *testing.T) {
	srv := newCaptureServer(t)
	r := New(srv.srv.URL, time.Hour)
	defer r.Close()

	// Even with a pending debounce, Flush must deliver now.
	r.Schedule(snapshotWithScore(60))
	if err := r.Flush(snapshotWithScore(65)); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	got := srv.received()
	if len(got) != 1 {
		t.Fatalf("device received %d pushes, want 1", len(got))
	}
	if got[0].WellnessScore != 65 {
		t.Errorf("delivered score = %d, want 65", got[0].WellnessScore)
	}
}

func TestFlushReportsDeviceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := New(srv.URL, constants.DefaultSyncQuiet)
	if err := r.Flush(snapshotWithScore(50)); err == nil {
		t.Error("Flush() did not surface a 500 from the device")
	}
}

func TestCloseCancelsPendingDelivery(t *testing.T) {
	srv := newCaptureServer(t)
	r := New(srv.srv.URL, 50*time.Millisecond)

	r.Schedule(snapshotWithScore(60))
	r.Close()
	time.Sleep(200 * time.Millisecond)

	if got := srv.received(); len(got) != 0 {
		t.Errorf("device received %d pushes after Close(), want 0", len(got))
	}
}
