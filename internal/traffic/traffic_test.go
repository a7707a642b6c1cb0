package traffic

import (
	"context"
	"errors"
	"testing"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/models"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		congestion int
		want       constants.TrafficStatus
	}{
		{0, constants.TrafficGreen},
		{50, constants.TrafficGreen},
		{51, constants.TrafficYellow},
		{80, constants.TrafficYellow},
		{81, constants.TrafficRed},
		{100, constants.TrafficRed},
	}

	for _, tt := range tests {
		if got := StatusFor(tt.congestion); got != tt.want {
			t.Errorf("StatusFor(%d) = %q, want %q", tt.congestion, got, tt.want)
		}
	}
}

func TestRecommendationFor(t *testing.T) {
	if got := RecommendationFor(constants.TrafficRed); got != "Wait to leave" {
		t.Errorf("RecommendationFor(red) = %q", got)
	}
	if got := RecommendationFor(constants.TrafficGreen); got != "Good time to leave" {
		t.Errorf("RecommendationFor(green) = %q", got)
	}
}

func TestMockForecastShape(t *testing.T) {
	f := MockForecast()
	if len(f.Points) != 6 {
		t.Fatalf("forecast has %d points, want 6", len(f.Points))
	}

	best := f.Points[0]
	for _, p := range f.Points {
		if p.Congestion < best.Congestion {
			best = p
		}
	}
	if f.BestDepartureTime != best.Time {
		t.Errorf("BestDepartureTime = %q, want the lowest-congestion slot %q", f.BestDepartureTime, best.Time)
	}
}

type failingAnnotator struct{}

func (failingAnnotator) Explain(context.Context, models.CommuteRoute, int, string) (string, error) {
	return "", errors.New("model unavailable")
}

func TestPredict(t *testing.T) {
	route := models.CommuteRoute{ID: "r1", Origin: "Lathrop, CA", Destination: "San Francisco, CA"}

	pred := Predict(context.Background(), route, StaticAnnotator{})
	if pred.CurrentStatus.RouteID != "r1" {
		t.Errorf("RouteID = %q", pred.CurrentStatus.RouteID)
	}
	if pred.CurrentStatus.Status != constants.TrafficRed {
		t.Errorf("Status = %q, want red at congestion 85", pred.CurrentStatus.Status)
	}
	if pred.CurrentStatus.Recommendation != "Wait to leave" {
		t.Errorf("Recommendation = %q", pred.CurrentStatus.Recommendation)
	}
	if pred.CurrentStatus.Explanation == "" {
		t.Error("Explanation is empty")
	}
	if pred.BestDepartureTime != "19:30" {
		t.Errorf("BestDepartureTime = %q", pred.BestDepartureTime)
	}
}

func TestPredictFallsBackOnAnnotatorError(t *testing.T) {
	route := models.CommuteRoute{ID: "r1"}

	pred := Predict(context.Background(), route, failingAnnotator{})
	if pred.CurrentStatus.Explanation != "Traffic is heavy." {
		t.Errorf("Explanation = %q, want the static fallback", pred.CurrentStatus.Explanation)
	}
}
