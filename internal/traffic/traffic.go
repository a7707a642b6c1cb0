package traffic

import (
	"context"
	"time"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/logger"
	"github.com/julianstephens/commutewell/internal/models"
)

// StatusFor maps a 0-100 congestion level to the three-color signal.
func StatusFor(congestion int) constants.TrafficStatus {
	switch {
	case congestion > constants.CongestionRedAbove:
		return constants.TrafficRed
	case congestion > constants.CongestionYellowAbove:
		return constants.TrafficYellow
	}
	return constants.TrafficGreen
}

// RecommendationFor returns the departure advice for a status.
func RecommendationFor(status constants.TrafficStatus) string {
	if status == constants.TrafficRed {
		return "Wait to leave"
	}
	return "Good time to leave"
}

// Forecast is a congestion curve plus the best slot within it.
type Forecast struct {
	Points            []models.ForecastPoint
	CurrentCongestion int
	BestDepartureTime string
}

// MockForecast returns the canned evening rush-hour curve. Real traffic
// ingestion is out of scope; the shape peaks at 18:30 and eases after.
func MockForecast() Forecast {
	return Forecast{
		Points: []models.ForecastPoint{
			{Time: "17:00", Congestion: 40},
			{Time: "17:30", Congestion: 60},
			{Time: "18:00", Congestion: 85},
			{Time: "18:30", Congestion: 95},
			{Time: "19:00", Congestion: 70},
			{Time: "19:30", Congestion: 50},
		},
		CurrentCongestion: 85,
		BestDepartureTime: "19:30",
	}
}

// Predict assembles the full prediction payload for a route, asking the
// annotator for a one-sentence explanation. The explanation is opaque
// text; annotation failure falls back to the static line and is never
// an error to the caller.
func Predict(ctx context.Context, route models.CommuteRoute, annotator Annotator) models.TrafficPrediction {
	forecast := MockForecast()
	status := StatusFor(forecast.CurrentCongestion)

	explanation, err := annotator.Explain(ctx, route, forecast.CurrentCongestion, forecast.BestDepartureTime)
	if err != nil {
		logger.Warn("Prediction annotation failed, using fallback", "route", route.ID, "error", err)
		explanation, _ = StaticAnnotator{}.Explain(ctx, route, forecast.CurrentCongestion, forecast.BestDepartureTime)
	}

	return models.TrafficPrediction{
		CurrentStatus: models.TrafficStat{
			RouteID:         route.ID,
			Timestamp:       time.Now().Format(time.RFC3339),
			CongestionLevel: forecast.CurrentCongestion,
			Status:          status,
			Recommendation:  RecommendationFor(status),
			Explanation:     explanation,
		},
		Forecast:          forecast.Points,
		BestDepartureTime: forecast.BestDepartureTime,
	}
}
