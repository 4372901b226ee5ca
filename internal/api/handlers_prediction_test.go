package api

import (
	"net/http"
	"testing"
	"time"
)

func TestGetPredictionFromConfiguredStart(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, nil)
	expectStatus(t, doRequest(t, app, http.MethodPost, "/api/settings/cycle", map[string]any{
		"averageCycleLength": 28,
		"periodLength":       5,
		"cycleStartDate":     "2024-12-25",
	}), http.StatusOK)

	response := doRequest(t, app, http.MethodGet, "/api/prediction", nil)
	expectStatus(t, response, http.StatusOK)

	var payload predictionResponse
	decodeJSON(t, response, &payload)

	if !payload.HasCycleStart {
		t.Fatal("expected configured cycle start")
	}
	if payload.Prediction.CycleDayNumber != 20 || payload.Prediction.DaysUntilNextPeriod != 8 {
		t.Fatalf("expected day 20 with 8 days left, got %+v", payload.Prediction)
	}
	wantNext := time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC)
	if !payload.Insights.NextPeriodStart.Equal(wantNext) {
		t.Fatalf("expected next period %s, got %s", wantNext, payload.Insights.NextPeriodStart)
	}
	if payload.PhaseLabel != "Normal" || payload.InsightLabel != "Luteal phase" {
		t.Fatalf("unexpected labels %q / %q", payload.PhaseLabel, payload.InsightLabel)
	}
	if payload.Summary != "Cycle day 20 of 28, Normal. Next period in 8 days." {
		t.Fatalf("unexpected summary %q", payload.Summary)
	}
}

func TestGetPredictionWithoutStartCountsFromToday(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, nil)
	response := doRequest(t, app, http.MethodGet, "/api/prediction", nil)
	expectStatus(t, response, http.StatusOK)

	var payload predictionResponse
	decodeJSON(t, response, &payload)
	if payload.HasCycleStart {
		t.Fatal("expected no cycle start")
	}
	if payload.Prediction.CycleDayNumber != 1 {
		t.Fatalf("expected day 1 when counting from today, got %d", payload.Prediction.CycleDayNumber)
	}
	if payload.Summary != "No cycle start recorded yet; counting from today." {
		t.Fatalf("unexpected summary %q", payload.Summary)
	}
}

func TestGetPredictionFallsBackToLoggedPeriods(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, nil)
	for _, key := range []string{"2025-1-27", "2025-1-28", "2025-2-1"} {
		expectStatus(t, doRequest(t, app, http.MethodPatch, "/api/days/"+key, map[string]any{"isPeriod": true}), http.StatusOK)
	}

	response := doRequest(t, app, http.MethodGet, "/api/prediction", nil)
	expectStatus(t, response, http.StatusOK)

	var payload predictionResponse
	decodeJSON(t, response, &payload)
	if !payload.HasCycleStart {
		t.Fatal("expected cycle start detected from logged periods")
	}
	wantStart := time.Date(2025, time.February, 27, 0, 0, 0, 0, time.UTC)
	if !payload.CycleStartDate.Equal(wantStart) {
		t.Fatalf("expected cycle start %s, got %s", wantStart, payload.CycleStartDate)
	}
	if payload.Prediction.CycleDayNumber != 12 {
		t.Fatalf("expected cycle day 12, got %d", payload.Prediction.CycleDayNumber)
	}
}
