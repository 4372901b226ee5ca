package api

import (
	"net/http"
	"slices"
	"testing"

	"github.com/terraincognita07/blushy/internal/models"
)

func TestPatchDayMergesAndShowsOnCalendar(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, nil)

	response := doRequest(t, app, http.MethodPatch, "/api/days/2025-2-18", map[string]any{
		"isPeriod": true,
		"flow":     "Heavy",
		"symptoms": []string{"Cramps", " cramps ", "Headache"},
	})
	expectStatus(t, response, http.StatusOK)

	var saved dayResponse
	decodeJSON(t, response, &saved)
	if saved.Date != "2025-03-18" {
		t.Fatalf("expected date 2025-03-18, got %q", saved.Date)
	}
	if !saved.Override.PeriodLogged() || saved.Override.Flow != models.FlowHeavy {
		t.Fatalf("unexpected override after patch: %+v", saved.Override)
	}
	if !slices.Equal(saved.Override.Symptoms, []string{"Cramps", "Headache"}) {
		t.Fatalf("expected deduplicated symptoms, got %v", saved.Override.Symptoms)
	}

	response = doRequest(t, app, http.MethodPatch, "/api/days/2025-2-18", map[string]any{"notes": "  tired  "})
	expectStatus(t, response, http.StatusOK)
	decodeJSON(t, response, &saved)
	if saved.Override.Flow != models.FlowHeavy || saved.Override.NotesText() != "tired" {
		t.Fatalf("expected notes merged onto existing override, got %+v", saved.Override)
	}

	response = doRequest(t, app, http.MethodGet, "/api/calendar?month=2025-03", nil)
	expectStatus(t, response, http.StatusOK)
	var calendar calendarResponse
	decodeJSON(t, response, &calendar)

	cell := findCell(t, calendar.Month.Cells, "2025-03-18")
	if !cell.IsPeriod || cell.Flow != models.FlowHeavy {
		t.Fatalf("expected override period on day 18, got %+v", cell)
	}
	if cell.Notes != "tired" {
		t.Fatalf("expected notes on calendar cell, got %q", cell.Notes)
	}
}

func TestGetDaysAndDeleteDay(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, nil)
	expectStatus(t, doRequest(t, app, http.MethodPatch, "/api/days/2025-2-3", map[string]any{"hasSex": true}), http.StatusOK)

	response := doRequest(t, app, http.MethodGet, "/api/days", nil)
	expectStatus(t, response, http.StatusOK)
	overrides := models.Overrides{}
	decodeJSON(t, response, &overrides)
	if !overrides["2025-2-3"].SexLogged() {
		t.Fatalf("expected stored override for 2025-2-3, got %+v", overrides)
	}

	expectStatus(t, doRequest(t, app, http.MethodDelete, "/api/days/2025-2-3", nil), http.StatusNoContent)

	response = doRequest(t, app, http.MethodGet, "/api/days/2025-2-3", nil)
	expectStatus(t, response, http.StatusOK)
	var day dayResponse
	decodeJSON(t, response, &day)
	if !day.Override.IsEmpty() {
		t.Fatalf("expected empty override after delete, got %+v", day.Override)
	}
}

func TestDayRoutesRejectInvalidInput(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, nil)

	// Month index 1 is February, which has no 31st.
	response := doRequest(t, app, http.MethodGet, "/api/days/2025-1-31", nil)
	expectStatus(t, response, http.StatusBadRequest)
	if got := readAPIError(t, response); got != "invalid day key" {
		t.Fatalf("expected invalid day key, got %q", got)
	}

	response = doRequest(t, app, http.MethodGet, "/api/days/2025-2-31", nil)
	expectStatus(t, response, http.StatusOK)
	var march dayResponse
	decodeJSON(t, response, &march)
	if march.Date != "2025-03-31" {
		t.Fatalf("expected 2025-2-31 to be 31 March, got %q", march.Date)
	}

	response = doRequest(t, app, http.MethodPatch, "/api/days/2025-2-1", map[string]any{"flow": "torrential"})
	expectStatus(t, response, http.StatusBadRequest)
	if got := readAPIError(t, response); got != "invalid flow" {
		t.Fatalf("expected invalid flow, got %q", got)
	}

	response = doRequest(t, app, http.MethodDelete, "/api/days/2025-02-01", nil)
	expectStatus(t, response, http.StatusBadRequest)
}

func TestLogPeriodRestartsCycleToday(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, nil)
	response := doRequest(t, app, http.MethodPost, "/api/period", nil)
	expectStatus(t, response, http.StatusOK)

	var logged dayResponse
	decodeJSON(t, response, &logged)
	if logged.DayKey != "2025-2-10" {
		t.Fatalf("expected today's key 2025-2-10, got %q", logged.DayKey)
	}
	if !logged.Override.PeriodLogged() || logged.Override.Flow != models.FlowMedium {
		t.Fatalf("expected medium period override, got %+v", logged.Override)
	}

	response = doRequest(t, app, http.MethodGet, "/api/settings/cycle", nil)
	expectStatus(t, response, http.StatusOK)
	var settings cycleSettingsResponse
	decodeJSON(t, response, &settings)
	if settings.CycleStartDate != "2025-03-10" {
		t.Fatalf("expected cycle start reset to today, got %q", settings.CycleStartDate)
	}

	response = doRequest(t, app, http.MethodGet, "/api/prediction", nil)
	expectStatus(t, response, http.StatusOK)
	var prediction predictionResponse
	decodeJSON(t, response, &prediction)
	if prediction.Prediction.CycleDayNumber != 1 {
		t.Fatalf("expected cycle day 1 after logging period, got %d", prediction.Prediction.CycleDayNumber)
	}
}
