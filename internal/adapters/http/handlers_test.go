package http_test

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	httpadapter "github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/adapters/http"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/core/domain"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/core/usecases"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/pkg/geospatial"
)

// --- Mock estimator (the handler exercises a real planner on top of it) ---

type mockEstimator struct{}

func (mockEstimator) Estimate(_ context.Context, from, to domain.Point, mode domain.TransportMode) (domain.SegmentEstimate, []string) {
	km, min := geospatial.FallbackEstimate(from.Lat, from.Lng, to.Lat, to.Lng, string(mode))
	return domain.SegmentEstimate{
		From: from, To: to,
		DistanceKm: km, DurationMin: min,
		Provider: domain.ProviderKakao,
	}, nil
}

func (mockEstimator) Configured() bool { return true }

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	deps := &httpadapter.Dependencies{
		Planner: usecases.NewPlannerService(mockEstimator{}),
	}
	httpadapter.SetupRoutes(app, deps)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*nethttp.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, payload
}

func decodeError(t *testing.T, body []byte) httpadapter.APIError {
	t.Helper()
	var apiErr httpadapter.APIError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, body)
	}
	return apiErr
}

func TestOptimizeRoute_Success(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "POST", "/v1/routes/optimize", `{
		"origin": {"name": "hotel", "lat": 37.50, "lng": 127.00},
		"waypoints": [
			{"name": "palace", "lat": 37.58, "lng": 126.98},
			{"name": "market", "lat": 37.51, "lng": 127.01}
		],
		"mode": "driving"
	}`)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var result domain.RouteResult
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(result.OrderedPoints) != 3 {
		t.Errorf("expected 3 ordered points, got %d", len(result.OrderedPoints))
	}
	if len(result.Segments) != 2 {
		t.Errorf("expected 2 segments, got %d", len(result.Segments))
	}
	if result.OrderedPoints[1].Name != "market" {
		t.Errorf("nearest waypoint should come first, got %s", result.OrderedPoints[1].Name)
	}
	if result.TotalDistanceKm <= 0 || result.TotalDurationMin <= 0 {
		t.Errorf("expected positive totals, got %f km / %f min",
			result.TotalDistanceKm, result.TotalDurationMin)
	}
	if result.Source != "kakao" {
		t.Errorf("expected kakao source, got %s", result.Source)
	}
}

func TestOptimizeRoute_RoundTripStringCoercion(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "POST", "/v1/routes/optimize", `{
		"origin": {"lat": 37.50, "lng": 127.00},
		"waypoints": [{"lat": 37.51, "lng": 127.01}],
		"round_trip": "true"
	}`)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var result domain.RouteResult
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	last := result.OrderedPoints[len(result.OrderedPoints)-1]
	if last.Lat != 37.50 || last.Lng != 127.00 {
		t.Errorf("round trip should close at origin, got %f,%f", last.Lat, last.Lng)
	}
}

func TestOptimizeRoute_TooManyWaypoints(t *testing.T) {
	app := setupApp(t)

	var sb strings.Builder
	sb.WriteString(`{"origin": {"lat": 37.50, "lng": 127.00}, "waypoints": [`)
	for i := 0; i < 26; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"lat": 37.51, "lng": 127.01}`)
	}
	sb.WriteString(`]}`)

	resp, body := doJSON(t, app, "POST", "/v1/routes/optimize", sb.String())
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	apiErr := decodeError(t, body)
	if apiErr.Code != "bad_request" || !strings.Contains(apiErr.Message, "too many waypoints") {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestOptimizeRoute_LatitudeOutOfRange(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "POST", "/v1/routes/optimize", `{
		"origin": {"lat": 95, "lng": 127.00},
		"waypoints": [{"lat": 37.51, "lng": 127.01}]
	}`)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	apiErr := decodeError(t, body)
	if !strings.Contains(apiErr.Message, "out of range") {
		t.Errorf("unexpected message: %s", apiErr.Message)
	}
}

func TestOptimizeRoute_UnknownMode(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "POST", "/v1/routes/optimize", `{
		"origin": {"lat": 37.50, "lng": 127.00},
		"waypoints": [{"lat": 37.51, "lng": 127.01}],
		"mode": "teleport"
	}`)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	apiErr := decodeError(t, body)
	if !strings.Contains(apiErr.Message, "unknown transport mode") {
		t.Errorf("unexpected message: %s", apiErr.Message)
	}
}

func TestOptimizeRoute_ModeSynonym(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, "POST", "/v1/routes/optimize", `{
		"origin": {"lat": 37.50, "lng": 127.00},
		"waypoints": [{"lat": 37.51, "lng": 127.01}],
		"mode": "subway"
	}`)
	if resp.StatusCode != 200 {
		t.Fatalf("mode synonym should be accepted, got %d", resp.StatusCode)
	}
}

func TestOptimizeRoute_MissingOrigin(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "POST", "/v1/routes/optimize", `{
		"waypoints": [{"lat": 37.51, "lng": 127.01}]
	}`)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	apiErr := decodeError(t, body)
	if !strings.Contains(apiErr.Message, "origin is required") {
		t.Errorf("unexpected message: %s", apiErr.Message)
	}
}

func TestOptimizeRoute_OriginOnlyUnprocessable(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "POST", "/v1/routes/optimize", `{
		"origin": {"lat": 37.50, "lng": 127.00}
	}`)
	if resp.StatusCode != 422 {
		t.Fatalf("expected 422, got %d: %s", resp.StatusCode, body)
	}
	apiErr := decodeError(t, body)
	if apiErr.Code != "unprocessable" {
		t.Errorf("expected unprocessable code, got %s", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "at least two points") {
		t.Errorf("unexpected message: %s", apiErr.Message)
	}
}

func TestOptimizeRoute_MalformedBody(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "POST", "/v1/routes/optimize", `{not json`)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	apiErr := decodeError(t, body)
	if apiErr.Message != "invalid request body" {
		t.Errorf("unexpected message: %s", apiErr.Message)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "GET", "/v1/health", "")
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode health body: %v", err)
	}
	if payload["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", payload["status"])
	}
}

func TestReadyEndpoint_ReportsProviders(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "GET", "/v1/ready", "")
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Status    string            `json:"status"`
		Providers map[string]string `json:"providers"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode ready body: %v", err)
	}
	if payload.Status != "ready" {
		t.Errorf("expected ready status, got %s", payload.Status)
	}
	// Zero-value capabilities: both providers report not configured, but the
	// service is still ready because the geometric fallback answers.
	if payload.Providers["kakao"] != "not configured" || payload.Providers["odsay"] != "not configured" {
		t.Errorf("unexpected provider states: %v", payload.Providers)
	}
}

func TestSecurityHeaders(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, "GET", "/v1/health", "")
	if got := resp.Header.Get("X-API-Version"); got != "1.0.0" {
		t.Errorf("expected X-API-Version 1.0.0, got %q", got)
	}
	if got := resp.Header.Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected nosniff, got %q", got)
	}
}
