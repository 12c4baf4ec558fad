package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/core/domain"
)

const (
	// kakaoDirectionsURL is the Kakao Mobility car directions endpoint.
	kakaoDirectionsURL = "https://apis-navi.kakaomobility.com/v1/directions"

	// kakaoTimeout bounds a single Kakao call, cancelling the in-flight
	// request when it elapses.
	kakaoTimeout = 4000 * time.Millisecond
)

// kakaoClient queries the Kakao Mobility directions API. Kakao reports
// distance in meters and duration in seconds.
type kakaoClient struct {
	key        string
	httpClient *http.Client
	// baseURL and timeout are overridden in tests.
	baseURL string
	timeout time.Duration
}

func newKakaoClient(key string, httpClient *http.Client) *kakaoClient {
	return &kakaoClient{key: key, httpClient: httpClient, baseURL: kakaoDirectionsURL, timeout: kakaoTimeout}
}

func (k *kakaoClient) ID() domain.ProviderID { return domain.ProviderKakao }

func (k *kakaoClient) Timeout() time.Duration { return k.timeout }

func (k *kakaoClient) Estimate(ctx context.Context, from, to domain.Point) (rawEstimate, error) {
	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", from.Lng, from.Lat))
	params.Set("destination", fmt.Sprintf("%f,%f", to.Lng, to.Lat))
	params.Set("priority", "RECOMMEND")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return rawEstimate{}, fmt.Errorf("kakao: create request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+k.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return rawEstimate{}, fmt.Errorf("kakao: http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return rawEstimate{}, fmt.Errorf("kakao: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return rawEstimate{}, fmt.Errorf("kakao: status %d", resp.StatusCode)
	}

	var parsed kakaoDirectionsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return rawEstimate{}, fmt.Errorf("kakao: unmarshal response: %w", err)
	}
	if len(parsed.Routes) == 0 {
		return rawEstimate{}, fmt.Errorf("kakao: no routes returned")
	}

	summary := parsed.Routes[0].Summary
	if summary.Distance == nil || summary.Duration == nil {
		return rawEstimate{}, fmt.Errorf("kakao: response missing distance/duration")
	}

	return rawEstimate{
		DistanceKm:  *summary.Distance / 1000.0,
		DurationMin: *summary.Duration / 60.0,
	}, nil
}

// --- JSON types for the Kakao directions response ---

type kakaoDirectionsResponse struct {
	Routes []kakaoRoute `json:"routes"`
}

type kakaoRoute struct {
	Summary kakaoSummary `json:"summary"`
}

type kakaoSummary struct {
	Distance *float64 `json:"distance"` // meters
	Duration *float64 `json:"duration"` // seconds
}
