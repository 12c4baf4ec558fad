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
	// odsayPathURL is the ODsay public-transit path search endpoint.
	odsayPathURL = "https://api.odsay.com/v1/api/searchPubTransPathT"

	// odsayTimeout bounds a single ODsay call.
	odsayTimeout = 4500 * time.Millisecond
)

// odsayClient queries the ODsay public-transit path API. ODsay reports
// distance in meters and total time already in minutes.
type odsayClient struct {
	key        string
	httpClient *http.Client
	// baseURL and timeout are overridden in tests.
	baseURL string
	timeout time.Duration
}

func newODsayClient(key string, httpClient *http.Client) *odsayClient {
	return &odsayClient{key: key, httpClient: httpClient, baseURL: odsayPathURL, timeout: odsayTimeout}
}

func (o *odsayClient) ID() domain.ProviderID { return domain.ProviderODsay }

func (o *odsayClient) Timeout() time.Duration { return o.timeout }

func (o *odsayClient) Estimate(ctx context.Context, from, to domain.Point) (rawEstimate, error) {
	params := url.Values{}
	params.Set("SX", fmt.Sprintf("%f", from.Lng))
	params.Set("SY", fmt.Sprintf("%f", from.Lat))
	params.Set("EX", fmt.Sprintf("%f", to.Lng))
	params.Set("EY", fmt.Sprintf("%f", to.Lat))
	params.Set("apiKey", o.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return rawEstimate{}, fmt.Errorf("odsay: create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return rawEstimate{}, fmt.Errorf("odsay: http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return rawEstimate{}, fmt.Errorf("odsay: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return rawEstimate{}, fmt.Errorf("odsay: status %d", resp.StatusCode)
	}

	var parsed odsayPathResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return rawEstimate{}, fmt.Errorf("odsay: unmarshal response: %w", err)
	}
	// ODsay signals application errors inside a 200 body.
	if len(parsed.Error) > 0 {
		return rawEstimate{}, fmt.Errorf("odsay: api error: %s", parsed.Error[0].Message)
	}
	if len(parsed.Result.Path) == 0 {
		return rawEstimate{}, fmt.Errorf("odsay: no transit path returned")
	}

	info := parsed.Result.Path[0].Info
	if info.TotalDistance == nil || info.TotalTime == nil {
		return rawEstimate{}, fmt.Errorf("odsay: response missing distance/time")
	}

	return rawEstimate{
		DistanceKm:  *info.TotalDistance / 1000.0,
		DurationMin: *info.TotalTime, // already minutes
	}, nil
}

// --- JSON types for the ODsay path response ---

type odsayPathResponse struct {
	Result odsayResult  `json:"result"`
	Error  []odsayError `json:"error"`
}

type odsayError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type odsayResult struct {
	Path []odsayPath `json:"path"`
}

type odsayPath struct {
	Info odsayPathInfo `json:"info"`
}

type odsayPathInfo struct {
	TotalDistance *float64 `json:"totalDistance"` // meters
	TotalTime     *float64 `json:"totalTime"`     // minutes
}
