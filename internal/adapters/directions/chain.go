package directions

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/core/domain"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/pkg/geospatial"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/pkg/metrics"
)

const (
	// Connection pool bounds for outbound provider calls. 30s idle keeps us
	// under typical server-side keep-alive limits.
	httpMaxIdleConns    = 10
	httpIdleConnTimeout = 30 * time.Second
)

// rawEstimate is a provider response normalized to engine units.
type rawEstimate struct {
	DistanceKm  float64
	DurationMin float64
}

// providerClient is one external estimator with a uniform signature.
type providerClient interface {
	ID() domain.ProviderID
	Timeout() time.Duration
	Estimate(ctx context.Context, from, to domain.Point) (rawEstimate, error)
}

// Chain tries external providers in mode-dependent order for each segment and
// degrades to the geometric estimate when every attempt fails. It implements
// ports.SegmentEstimator. A Chain is immutable after construction and safe
// for concurrent use.
type Chain struct {
	clients map[domain.ProviderID]providerClient
	caps    Capabilities
	secrets []string
}

// NewChain builds the estimation chain for the resolved capability set.
// Providers without credentials are left out entirely.
func NewChain(caps Capabilities) *Chain {
	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        httpMaxIdleConns,
			MaxIdleConnsPerHost: httpMaxIdleConns,
			IdleConnTimeout:     httpIdleConnTimeout,
		},
	}

	clients := make(map[domain.ProviderID]providerClient)
	if caps.HasKakao() {
		clients[domain.ProviderKakao] = newKakaoClient(caps.kakaoKey, httpClient)
	}
	if caps.HasODsay() {
		clients[domain.ProviderODsay] = newODsayClient(caps.odsayKey, httpClient)
	}

	return &Chain{clients: clients, caps: caps, secrets: caps.secrets()}
}

// Configured reports whether any provider has usable credentials.
func (c *Chain) Configured() bool { return c.caps.Any() }

// attemptOrder returns the provider priority for a transport mode, restricted
// to configured providers. ODsay is transit-aware, so it leads for transit;
// Kakao leads otherwise.
func (c *Chain) attemptOrder(mode domain.TransportMode) []domain.ProviderID {
	var preferred []domain.ProviderID
	if mode == domain.ModeTransit {
		preferred = []domain.ProviderID{domain.ProviderODsay, domain.ProviderKakao}
	} else {
		preferred = []domain.ProviderID{domain.ProviderKakao, domain.ProviderODsay}
	}

	order := make([]domain.ProviderID, 0, len(preferred))
	for _, id := range preferred {
		if _, ok := c.clients[id]; ok {
			order = append(order, id)
		}
	}
	return order
}

// Estimate attempts each configured provider in order for the segment. Each
// attempt runs under its own deadline; expiry cancels the in-flight request
// and is treated like any other provider failure. Failures are downgraded to
// redacted warnings and never abort the segment: when the list is exhausted
// (or empty) the geometric fallback answers.
func (c *Chain) Estimate(ctx context.Context, from, to domain.Point, mode domain.TransportMode) (domain.SegmentEstimate, []string) {
	var warnings []string

	for _, id := range c.attemptOrder(mode) {
		client := c.clients[id]

		callCtx, cancel := context.WithTimeout(ctx, client.Timeout())
		start := time.Now()
		raw, err := client.Estimate(callCtx, from, to)
		cancel()

		metrics.ProviderCallDuration.WithLabelValues(string(id)).Observe(time.Since(start).Seconds())

		if err != nil {
			metrics.ProviderAttempts.WithLabelValues(string(id), "failure").Inc()
			warnings = append(warnings, fmt.Sprintf("%s failed for %s -> %s: %s",
				id, from.Label(), to.Label(), scrub(err.Error(), c.secrets...)))
			continue
		}

		metrics.ProviderAttempts.WithLabelValues(string(id), "success").Inc()
		return domain.SegmentEstimate{
			From:        from,
			To:          to,
			DistanceKm:  geospatial.Round(raw.DistanceKm, 2),
			DurationMin: geospatial.Round(raw.DurationMin, 1),
			Provider:    id,
		}, warnings
	}

	metrics.FallbackSegments.Inc()
	km, min := geospatial.FallbackEstimate(from.Lat, from.Lng, to.Lat, to.Lng, string(mode))
	return domain.SegmentEstimate{
		From:        from,
		To:          to,
		DistanceKm:  km,
		DurationMin: min,
		Provider:    domain.ProviderFallback,
	}, warnings
}
