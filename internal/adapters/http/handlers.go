package http

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/core/domain"
)

// maxWaypoints caps the number of intermediate points per request; the
// sequencer is O(n²) and every segment costs an outbound provider call.
const maxWaypoints = 25

// flexBool accepts boolean-like JSON values: true/false, "true"/"false",
// "1"/"0", 1/0. Mobile clients have historically sent all of these.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.ToLower(bytes.Trim(data, `"`))) {
	case "true", "1":
		*b = true
	case "false", "0", "null", "":
		*b = false
	default:
		return fmt.Errorf("invalid boolean value %s", data)
	}
	return nil
}

// pointPayload is a coordinate as sent by the client. Lat/Lng are pointers so
// a missing field can be told apart from 0.
type pointPayload struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
}

func (p pointPayload) toDomain() (domain.Point, error) {
	if p.Lat == nil || p.Lng == nil {
		return domain.Point{}, errors.New("lat and lng are required")
	}
	pt := domain.Point{ID: p.ID, Name: p.Name, Lat: *p.Lat, Lng: *p.Lng}
	if !pt.Valid() {
		return domain.Point{}, fmt.Errorf("coordinates out of range: %.4f,%.4f", pt.Lat, pt.Lng)
	}
	return pt, nil
}

// optimizeRequest is the raw request body for POST /v1/routes/optimize.
type optimizeRequest struct {
	Origin      *pointPayload  `json:"origin"`
	Waypoints   []pointPayload `json:"waypoints"`
	Destination *pointPayload  `json:"destination"`
	RoundTrip   flexBool       `json:"round_trip"`
	Mode        string         `json:"mode"`
}

// validate turns the raw payload into a domain request, enforcing the
// upstream contract: coordinate ranges, waypoint cap, mode synonyms.
func (r *optimizeRequest) validate() (domain.RouteRequest, error) {
	if r.Origin == nil {
		return domain.RouteRequest{}, errors.New("origin is required")
	}
	origin, err := r.Origin.toDomain()
	if err != nil {
		return domain.RouteRequest{}, fmt.Errorf("origin: %w", err)
	}

	if len(r.Waypoints) > maxWaypoints {
		return domain.RouteRequest{}, fmt.Errorf("too many waypoints: %d (max %d)", len(r.Waypoints), maxWaypoints)
	}
	waypoints := make([]domain.Point, 0, len(r.Waypoints))
	for i, wp := range r.Waypoints {
		pt, err := wp.toDomain()
		if err != nil {
			return domain.RouteRequest{}, fmt.Errorf("waypoints[%d]: %w", i, err)
		}
		waypoints = append(waypoints, pt)
	}

	var destination *domain.Point
	if r.Destination != nil {
		pt, err := r.Destination.toDomain()
		if err != nil {
			return domain.RouteRequest{}, fmt.Errorf("destination: %w", err)
		}
		destination = &pt
	}

	mode, err := domain.ParseTransportMode(r.Mode)
	if err != nil {
		return domain.RouteRequest{}, err
	}

	return domain.RouteRequest{
		Origin:      origin,
		Waypoints:   waypoints,
		Destination: destination,
		RoundTrip:   bool(r.RoundTrip),
		Mode:        mode,
	}, nil
}

// OptimizeRouteHandler orders the request's waypoints and estimates every
// segment of the resulting route.
func OptimizeRouteHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload optimizeRequest
		if err := c.BodyParser(&payload); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		req, err := payload.validate()
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		result, err := deps.Planner.Optimize(c.Context(), req)
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientPoints) {
				return errUnprocessable(c, err.Error())
			}
			// Full detail stays server-side; the caller gets a generic message.
			LoggerFromCtx(c.UserContext()).Error("route optimization failed",
				"error", err, "mode", string(req.Mode), "waypoints", len(req.Waypoints))
			return errInternal(c, "route optimization failed")
		}

		if len(result.Warnings) > 0 {
			slog.Info("route optimized with warnings",
				"mode", string(req.Mode), "segments", len(result.Segments),
				"source", result.Source, "warnings", len(result.Warnings))
		}

		return c.JSON(result)
	}
}
