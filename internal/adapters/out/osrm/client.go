// Package osrm implements the route solver port on top of the OSRM trip API.
//
// The trip service solves the travelling salesman problem over the supplied
// waypoints and reports, per input waypoint, its position in the optimized
// visiting sequence. See http://project-osrm.org/docs/v5.24.0/api/#trip-service.
package osrm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/ports"
)

var ErrBaseURLIsRequired = errors.New("osrm base URL is required")

const defaultTimeout = 10 * time.Second

// Client calls an OSRM instance over HTTP. It implements ports.RouteSolver.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an OSRM client for the given base URL,
// e.g. "http://router.project-osrm.org".
func NewClient(baseURL string) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrBaseURLIsRequired
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

type tripResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Waypoints []struct {
		WaypointIndex int `json:"waypoint_index"`
	} `json:"waypoints"`
	Trips []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry string  `json:"geometry"`
	} `json:"trips"`
}

// Optimize solves a multi-stop trip starting at waypoints[0]. The returned
// visit order maps each input waypoint to its position in the optimized
// sequence, with the first waypoint fixed as the start.
func (c *Client) Optimize(
	ctx context.Context,
	waypoints []kernel.GeoPoint,
	mode ports.TripMode,
) (ports.SolvedTrip, error) {
	if len(waypoints) < 2 {
		return ports.SolvedTrip{}, fmt.Errorf("%w: at least two waypoints are required",
			ports.ErrRouteOptimizationFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tripURL(waypoints, mode), nil)
	if err != nil {
		return ports.SolvedTrip{}, fmt.Errorf("%w: %w", ports.ErrRouteOptimizationFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.SolvedTrip{}, fmt.Errorf("%w: %w", ports.ErrRouteOptimizationFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.SolvedTrip{}, fmt.Errorf("%w: %w", ports.ErrRouteOptimizationFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return ports.SolvedTrip{}, fmt.Errorf("%w: osrm responded %d: %s",
			ports.ErrRouteOptimizationFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var trip tripResponse
	if err = json.Unmarshal(body, &trip); err != nil {
		return ports.SolvedTrip{}, fmt.Errorf("%w: %w", ports.ErrRouteOptimizationFailed, err)
	}

	if trip.Code != "Ok" {
		return ports.SolvedTrip{}, fmt.Errorf("%w: osrm code %s: %s",
			ports.ErrRouteOptimizationFailed, trip.Code, trip.Message)
	}

	if len(trip.Trips) == 0 || len(trip.Waypoints) != len(waypoints) {
		return ports.SolvedTrip{}, fmt.Errorf("%w: osrm returned %d trips and %d waypoints for %d inputs",
			ports.ErrRouteOptimizationFailed, len(trip.Trips), len(trip.Waypoints), len(waypoints))
	}

	visitOrder := make([]int, len(trip.Waypoints))
	for i, waypoint := range trip.Waypoints {
		visitOrder[i] = waypoint.WaypointIndex
	}

	return ports.SolvedTrip{
		VisitOrder:      visitOrder,
		DistanceMeters:  trip.Trips[0].Distance,
		DurationSeconds: trip.Trips[0].Duration,
		Geometry:        trip.Trips[0].Geometry,
	}, nil
}

// tripURL builds the trip request: coordinates are lon,lat pairs separated by
// semicolons; source=first pins the start; roundtrip controls whether the trip
// closes back at the origin.
func (c *Client) tripURL(waypoints []kernel.GeoPoint, mode ports.TripMode) string {
	coords := make([]string, 0, len(waypoints))
	for _, point := range waypoints {
		coords = append(coords,
			strconv.FormatFloat(point.Lon(), 'f', -1, 64)+","+
				strconv.FormatFloat(point.Lat(), 'f', -1, 64))
	}

	params := url.Values{}
	params.Set("source", "first")
	params.Set("roundtrip", strconv.FormatBool(mode == ports.RoundTrip))
	params.Set("geometries", "polyline")

	return c.baseURL + "/trip/v1/driving/" + strings.Join(coords, ";") + "?" + params.Encode()
}
