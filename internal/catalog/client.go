package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/config"
	apperrors "github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/errors"
)

// Client talks to the remote catalog service over HTTP.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a catalog client from configuration.
func NewClient(cfg *config.Config) (*Client, error) {
	base := cfg.CatalogBaseURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	baseURL, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid catalog base URL '%s': %w", cfg.CatalogBaseURL, err)
	}

	timeout := time.Duration(cfg.CatalogTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.CatalogAPIKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// envelope is the catalog's uniform response wrapper. The catalog reports
// success as the literal string "true".
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e *envelope) ok() bool {
	return e.Status == "true"
}

// do executes one catalog request and decodes the envelope. The returned
// error is a TransportError when the outcome is ambiguous (request possibly
// applied) and a GatewayRejectedError when the catalog answered and refused.
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body interface{}) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %w", operation, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and connection failures are indistinguishable from a
		// lost acknowledgment; the catalog may have applied the request.
		return nil, apperrors.NewTransportError(operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewTransportError(operation, err)
	}

	if resp.StatusCode >= 500 {
		// 5xx includes bad gateways and upstream timeouts from
		// intermediaries; the catalog may have applied the request before
		// the response was lost.
		return nil, apperrors.NewTransportError(operation,
			fmt.Errorf("status=%d body=%s", resp.StatusCode, truncate(raw, 200)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewGatewayRejectedError(operation,
			fmt.Sprintf("status=%d body=%s", resp.StatusCode, truncate(raw, 200)))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, apperrors.NewTransportError(operation, fmt.Errorf("failed to decode response: %w", err))
	}
	if !env.ok() {
		return nil, apperrors.NewGatewayRejectedError(operation, env.Message)
	}

	return env.Data, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

func dateQuery(date string) url.Values {
	q := url.Values{}
	q.Set("date", date)
	return q
}

// GetTeams returns all teams and their rosters for a date.
func (c *Client) GetTeams(ctx context.Context, date string) ([]Team, error) {
	data, err := c.do(ctx, "GetTeams", http.MethodGet, "/api/teams", dateQuery(date), nil)
	if err != nil {
		return nil, err
	}
	var teams []Team
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, apperrors.NewTransportError("GetTeams", fmt.Errorf("failed to decode teams: %w", err))
	}
	return teams, nil
}

// GetMissions returns all missions for a date.
func (c *Client) GetMissions(ctx context.Context, date string) ([]Mission, error) {
	data, err := c.do(ctx, "GetMissions", http.MethodGet, "/api/missions", dateQuery(date), nil)
	if err != nil {
		return nil, err
	}
	var missions []Mission
	if err := json.Unmarshal(data, &missions); err != nil {
		return nil, apperrors.NewTransportError("GetMissions", fmt.Errorf("failed to decode missions: %w", err))
	}
	return missions, nil
}

// GetMissionGroups returns the mission groups for a date.
func (c *Client) GetMissionGroups(ctx context.Context, date string) ([]MissionGroup, error) {
	data, err := c.do(ctx, "GetMissionGroups", http.MethodGet, "/api/mission-groups", dateQuery(date), nil)
	if err != nil {
		return nil, err
	}
	var groups []MissionGroup
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, apperrors.NewTransportError("GetMissionGroups", fmt.Errorf("failed to decode mission groups: %w", err))
	}
	return groups, nil
}

// GetPlanLoad returns per-resource plan load for a date.
func (c *Client) GetPlanLoad(ctx context.Context, date string) (*PlanLoad, error) {
	data, err := c.do(ctx, "GetPlanLoad", http.MethodGet, "/api/plan-load", dateQuery(date), nil)
	if err != nil {
		return nil, err
	}
	var load PlanLoad
	if err := json.Unmarshal(data, &load); err != nil {
		return nil, apperrors.NewTransportError("GetPlanLoad", fmt.Errorf("failed to decode plan load: %w", err))
	}
	if load.Pilots == nil {
		load.Pilots = map[int]PlanLoadEntry{}
	}
	if load.Drones == nil {
		load.Drones = map[int]PlanLoadEntry{}
	}
	return &load, nil
}

type movePayload struct {
	ResourceID   int    `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	FromTeamID   int    `json:"from_team_id"`
	ToTeamID     int    `json:"to_team_id"`
}

// MovePilot relocates one pilot between teams. The request is idempotent on
// the catalog side.
func (c *Client) MovePilot(ctx context.Context, pilotID int, pilotName string, fromTeamID, toTeamID int) error {
	payload := movePayload{ResourceID: pilotID, ResourceName: pilotName, FromTeamID: fromTeamID, ToTeamID: toTeamID}
	_, err := c.do(ctx, "MovePilot", http.MethodPost, "/api/pilot-moves", nil, payload)
	return err
}

// MoveDrone relocates one drone between teams. The request is idempotent on
// the catalog side.
func (c *Client) MoveDrone(ctx context.Context, droneID int, droneTag string, fromTeamID, toTeamID int) error {
	payload := movePayload{ResourceID: droneID, ResourceName: droneTag, FromTeamID: fromTeamID, ToTeamID: toTeamID}
	_, err := c.do(ctx, "MoveDrone", http.MethodPost, "/api/drone-moves", nil, payload)
	return err
}

// CreateGroup creates a mission group and returns the catalog-assigned id.
func (c *Client) CreateGroup(ctx context.Context, req CreateGroupRequest) (int, error) {
	data, err := c.do(ctx, "CreateGroup", http.MethodPost, "/api/mission-groups", nil, req)
	if err != nil {
		return 0, err
	}
	var created struct {
		GroupID int `json:"group_id"`
	}
	if err := json.Unmarshal(data, &created); err != nil {
		return 0, apperrors.NewTransportError("CreateGroup", fmt.Errorf("failed to decode group id: %w", err))
	}
	return created.GroupID, nil
}

// ExtendGroup adds missions to an existing group.
func (c *Client) ExtendGroup(ctx context.Context, groupID int, missionIDs []int) error {
	payload := struct {
		MissionIDs []int `json:"mission_ids"`
	}{MissionIDs: missionIDs}
	path := fmt.Sprintf("/api/mission-groups/%d/missions", groupID)
	_, err := c.do(ctx, "ExtendGroup", http.MethodPost, path, nil, payload)
	return err
}

// ShrinkGroup removes missions from whichever groups hold them. A group
// emptied by this call is deleted by the catalog, not by us.
func (c *Client) ShrinkGroup(ctx context.Context, missionIDs []int) error {
	payload := struct {
		MissionIDs []int `json:"mission_ids"`
	}{MissionIDs: missionIDs}
	_, err := c.do(ctx, "ShrinkGroup", http.MethodDelete, "/api/mission-groups/missions", nil, payload)
	return err
}

// AddToPool returns pilots and drones to the pool team in bulk.
func (c *Client) AddToPool(ctx context.Context, pilotIDs, droneIDs []int, poolTeamID int) (*PoolResult, error) {
	payload := struct {
		PilotIDs   []int `json:"pilot_ids"`
		DroneIDs   []int `json:"drone_ids"`
		PoolTeamID int   `json:"pool_team_id"`
	}{PilotIDs: pilotIDs, DroneIDs: droneIDs, PoolTeamID: poolTeamID}

	data, err := c.do(ctx, "AddToPool", http.MethodPost, "/api/pool", nil, payload)
	if err != nil {
		return nil, err
	}
	var result PoolResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, apperrors.NewTransportError("AddToPool", fmt.Errorf("failed to decode pool result: %w", err))
	}
	return &result, nil
}
