package catalog

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mocks/catalog_mocks.go -package=mocks

// Gateway is the remote catalog service contract. All calls are synchronous
// request/response; the catalog is authoritative for allocation state.
//
// Error classification matters to callers: a *errors.TransportError means the
// request may or may not have been applied (the caller must refresh and trust
// the refreshed state), while a *errors.GatewayRejectedError means the catalog
// explicitly refused and nothing changed server-side.
type Gateway interface {
	GetTeams(ctx context.Context, date string) ([]Team, error)
	GetMissions(ctx context.Context, date string) ([]Mission, error)
	GetMissionGroups(ctx context.Context, date string) ([]MissionGroup, error)
	GetPlanLoad(ctx context.Context, date string) (*PlanLoad, error)
	MovePilot(ctx context.Context, pilotID int, pilotName string, fromTeamID, toTeamID int) error
	MoveDrone(ctx context.Context, droneID int, droneTag string, fromTeamID, toTeamID int) error
	CreateGroup(ctx context.Context, req CreateGroupRequest) (int, error)
	ExtendGroup(ctx context.Context, groupID int, missionIDs []int) error
	ShrinkGroup(ctx context.Context, missionIDs []int) error
	AddToPool(ctx context.Context, pilotIDs, droneIDs []int, poolTeamID int) (*PoolResult, error)
}
