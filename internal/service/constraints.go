package service

import (
	"fmt"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/catalog"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/config"
)

// ResourceKind identifies what is being moved between teams.
type ResourceKind string

const (
	ResourcePilot ResourceKind = "pilot"
	ResourceDrone ResourceKind = "drone"
)

// Limits configures the team constraints. Ceilings of zero mean unbounded;
// the historical 5-pilot/3-drone cap was intentionally relaxed, so the
// default configuration imposes none.
type Limits struct {
	ReservedTeamMaxID int
	MaxPilotsPerTeam  int
	MaxDronesPerTeam  int
}

// LimitsFromConfig derives constraint limits from application configuration.
func LimitsFromConfig(cfg *config.Config) Limits {
	return Limits{
		ReservedTeamMaxID: cfg.ReservedTeamMaxID,
		MaxPilotsPerTeam:  cfg.MaxPilotsPerTeam,
		MaxDronesPerTeam:  cfg.MaxDronesPerTeam,
	}
}

// IsReservedTeam reports whether the team id names a virtual team such as
// the unassigned-resource pool. Reserved teams are exempt from validity
// rules and always accept moves.
func (l Limits) IsReservedTeam(teamID int) bool {
	return teamID >= 1 && teamID <= l.ReservedTeamMaxID
}

// IsTeamValid reports whether a team is operational: at least one pilot, at
// least one drone, and a pilot designated as team lead. Reserved teams are
// exempt and always valid.
func IsTeamValid(l Limits, team *catalog.Team) bool {
	if team == nil {
		return false
	}
	if l.IsReservedTeam(team.ID) {
		return true
	}
	if len(team.Pilots) < 1 || len(team.Drones) < 1 {
		return false
	}
	for _, p := range team.Pilots {
		if p.IsLead {
			return true
		}
	}
	return false
}

// SameTeam reports whether a move targets its own source team. Such a move
// is a no-op, not an error.
func SameTeam(fromTeamID, toTeamID int) bool {
	return fromTeamID == toTeamID
}

// CanAcceptMove decides whether the destination team may receive one more
// resource of the given kind. Reserved destinations (the pool) always
// accept; non-reserved destinations are only bounded when a ceiling is
// configured.
func CanAcceptMove(l Limits, from, to *catalog.Team, kind ResourceKind) (bool, string) {
	if to == nil {
		return false, "destination team is unknown"
	}
	if from == nil {
		return false, "source team is unknown"
	}
	if l.IsReservedTeam(to.ID) {
		return true, ""
	}

	switch kind {
	case ResourcePilot:
		if l.MaxPilotsPerTeam > 0 && len(to.Pilots) >= l.MaxPilotsPerTeam {
			return false, fmt.Sprintf("team %s already has the maximum of %d pilots", to.Name, l.MaxPilotsPerTeam)
		}
	case ResourceDrone:
		if l.MaxDronesPerTeam > 0 && len(to.Drones) >= l.MaxDronesPerTeam {
			return false, fmt.Sprintf("team %s already has the maximum of %d drones", to.Name, l.MaxDronesPerTeam)
		}
	default:
		return false, fmt.Sprintf("unknown resource kind %q", kind)
	}

	return true, ""
}
