package service

import (
	"time"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/catalog"
)

// Snapshot is one date's allocation state as last confirmed by the catalog
// gateway. Snapshots are replaced wholesale, never patched field by field,
// because plan-load counts are derived from data this service does not own.
type Snapshot struct {
	Date     string
	Teams    []catalog.Team
	Missions []catalog.Mission
	Groups   []catalog.MissionGroup
	PlanLoad *catalog.PlanLoad
	LoadedAt time.Time
}

// Team returns the team with the given id, or nil.
func (s *Snapshot) Team(teamID int) *catalog.Team {
	for i := range s.Teams {
		if s.Teams[i].ID == teamID {
			return &s.Teams[i]
		}
	}
	return nil
}

// Mission returns the mission with the given id, or nil.
func (s *Snapshot) Mission(missionID int) *catalog.Mission {
	for i := range s.Missions {
		if s.Missions[i].ID == missionID {
			return &s.Missions[i]
		}
	}
	return nil
}

// Group returns the mission group with the given id, or nil.
func (s *Snapshot) Group(groupID int) *catalog.MissionGroup {
	for i := range s.Groups {
		if s.Groups[i].ID == groupID {
			return &s.Groups[i]
		}
	}
	return nil
}

// GroupForMission returns the group containing the mission, or nil. A mission
// belongs to at most one group per date.
func (s *Snapshot) GroupForMission(missionID int) *catalog.MissionGroup {
	for i := range s.Groups {
		for _, id := range s.Groups[i].MissionIDs {
			if id == missionID {
				return &s.Groups[i]
			}
		}
	}
	return nil
}

// PilotTeam returns the team whose roster contains the pilot, or nil.
func (s *Snapshot) PilotTeam(pilotID int) *catalog.Team {
	for i := range s.Teams {
		for _, p := range s.Teams[i].Pilots {
			if p.ID == pilotID {
				return &s.Teams[i]
			}
		}
	}
	return nil
}

// DroneTeam returns the team whose roster contains the drone, or nil.
func (s *Snapshot) DroneTeam(droneID int) *catalog.Team {
	for i := range s.Teams {
		for _, d := range s.Teams[i].Drones {
			if d.ID == droneID {
				return &s.Teams[i]
			}
		}
	}
	return nil
}

// withMissionsAssigned returns a copy of the snapshot with the listed
// missions marked assigned or unassigned. The receiver is left untouched so
// readers holding it never observe a partial update.
func (s *Snapshot) withMissionsAssigned(missionIDs []int, assigned bool) *Snapshot {
	marked := make(map[int]bool, len(missionIDs))
	for _, id := range missionIDs {
		marked[id] = true
	}

	missions := make([]catalog.Mission, len(s.Missions))
	copy(missions, s.Missions)
	for i := range missions {
		if marked[missions[i].ID] {
			missions[i].IsAssigned = assigned
		}
	}

	clone := *s
	clone.Missions = missions
	return &clone
}
