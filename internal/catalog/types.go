package catalog

// Pilot is a pilot as listed in a team roster.
type Pilot struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsLead   bool   `json:"is_lead"`
	ImageRef string `json:"image_ref,omitempty"`
}

// Drone is a drone as listed in a team roster.
type Drone struct {
	ID  int    `json:"id"`
	Tag string `json:"tag"`
}

// Team is a named bundle of pilots and drones. Team ids 1-9 are virtual
// pool teams managed by the catalog service.
type Team struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Pilots []Pilot `json:"pilots"`
	Drones []Drone `json:"drones"`
}

// Mission is a unit of spraying work for one calendar date. Read-only to
// this service; assignment state is derived from group membership.
type Mission struct {
	ID         int    `json:"id"`
	Label      string `json:"label"`
	Date       string `json:"date"`
	IsAssigned bool   `json:"is_assigned"`
}

// MissionGroup binds a set of missions to one team/pilot/drone triple for
// one date. A mission belongs to at most one group per date; the catalog
// service enforces that and deletes a group once its last mission is removed.
type MissionGroup struct {
	ID         int    `json:"id"`
	Date       string `json:"date"`
	TeamID     int    `json:"team_id"`
	PilotID    int    `json:"pilot_id"`
	DroneID    int    `json:"drone_id"`
	MissionIDs []int  `json:"mission_ids"`
}

// PlanRef identifies one plan contributing to a resource's load.
type PlanRef struct {
	PlanID int    `json:"plan_id"`
	Label  string `json:"label"`
}

// PlanLoadEntry is the derived mission load of a single pilot or drone.
type PlanLoadEntry struct {
	Count int       `json:"count"`
	Plans []PlanRef `json:"plans"`
}

// PlanLoad maps resource ids to their load for one date. Pilots and drones
// are keyed separately because their id spaces overlap.
type PlanLoad struct {
	Pilots map[int]PlanLoadEntry `json:"pilots"`
	Drones map[int]PlanLoadEntry `json:"drones"`
}

// CreateGroupRequest carries the payload for creating a mission group.
type CreateGroupRequest struct {
	MissionIDs []int  `json:"mission_ids"`
	TeamID     int    `json:"team_id"`
	PilotID    int    `json:"pilot_id"`
	DroneID    int    `json:"drone_id"`
	Date       string `json:"date"`
}

// PoolResult reports how many resources the catalog actually returned to
// the pool team.
type PoolResult struct {
	PilotsAdded int `json:"pilots_added"`
	DronesAdded int `json:"drones_added"`
}
