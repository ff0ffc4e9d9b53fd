package testutils

import (
	"encoding/json"
	"fmt"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/database/models"
)

// AuditFactory provides methods to create test AllocationAudit data
type AuditFactory struct{}

// NewAuditFactory creates a new AuditFactory
func NewAuditFactory() *AuditFactory {
	return &AuditFactory{}
}

// MovePilot creates a confirmed pilot move entry
func (f *AuditFactory) MovePilot(date string, pilotID, fromTeamID, toTeamID int) *models.AllocationAudit {
	return &models.AllocationAudit{
		Action:       models.AuditActionMovePilot,
		Date:         date,
		ResourceKind: "pilot",
		ResourceID:   intPtr(pilotID),
		FromTeamID:   intPtr(fromTeamID),
		ToTeamID:     intPtr(toTeamID),
		Outcome:      models.AuditOutcomeConfirmed,
		Message:      fmt.Sprintf("pilot %d: team %d -> team %d", pilotID, fromTeamID, toTeamID),
	}
}

// MoveDrone creates a confirmed drone move entry
func (f *AuditFactory) MoveDrone(date string, droneID, fromTeamID, toTeamID int) *models.AllocationAudit {
	return &models.AllocationAudit{
		Action:       models.AuditActionMoveDrone,
		Date:         date,
		ResourceKind: "drone",
		ResourceID:   intPtr(droneID),
		FromTeamID:   intPtr(fromTeamID),
		ToTeamID:     intPtr(toTeamID),
		Outcome:      models.AuditOutcomeConfirmed,
		Message:      fmt.Sprintf("drone %d: team %d -> team %d", droneID, fromTeamID, toTeamID),
	}
}

// GroupDeploy creates a confirmed group deployment entry
func (f *AuditFactory) GroupDeploy(date string, groupID int, missionIDs []int) *models.AllocationAudit {
	ids, _ := json.Marshal(missionIDs)
	return &models.AllocationAudit{
		Action:     models.AuditActionGroupDeploy,
		Date:       date,
		GroupID:    intPtr(groupID),
		MissionIDs: ids,
		Outcome:    models.AuditOutcomeConfirmed,
		Message:    fmt.Sprintf("group_deploy: %d missions", len(missionIDs)),
	}
}

// PoolReturn creates a confirmed pool return entry
func (f *AuditFactory) PoolReturn(date string, poolTeamID int) *models.AllocationAudit {
	return &models.AllocationAudit{
		Action:   models.AuditActionPoolReturn,
		Date:     date,
		ToTeamID: intPtr(poolTeamID),
		Outcome:  models.AuditOutcomeConfirmed,
		Message:  "returned resources to pool",
	}
}

// WithOutcome overrides the outcome of an entry
func (f *AuditFactory) WithOutcome(entry *models.AllocationAudit, outcome models.AuditOutcome) *models.AllocationAudit {
	entry.Outcome = outcome
	return entry
}

// FactorySet groups all factories together for convenience
type FactorySet struct {
	Audit *AuditFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Audit: NewAuditFactory(),
	}
}

func intPtr(v int) *int {
	return &v
}
