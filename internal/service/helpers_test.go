package service_test

import (
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/catalog"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/mocks"

	"go.uber.org/mock/gomock"
)

const testDate = "2026-04-15"

// testTeams returns a roster with the pool team and two field teams.
// Team 10 "Alpha" has two pilots (100 is lead) and two drones; team 11
// "Bravo" has one lead pilot and one drone.
func testTeams() []catalog.Team {
	return []catalog.Team{
		{
			ID:   1,
			Name: "Pool",
			Pilots: []catalog.Pilot{
				{ID: 900, Name: "Benched Pilot"},
			},
			Drones: []catalog.Drone{
				{ID: 950, Tag: "SPARE-1"},
			},
		},
		{
			ID:   10,
			Name: "Alpha",
			Pilots: []catalog.Pilot{
				{ID: 100, Name: "Dana Reyes", IsLead: true},
				{ID: 101, Name: "Miko Tan"},
			},
			Drones: []catalog.Drone{
				{ID: 200, Tag: "AGR-200"},
				{ID: 201, Tag: "AGR-201"},
			},
		},
		{
			ID:   11,
			Name: "Bravo",
			Pilots: []catalog.Pilot{
				{ID: 110, Name: "Sam Osei", IsLead: true},
			},
			Drones: []catalog.Drone{
				{ID: 210, Tag: "AGR-210"},
			},
		},
	}
}

func testMissions() []catalog.Mission {
	return []catalog.Mission{
		{ID: 1001, Label: "North paddock", Date: testDate},
		{ID: 1002, Label: "River block", Date: testDate},
		{ID: 1003, Label: "Orchard rows", Date: testDate, IsAssigned: true},
	}
}

func testGroups() []catalog.MissionGroup {
	return []catalog.MissionGroup{
		{ID: 77, Date: testDate, TeamID: 11, PilotID: 110, DroneID: 210, MissionIDs: []int{1003}},
	}
}

func testPlanLoad() *catalog.PlanLoad {
	return &catalog.PlanLoad{
		Pilots: map[int]catalog.PlanLoadEntry{
			110: {Count: 1, Plans: []catalog.PlanRef{{PlanID: 5, Label: "Orchard plan"}}},
		},
		Drones: map[int]catalog.PlanLoadEntry{
			210: {Count: 1, Plans: []catalog.PlanRef{{PlanID: 5, Label: "Orchard plan"}}},
		},
	}
}

// expectSnapshotLoad wires the four gateway reads one full snapshot load
// performs, in order, returning the provided state.
func expectSnapshotLoad(gw *mocks.MockGateway, date string, teams []catalog.Team, missions []catalog.Mission, groups []catalog.MissionGroup, planLoad *catalog.PlanLoad) {
	gw.EXPECT().GetTeams(gomock.Any(), date).Return(teams, nil)
	gw.EXPECT().GetMissions(gomock.Any(), date).Return(missions, nil)
	gw.EXPECT().GetMissionGroups(gomock.Any(), date).Return(groups, nil)
	gw.EXPECT().GetPlanLoad(gomock.Any(), date).Return(planLoad, nil)
}

// expectDefaultLoad is expectSnapshotLoad with the standard fixture state.
func expectDefaultLoad(gw *mocks.MockGateway, date string) {
	expectSnapshotLoad(gw, date, testTeams(), testMissions(), testGroups(), testPlanLoad())
}
