package service_test

import (
	"context"
	"testing"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/catalog"
	apperrors "github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/errors"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/mocks"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AllocationStoreTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	gateway *mocks.MockGateway
	store   *service.AllocationStore
	ctx     context.Context
}

func (suite *AllocationStoreTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.gateway = mocks.NewMockGateway(suite.ctrl)
	suite.store = service.NewAllocationStore(suite.gateway)
	suite.ctx = context.Background()
}

func (suite *AllocationStoreTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AllocationStoreTestSuite) TestLoadForDate_Success() {
	expectDefaultLoad(suite.gateway, testDate)

	snap, err := suite.store.LoadForDate(suite.ctx, testDate)

	suite.NoError(err)
	suite.Equal(testDate, snap.Date)
	suite.Len(snap.Teams, 3)
	suite.Len(snap.Missions, 3)
	suite.Len(snap.Groups, 1)
	suite.NotNil(snap.PlanLoad)
	suite.False(snap.LoadedAt.IsZero())
	suite.Equal(testDate, suite.store.ActiveDate())
}

func (suite *AllocationStoreTestSuite) TestLoadForDate_GatewayErrorKeepsPreviousSnapshot() {
	expectDefaultLoad(suite.gateway, testDate)
	_, err := suite.store.LoadForDate(suite.ctx, testDate)
	suite.NoError(err)

	// Second load fails midway; consumers must keep seeing the first state.
	next := "2026-04-16"
	suite.gateway.EXPECT().GetTeams(gomock.Any(), next).Return(testTeams(), nil)
	suite.gateway.EXPECT().GetMissions(gomock.Any(), next).
		Return(nil, apperrors.NewTransportError("get missions", assert.AnError))

	_, err = suite.store.LoadForDate(suite.ctx, next)
	suite.Error(err)

	current, err := suite.store.Current()
	suite.NoError(err)
	suite.Equal(testDate, current.Date)
}

func (suite *AllocationStoreTestSuite) TestRefresh_WithoutActiveDate() {
	_, err := suite.store.Refresh(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrNoActiveSession)
}

func (suite *AllocationStoreTestSuite) TestRefresh_ReloadsActiveDate() {
	expectDefaultLoad(suite.gateway, testDate)
	_, err := suite.store.LoadForDate(suite.ctx, testDate)
	suite.NoError(err)

	// The refresh sees one mission newly assigned.
	missions := testMissions()
	missions[0].IsAssigned = true
	expectSnapshotLoad(suite.gateway, testDate, testTeams(), missions, testGroups(), testPlanLoad())

	snap, err := suite.store.Refresh(suite.ctx)
	suite.NoError(err)
	suite.True(snap.Mission(1001).IsAssigned)
}

func (suite *AllocationStoreTestSuite) TestLoadForDate_SupersededLoadIsDiscarded() {
	other := "2026-04-20"

	suite.gateway.EXPECT().GetTeams(gomock.Any(), testDate).Return(testTeams(), nil)
	suite.gateway.EXPECT().GetMissions(gomock.Any(), testDate).Return(testMissions(), nil)
	suite.gateway.EXPECT().GetMissionGroups(gomock.Any(), testDate).Return(testGroups(), nil)
	// While the first date's load is still in flight, the session switches
	// to another date and completes its load first.
	suite.gateway.EXPECT().GetPlanLoad(gomock.Any(), testDate).DoAndReturn(
		func(ctx context.Context, date string) (*catalog.PlanLoad, error) {
			expectDefaultLoad(suite.gateway, other)
			_, err := suite.store.LoadForDate(ctx, other)
			suite.NoError(err)
			return testPlanLoad(), nil
		})

	_, err := suite.store.LoadForDate(suite.ctx, testDate)
	suite.ErrorIs(err, apperrors.ErrStaleSnapshot)

	current, err := suite.store.Current()
	suite.NoError(err)
	suite.Equal(other, current.Date)
}

func (suite *AllocationStoreTestSuite) TestRefreshFor_SupersededDateFetchesNothing() {
	expectDefaultLoad(suite.gateway, testDate)
	_, err := suite.store.LoadForDate(suite.ctx, testDate)
	suite.NoError(err)

	other := "2026-04-20"
	expectDefaultLoad(suite.gateway, other)
	_, err = suite.store.LoadForDate(suite.ctx, other)
	suite.NoError(err)

	// No gateway expectations beyond the two loads: a refresh tagged with
	// the superseded date must fail without touching the catalog.
	_, err = suite.store.RefreshFor(suite.ctx, testDate)
	suite.ErrorIs(err, apperrors.ErrStaleSnapshot)

	current, err := suite.store.Current()
	suite.NoError(err)
	suite.Equal(other, current.Date)
}

func (suite *AllocationStoreTestSuite) TestRefreshFor_WithoutActiveDate() {
	_, err := suite.store.RefreshFor(suite.ctx, testDate)
	suite.ErrorIs(err, apperrors.ErrNoActiveSession)
}

func (suite *AllocationStoreTestSuite) TestCurrent_WithoutSnapshot() {
	_, err := suite.store.Current()
	suite.ErrorIs(err, apperrors.ErrNoActiveSession)
}

func (suite *AllocationStoreTestSuite) TestBeginMutation_RequiresSnapshot() {
	_, _, err := suite.store.BeginMutation()
	suite.ErrorIs(err, apperrors.ErrNoActiveSession)
}

func (suite *AllocationStoreTestSuite) TestBeginMutation_ReturnsStableSnapshot() {
	expectDefaultLoad(suite.gateway, testDate)
	_, err := suite.store.LoadForDate(suite.ctx, testDate)
	suite.NoError(err)

	snap, release, err := suite.store.BeginMutation()
	suite.NoError(err)
	suite.NotNil(release)
	defer release()

	suite.Equal(testDate, snap.Date)
}

func (suite *AllocationStoreTestSuite) TestMarkMissionsAssigned_CopiesSnapshot() {
	expectDefaultLoad(suite.gateway, testDate)
	before, err := suite.store.LoadForDate(suite.ctx, testDate)
	suite.NoError(err)

	suite.store.MarkMissionsAssigned(testDate, []int{1001, 1002}, true)

	after, err := suite.store.Current()
	suite.NoError(err)
	suite.True(after.Mission(1001).IsAssigned)
	suite.True(after.Mission(1002).IsAssigned)
	// The snapshot handed out earlier is untouched.
	suite.False(before.Mission(1001).IsAssigned)
}

func (suite *AllocationStoreTestSuite) TestMarkMissionsAssigned_DroppedForSupersededDate() {
	expectDefaultLoad(suite.gateway, testDate)
	_, err := suite.store.LoadForDate(suite.ctx, testDate)
	suite.NoError(err)

	other := "2026-04-20"
	expectDefaultLoad(suite.gateway, other)
	_, err = suite.store.LoadForDate(suite.ctx, other)
	suite.NoError(err)

	// A patch issued against the first date must not leak into the other
	// date's missions.
	suite.store.MarkMissionsAssigned(testDate, []int{1001}, true)

	current, err := suite.store.Current()
	suite.NoError(err)
	suite.Equal(other, current.Date)
	suite.False(current.Mission(1001).IsAssigned)
}

func TestAllocationStoreTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationStoreTestSuite))
}

func TestSnapshotLookups(t *testing.T) {
	snap := &service.Snapshot{
		Teams:    testTeams(),
		Missions: testMissions(),
		Groups:   testGroups(),
	}

	t.Run("team lookup", func(t *testing.T) {
		assert.Equal(t, "Alpha", snap.Team(10).Name)
		assert.Nil(t, snap.Team(999))
	})

	t.Run("mission lookup", func(t *testing.T) {
		assert.Equal(t, "North paddock", snap.Mission(1001).Label)
		assert.Nil(t, snap.Mission(999))
	})

	t.Run("group for mission", func(t *testing.T) {
		assert.Equal(t, 77, snap.GroupForMission(1003).ID)
		assert.Nil(t, snap.GroupForMission(1001))
	})

	t.Run("pilot team", func(t *testing.T) {
		assert.Equal(t, 10, snap.PilotTeam(101).ID)
		assert.Nil(t, snap.PilotTeam(999))
	})

	t.Run("drone team", func(t *testing.T) {
		assert.Equal(t, 11, snap.DroneTeam(210).ID)
		assert.Nil(t, snap.DroneTeam(999))
	})
}
