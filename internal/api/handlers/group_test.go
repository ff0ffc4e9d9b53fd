package handlers_test

import (
	"testing"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/api/handlers"
	apperrors "github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/errors"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/mocks"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/service"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GroupHandlerTestSuite defines the test suite for GroupHandler
type GroupHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockGroupServiceInterface
	handler     *handlers.GroupHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *GroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGroupServiceInterface(suite.ctrl)
	suite.handler = handlers.NewGroupHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	allocation := v1.Group("/allocation")
	{
		allocation.POST("/groups", suite.handler.DeployGroup)
		allocation.POST("/groups/:id/missions", suite.handler.AddMissions)
		allocation.DELETE("/groups/missions", suite.handler.RemoveMissions)
	}
}

func (suite *GroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GroupHandlerTestSuite) TestDeployGroup_Success() {
	req := service.DeployGroupRequest{
		MissionIDs: []int{1001, 1002},
		TeamID:     10,
		PilotID:    100,
		DroneID:    200,
		Date:       "2026-04-15",
	}
	suite.mockService.EXPECT().
		DeployGroup(gomock.Any(), &req).
		Return(&service.GroupResult{
			OperationResult: service.OperationResult{OK: true, Message: "group 78 deployed"},
			GroupID:         78,
		}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/allocation/groups", req)

	var resp service.GroupResult
	testutils.AssertJSONResponse(suite.T(), recorder, 201, &resp)
	suite.Equal(78, resp.GroupID)
}

func (suite *GroupHandlerTestSuite) TestDeployGroup_EmptySelection() {
	suite.mockService.EXPECT().
		DeployGroup(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("mission_ids", "no missions selected"))

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/allocation/groups", service.DeployGroupRequest{
		TeamID: 10, PilotID: 100, DroneID: 200, Date: "2026-04-15",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, 400, "no missions selected")
}

func (suite *GroupHandlerTestSuite) TestDeployGroup_GatewayRejected() {
	suite.mockService.EXPECT().
		DeployGroup(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewGatewayRejectedError("create mission group", "pilot already booked"))

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/allocation/groups", service.DeployGroupRequest{
		MissionIDs: []int{1001}, TeamID: 10, PilotID: 100, DroneID: 200, Date: "2026-04-15",
	})

	suite.Equal(409, recorder.Code)
}

func (suite *GroupHandlerTestSuite) TestAddMissions_Success() {
	req := service.ExtendGroupRequest{MissionIDs: []int{1001}}
	suite.mockService.EXPECT().
		AddMissionsToGroup(gomock.Any(), 77, &req).
		Return(&service.GroupResult{
			OperationResult: service.OperationResult{OK: true},
			GroupID:         77,
		}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/allocation/groups/77/missions", req)

	var resp service.GroupResult
	testutils.AssertJSONResponse(suite.T(), recorder, 200, &resp)
	suite.Equal(77, resp.GroupID)
}

func (suite *GroupHandlerTestSuite) TestAddMissions_InvalidGroupID() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/allocation/groups/abc/missions",
		service.ExtendGroupRequest{MissionIDs: []int{1001}})

	testutils.AssertErrorResponse(suite.T(), recorder, 400, "invalid group ID")
}

func (suite *GroupHandlerTestSuite) TestAddMissions_GroupNotFound() {
	suite.mockService.EXPECT().
		AddMissionsToGroup(gomock.Any(), 999, gomock.Any()).
		Return(nil, apperrors.ErrGroupNotFound)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/allocation/groups/999/missions",
		service.ExtendGroupRequest{MissionIDs: []int{1001}})

	suite.Equal(404, recorder.Code)
}

func (suite *GroupHandlerTestSuite) TestRemoveMissions_Success() {
	req := service.ShrinkGroupRequest{MissionIDs: []int{1003}}
	suite.mockService.EXPECT().
		RemoveMissionsFromGroup(gomock.Any(), &req).
		Return(&service.GroupResult{
			OperationResult: service.OperationResult{OK: true},
		}, nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/allocation/groups/missions", req)

	var resp service.GroupResult
	testutils.AssertJSONResponse(suite.T(), recorder, 200, &resp)
	suite.True(resp.OK)
}

func (suite *GroupHandlerTestSuite) TestRemoveMissions_NotGrouped() {
	suite.mockService.EXPECT().
		RemoveMissionsFromGroup(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("mission_ids", "mission 1001 does not belong to any group"))

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/allocation/groups/missions",
		service.ShrinkGroupRequest{MissionIDs: []int{1001}})

	suite.Equal(400, recorder.Code)
}

func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
