package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/api/handlers"
	apperrors "github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/errors"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/mocks"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/service"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MoveHandlerTestSuite defines the test suite for MoveHandler
type MoveHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMoveServiceInterface
	handler     *handlers.MoveHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *MoveHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMoveServiceInterface(suite.ctrl)
	suite.handler = handlers.NewMoveHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	allocation := v1.Group("/allocation")
	{
		allocation.POST("/moves", suite.handler.MoveResource)
		allocation.POST("/pool", suite.handler.ReturnToPool)
	}
}

func (suite *MoveHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MoveHandlerTestSuite) TestMoveResource_Success() {
	req := service.MoveRequest{
		ResourceKind: "pilot",
		ResourceID:   101,
		FromTeamID:   10,
		ToTeamID:     11,
	}
	suite.mockService.EXPECT().
		MoveResource(gomock.Any(), &req).
		Return(&service.OperationResult{OK: true, Message: "moved"}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/allocation/moves", req)

	var resp service.OperationResult
	testutils.AssertJSONResponse(suite.T(), recorder, 200, &resp)
	suite.True(resp.OK)
}

func (suite *MoveHandlerTestSuite) TestMoveResource_NoOp() {
	req := service.MoveRequest{
		ResourceKind: "drone",
		ResourceID:   200,
		FromTeamID:   10,
		ToTeamID:     10,
	}
	suite.mockService.EXPECT().
		MoveResource(gomock.Any(), &req).
		Return(&service.OperationResult{OK: true, NoOp: true, Message: "already there"}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/allocation/moves", req)

	var resp service.OperationResult
	testutils.AssertJSONResponse(suite.T(), recorder, 200, &resp)
	suite.True(resp.NoOp)
}

func (suite *MoveHandlerTestSuite) TestMoveResource_InvalidJSON() {
	req, _ := http.NewRequest("POST", "/api/v1/allocation/moves", bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	suite.Equal(400, recorder.Code)
}

func (suite *MoveHandlerTestSuite) TestMoveResource_ConstraintViolation() {
	suite.mockService.EXPECT().
		MoveResource(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("to_team_id", "team Alpha already has the maximum of 5 pilots"))

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/allocation/moves", service.MoveRequest{
		ResourceKind: "pilot", ResourceID: 101, FromTeamID: 10, ToTeamID: 11,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, 400, "maximum of 5 pilots")
}

func (suite *MoveHandlerTestSuite) TestMoveResource_GatewayRejected() {
	suite.mockService.EXPECT().
		MoveResource(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewGatewayRejectedError("move pilot", "pilot is locked"))

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/allocation/moves", service.MoveRequest{
		ResourceKind: "pilot", ResourceID: 101, FromTeamID: 10, ToTeamID: 11,
	})

	suite.Equal(409, recorder.Code)
}

func (suite *MoveHandlerTestSuite) TestMoveResource_TransportError() {
	suite.mockService.EXPECT().
		MoveResource(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewTransportError("move pilot", http.ErrHandlerTimeout))

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/allocation/moves", service.MoveRequest{
		ResourceKind: "pilot", ResourceID: 101, FromTeamID: 10, ToTeamID: 11,
	})

	suite.Equal(502, recorder.Code)
}

func (suite *MoveHandlerTestSuite) TestReturnToPool_Success() {
	req := service.PoolRequest{PilotIDs: []int{101}, DroneIDs: []int{200}}
	suite.mockService.EXPECT().
		ReturnToPool(gomock.Any(), &req).
		Return(&service.PoolResponse{
			OperationResult: service.OperationResult{OK: true},
			PilotsAdded:     1,
			DronesAdded:     1,
		}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/allocation/pool", req)

	var resp service.PoolResponse
	testutils.AssertJSONResponse(suite.T(), recorder, 200, &resp)
	suite.Equal(1, resp.PilotsAdded)
	suite.Equal(1, resp.DronesAdded)
}

func (suite *MoveHandlerTestSuite) TestReturnToPool_EmptyBatch() {
	suite.mockService.EXPECT().
		ReturnToPool(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("", "no resources selected for pool return"))

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/allocation/pool", service.PoolRequest{})

	suite.Equal(400, recorder.Code)
}

func TestMoveHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MoveHandlerTestSuite))
}
