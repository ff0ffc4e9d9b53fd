package handlers_test

import (
	"testing"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/api/handlers"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/database/models"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/mocks"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/service"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuditHandlerTestSuite defines the test suite for AuditHandler
type AuditHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAuditServiceInterface
	handler     *handlers.AuditHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *AuditHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAuditServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAuditHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	allocation := v1.Group("/allocation")
	{
		allocation.GET("/audit", suite.handler.GetByDate)
		allocation.GET("/audit/recent", suite.handler.GetRecent)
		allocation.GET("/groups/:id/audit", suite.handler.GetByGroup)
	}
}

func (suite *AuditHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuditHandlerTestSuite) TestGetByDate_Success() {
	resp := &service.AuditListResponse{
		Entries: []models.AllocationAudit{
			{Action: models.AuditActionMovePilot, Date: "2026-04-15", Outcome: models.AuditOutcomeConfirmed},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}
	suite.mockService.EXPECT().GetByDate("2026-04-15", 1, 20).Return(resp, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/allocation/audit?date=2026-04-15", nil)

	var got service.AuditListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, 200, &got)
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Entries, 1)
}

func (suite *AuditHandlerTestSuite) TestGetByDate_MissingDate() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/allocation/audit", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, 400, "date parameter is required")
}

func (suite *AuditHandlerTestSuite) TestGetByDate_CustomPaging() {
	suite.mockService.EXPECT().GetByDate("2026-04-15", 2, 10).
		Return(&service.AuditListResponse{Page: 2, PageSize: 10}, nil)

	recorder := suite.httpSuite.MakeRequest("GET",
		"/api/v1/allocation/audit?date=2026-04-15&page=2&page_size=10", nil)

	suite.Equal(200, recorder.Code)
}

func (suite *AuditHandlerTestSuite) TestGetByGroup_Success() {
	resp := &service.AuditListResponse{
		Entries: []models.AllocationAudit{
			{Action: models.AuditActionGroupDeploy, Date: "2026-04-15", Outcome: models.AuditOutcomeConfirmed},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}
	suite.mockService.EXPECT().GetByGroup(77, 1, 20).Return(resp, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/allocation/groups/77/audit", nil)

	var got service.AuditListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, 200, &got)
	assert.Equal(suite.T(), int64(1), got.Total)
}

func (suite *AuditHandlerTestSuite) TestGetByGroup_InvalidGroupID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/allocation/groups/abc/audit", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, 400, "invalid group ID")
}

func (suite *AuditHandlerTestSuite) TestGetRecent_Success() {
	entries := []models.AllocationAudit{
		{Action: models.AuditActionGroupDeploy, Date: "2026-04-15"},
		{Action: models.AuditActionMoveDrone, Date: "2026-04-14"},
	}
	suite.mockService.EXPECT().GetRecent(20).Return(entries, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/allocation/audit/recent", nil)

	var got []models.AllocationAudit
	testutils.AssertJSONResponse(suite.T(), recorder, 200, &got)
	suite.Len(got, 2)
}

func (suite *AuditHandlerTestSuite) TestGetRecent_CustomLimit() {
	suite.mockService.EXPECT().GetRecent(5).Return(nil, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/allocation/audit/recent?limit=5", nil)

	suite.Equal(200, recorder.Code)
}

func TestAuditHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuditHandlerTestSuite))
}
