package service_test

import (
	"testing"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/database/models"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/mocks"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuditServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockAuditRepositoryInterface
	auditService *service.AuditService
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockAuditRepositoryInterface(suite.ctrl)
	suite.auditService = service.NewAuditService(suite.mockRepo)
}

func (suite *AuditServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuditServiceTestSuite) TestRecord_Success() {
	entry := &models.AllocationAudit{Action: models.AuditActionMovePilot, Date: testDate}
	suite.mockRepo.EXPECT().Create(entry).Return(nil)

	suite.auditService.Record(entry)
}

func (suite *AuditServiceTestSuite) TestRecord_FailureDoesNotPanic() {
	entry := &models.AllocationAudit{Action: models.AuditActionMoveDrone, Date: testDate}
	suite.mockRepo.EXPECT().Create(entry).Return(assert.AnError)

	suite.NotPanics(func() {
		suite.auditService.Record(entry)
	})
}

func (suite *AuditServiceTestSuite) TestGetByDate_NormalizesPaging() {
	entries := []models.AllocationAudit{{Action: models.AuditActionGroupDeploy, Date: testDate}}
	suite.mockRepo.EXPECT().GetByDate(testDate, 20, 0).Return(entries, int64(1), nil)

	resp, err := suite.auditService.GetByDate(testDate, 0, 0)

	suite.NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
	suite.Equal(int64(1), resp.Total)
	suite.Len(resp.Entries, 1)
}

func (suite *AuditServiceTestSuite) TestGetByDate_Offset() {
	suite.mockRepo.EXPECT().GetByDate(testDate, 10, 20).Return(nil, int64(0), nil)

	resp, err := suite.auditService.GetByDate(testDate, 3, 10)

	suite.NoError(err)
	suite.Equal(3, resp.Page)
	suite.Equal(10, resp.PageSize)
}

func (suite *AuditServiceTestSuite) TestGetByDate_RepositoryError() {
	suite.mockRepo.EXPECT().GetByDate(testDate, 20, 0).Return(nil, int64(0), assert.AnError)

	_, err := suite.auditService.GetByDate(testDate, 1, 20)

	suite.Error(err)
	suite.Contains(err.Error(), "failed to get audit entries")
}

func (suite *AuditServiceTestSuite) TestGetByGroup_Success() {
	entries := []models.AllocationAudit{
		{Action: models.AuditActionGroupDeploy, Date: testDate},
		{Action: models.AuditActionGroupExtend, Date: testDate},
	}
	suite.mockRepo.EXPECT().GetByGroupID(77, 20, 0).Return(entries, int64(2), nil)

	resp, err := suite.auditService.GetByGroup(77, 1, 20)

	suite.NoError(err)
	suite.Equal(int64(2), resp.Total)
	suite.Len(resp.Entries, 2)
}

func (suite *AuditServiceTestSuite) TestGetByGroup_NormalizesPaging() {
	suite.mockRepo.EXPECT().GetByGroupID(77, 20, 0).Return(nil, int64(0), nil)

	resp, err := suite.auditService.GetByGroup(77, 0, 0)

	suite.NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
}

func (suite *AuditServiceTestSuite) TestGetByGroup_RepositoryError() {
	suite.mockRepo.EXPECT().GetByGroupID(77, 20, 0).Return(nil, int64(0), assert.AnError)

	_, err := suite.auditService.GetByGroup(77, 1, 20)

	suite.Error(err)
	suite.Contains(err.Error(), "group 77")
}

func (suite *AuditServiceTestSuite) TestGetRecent_ClampsLimit() {
	suite.mockRepo.EXPECT().GetRecent(20).Return(nil, nil).Times(2)

	_, err := suite.auditService.GetRecent(0)
	suite.NoError(err)
	_, err = suite.auditService.GetRecent(500)
	suite.NoError(err)
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
