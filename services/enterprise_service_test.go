package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/enterprise-api/models"
	"github.com/blogem/enterprise-api/repositories"
	"github.com/blogem/enterprise-api/repositories/mocks"
)

// EnterpriseServiceTestSuite is a test suite for the enterprise service
type EnterpriseServiceTestSuite struct {
	suite.Suite
	service  EnterpriseService
	mockRepo *mocks.MockEnterpriseRepository
	ctx      context.Context
}

// SetupTest sets up the test suite before each test
func (suite *EnterpriseServiceTestSuite) SetupTest() {
	suite.mockRepo = mocks.NewMockEnterpriseRepository(suite.T())
	suite.service = NewEnterpriseService(suite.mockRepo)
	suite.ctx = context.Background()
}

func stored(id string, fields models.Enterprise) models.Enterprise {
	out := models.Enterprise{"id": id}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// TestCreate_StripsClientIDAndReadsBack tests that the stored record is returned
func (suite *EnterpriseServiceTestSuite) TestCreate_StripsClientIDAndReadsBack() {
	input := models.Enterprise{"id": "forged", "siret": int64(12345678), "libelleCommuneEtablissement": "PARIS"}
	clean := models.Enterprise{"siret": int64(12345678), "libelleCommuneEtablissement": "PARIS"}

	suite.mockRepo.EXPECT().Insert(mock.Anything, clean).Return("65f0c0ffee0000000000beef", nil)
	suite.mockRepo.EXPECT().FindByID(mock.Anything, "65f0c0ffee0000000000beef").
		Return(stored("65f0c0ffee0000000000beef", clean), nil)

	// Act
	created, err := suite.service.Create(suite.ctx, input)

	// Assert
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "65f0c0ffee0000000000beef", created.ID())
	assert.Equal(suite.T(), int64(12345678), created.Siret())
}

// TestCreate_InsertFailure tests that store faults propagate unchanged
func (suite *EnterpriseServiceTestSuite) TestCreate_InsertFailure() {
	expectedError := errors.New("database connection failed")
	suite.mockRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return("", expectedError)

	_, err := suite.service.Create(suite.ctx, models.Enterprise{"siret": int64(1)})

	assert.ErrorIs(suite.T(), err, expectedError)
}

// TestGetBySiret_NotFound tests the not found translation
func (suite *EnterpriseServiceTestSuite) TestGetBySiret_NotFound() {
	suite.mockRepo.EXPECT().FindOneBySiret(mock.Anything, int64(1)).Return(nil, repositories.ErrNotFound)

	_, err := suite.service.GetBySiret(suite.ctx, 1)

	assert.ErrorIs(suite.T(), err, ErrEnterpriseNotFound)
}

// TestUpdateBySiret_Success tests a patch that changes a field
func (suite *EnterpriseServiceTestSuite) TestUpdateBySiret_Success() {
	existing := stored("abc", models.Enterprise{"siret": int64(42), "libelleCommuneEtablissement": "PARIS", "nic": "1"})
	patch := models.Enterprise{"libelleCommuneEtablissement": "LYON"}

	suite.mockRepo.EXPECT().FindOneBySiret(mock.Anything, int64(42)).Return(existing, nil)
	suite.mockRepo.EXPECT().UpdateOneBySiret(mock.Anything, int64(42), patch).Return(int64(1), int64(1), nil)
	suite.mockRepo.EXPECT().FindByID(mock.Anything, "abc").
		Return(stored("abc", models.Enterprise{"siret": int64(42), "libelleCommuneEtablissement": "LYON", "nic": "1"}), nil)

	updated, err := suite.service.UpdateBySiret(suite.ctx, 42, patch)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "LYON", updated["libelleCommuneEtablissement"])
	assert.Equal(suite.T(), "1", updated["nic"])
}

// TestUpdateBySiret_NotFound tests that no update is attempted for unknown sirets
func (suite *EnterpriseServiceTestSuite) TestUpdateBySiret_NotFound() {
	suite.mockRepo.EXPECT().FindOneBySiret(mock.Anything, int64(42)).Return(nil, repositories.ErrNotFound)

	_, err := suite.service.UpdateBySiret(suite.ctx, 42, models.Enterprise{"nic": "2"})

	assert.ErrorIs(suite.T(), err, ErrEnterpriseNotFound)
}

// TestUpdateBySiret_NothingModified tests the no-op update case
func (suite *EnterpriseServiceTestSuite) TestUpdateBySiret_NothingModified() {
	suite.mockRepo.EXPECT().FindOneBySiret(mock.Anything, int64(42)).
		Return(stored("abc", models.Enterprise{"siret": int64(42), "nic": "1"}), nil)
	suite.mockRepo.EXPECT().UpdateOneBySiret(mock.Anything, int64(42), models.Enterprise{"nic": "1"}).
		Return(int64(1), int64(0), nil)

	_, err := suite.service.UpdateBySiret(suite.ctx, 42, models.Enterprise{"nic": "1"})

	assert.ErrorIs(suite.T(), err, ErrEnterpriseNotUpdated)
}

// TestUpdateBySiret_EmptyPatch tests that an empty patch never reaches the store
func (suite *EnterpriseServiceTestSuite) TestUpdateBySiret_EmptyPatch() {
	suite.mockRepo.EXPECT().FindOneBySiret(mock.Anything, int64(42)).
		Return(stored("abc", models.Enterprise{"siret": int64(42)}), nil)

	_, err := suite.service.UpdateBySiret(suite.ctx, 42, models.Enterprise{"id": "only-an-id"})

	assert.ErrorIs(suite.T(), err, ErrEnterpriseNotUpdated)
}

// TestUpdateBySiret_StoreFailure tests that store faults propagate
func (suite *EnterpriseServiceTestSuite) TestUpdateBySiret_StoreFailure() {
	expectedError := errors.New("write conflict")
	suite.mockRepo.EXPECT().FindOneBySiret(mock.Anything, int64(42)).
		Return(stored("abc", models.Enterprise{"siret": int64(42)}), nil)
	suite.mockRepo.EXPECT().UpdateOneBySiret(mock.Anything, int64(42), mock.Anything).
		Return(int64(0), int64(0), expectedError)

	_, err := suite.service.UpdateBySiret(suite.ctx, 42, models.Enterprise{"nic": "9"})

	assert.ErrorIs(suite.T(), err, expectedError)
}

// TestDeleteBySiret_Success tests removal of an existing record
func (suite *EnterpriseServiceTestSuite) TestDeleteBySiret_Success() {
	suite.mockRepo.EXPECT().FindOneBySiret(mock.Anything, int64(7)).
		Return(stored("abc", models.Enterprise{"siret": int64(7)}), nil)
	suite.mockRepo.EXPECT().DeleteOneBySiret(mock.Anything, int64(7)).Return(int64(1), nil)

	assert.NoError(suite.T(), suite.service.DeleteBySiret(suite.ctx, 7))
}

// TestDeleteBySiret_NotFound tests that nothing is deleted for unknown sirets
func (suite *EnterpriseServiceTestSuite) TestDeleteBySiret_NotFound() {
	suite.mockRepo.EXPECT().FindOneBySiret(mock.Anything, int64(7)).Return(nil, repositories.ErrNotFound)

	assert.ErrorIs(suite.T(), suite.service.DeleteBySiret(suite.ctx, 7), ErrEnterpriseNotFound)
}

// TestDeleteBySiret_ConcurrentDelete tests the record vanishing between check and delete
func (suite *EnterpriseServiceTestSuite) TestDeleteBySiret_ConcurrentDelete() {
	suite.mockRepo.EXPECT().FindOneBySiret(mock.Anything, int64(7)).
		Return(stored("abc", models.Enterprise{"siret": int64(7)}), nil)
	suite.mockRepo.EXPECT().DeleteOneBySiret(mock.Anything, int64(7)).Return(int64(0), nil)

	assert.ErrorIs(suite.T(), suite.service.DeleteBySiret(suite.ctx, 7), ErrEnterpriseNotFound)
}

// TestEnterpriseServiceTestSuite runs the test suite
func TestEnterpriseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EnterpriseServiceTestSuite))
}
