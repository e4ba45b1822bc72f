package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/internal/domain/mocks"
	pkgmocks "github.com/leadflow/leadflow/pkg/mocks"
)

func TestCampaignLeadService_AddLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
	mockLeads := mocks.NewMockLeadRepository(ctrl)
	mockBus := mocks.NewMockEventBus(ctrl)
	mockLogger := pkgmocks.NewMockLogger(ctrl)
	service := NewCampaignLeadService(mockCampaigns, mockLeads, mockBus, mockLogger)
	ctx := context.Background()

	t.Run("defaults status to New", func(t *testing.T) {
		mockCampaigns.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
		mockLeads.EXPECT().Exists(gomock.Any(), int64(2)).Return(true, nil)
		mockCampaigns.EXPECT().GetLeadInCampaign(gomock.Any(), int64(1), int64(2)).Return(nil, nil)
		mockCampaigns.EXPECT().AddLead(gomock.Any(), &domain.LeadCampaign{
			CampaignID: 1,
			LeadID:     2,
			Status:     domain.LeadCampaignStatusNew,
		}).Return(nil)
		mockBus.EXPECT().PublishWithAck(gomock.Any(), isEvent(domain.EventLeadAddedToCampaign, 2), gomock.Any())

		assert.NoError(t, service.AddLead(ctx, 1, 2, ""))
	})

	t.Run("duplicate", func(t *testing.T) {
		mockCampaigns.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
		mockLeads.EXPECT().Exists(gomock.Any(), int64(2)).Return(true, nil)
		mockCampaigns.EXPECT().GetLeadInCampaign(gomock.Any(), int64(1), int64(2)).
			Return(&domain.LeadCampaign{CampaignID: 1, LeadID: 2, Status: domain.LeadCampaignStatusNew}, nil)

		err := service.AddLead(ctx, 1, 2, domain.LeadCampaignStatusEngaged)
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
		assert.Equal(t, domain.MsgLeadAlreadyInCampaign, err.Error())
	})

	t.Run("missing campaign or lead", func(t *testing.T) {
		mockCampaigns.EXPECT().Exists(gomock.Any(), int64(999999)).Return(false, nil)
		mockLeads.EXPECT().Exists(gomock.Any(), int64(2)).Return(true, nil)

		err := service.AddLead(ctx, 999999, 2, "")
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
		assert.Equal(t, domain.MsgCampaignOrLeadNotFound, err.Error())
	})

	t.Run("invalid status", func(t *testing.T) {
		err := service.AddLead(ctx, 1, 2, "Archived")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("store failure", func(t *testing.T) {
		mockCampaigns.EXPECT().Exists(gomock.Any(), int64(1)).Return(false, errors.New("db down"))
		mockLogger.EXPECT().WithFields(gomock.Any()).Return(mockLogger)
		mockLogger.EXPECT().Error(gomock.Any())

		err := service.AddLead(ctx, 1, 2, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check campaign")
	})
}

func TestCampaignLeadService_UpdateLeadStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
	mockLeads := mocks.NewMockLeadRepository(ctrl)
	mockBus := mocks.NewMockEventBus(ctrl)
	service := NewCampaignLeadService(mockCampaigns, mockLeads, mockBus, pkgmocks.NewMockLogger(ctrl))
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		mockCampaigns.EXPECT().GetLeadInCampaign(gomock.Any(), int64(1), int64(2)).
			Return(&domain.LeadCampaign{CampaignID: 1, LeadID: 2, Status: domain.LeadCampaignStatusNew}, nil)
		mockCampaigns.EXPECT().UpdateLeadStatus(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, lc *domain.LeadCampaign) error {
				assert.Equal(t, domain.LeadCampaignStatusEngaged, lc.Status)
				return nil
			})
		mockBus.EXPECT().PublishWithAck(gomock.Any(), isEvent(domain.EventLeadCampaignStatusUpdate, 2), gomock.Any())

		assert.NoError(t, service.UpdateLeadStatus(ctx, 1, 2, domain.LeadCampaignStatusEngaged))
	})

	t.Run("not a member", func(t *testing.T) {
		mockCampaigns.EXPECT().GetLeadInCampaign(gomock.Any(), int64(1), int64(3)).Return(nil, nil)

		err := service.UpdateLeadStatus(ctx, 1, 3, domain.LeadCampaignStatusEngaged)
		require.Error(t, err)
		assert.Equal(t, domain.MsgLeadNotInCampaign, err.Error())
	})

	t.Run("status required", func(t *testing.T) {
		err := service.UpdateLeadStatus(ctx, 1, 2, "")
		assert.True(t, domain.IsValidation(err))
	})
}

func TestCampaignLeadService_RemoveLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
	mockLeads := mocks.NewMockLeadRepository(ctrl)
	mockBus := mocks.NewMockEventBus(ctrl)
	service := NewCampaignLeadService(mockCampaigns, mockLeads, mockBus, pkgmocks.NewMockLogger(ctrl))
	ctx := context.Background()

	mockCampaigns.EXPECT().GetLeadInCampaign(gomock.Any(), int64(1), int64(2)).
		Return(&domain.LeadCampaign{CampaignID: 1, LeadID: 2}, nil)
	mockCampaigns.EXPECT().RemoveLead(gomock.Any(), int64(1), int64(2)).Return(nil)
	mockBus.EXPECT().PublishWithAck(gomock.Any(), isEvent(domain.EventLeadRemovedFromCampaign, 2), gomock.Any())
	require.NoError(t, service.RemoveLead(ctx, 1, 2))

	mockCampaigns.EXPECT().GetLeadInCampaign(gomock.Any(), int64(1), int64(2)).Return(nil, nil)
	err := service.RemoveLead(ctx, 1, 2)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestCampaignLeadService_GetLeads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
	mockLeads := mocks.NewMockLeadRepository(ctrl)
	service := NewCampaignLeadService(mockCampaigns, mockLeads, nil, pkgmocks.NewMockLogger(ctrl))
	ctx := context.Background()

	t.Run("unknown campaign", func(t *testing.T) {
		mockCampaigns.EXPECT().Exists(gomock.Any(), int64(999999)).Return(false, nil)

		_, err := service.GetLeads(ctx, domain.NewLeadQuery(domain.LeadScopeCampaign, 999999))
		require.Error(t, err)
		assert.Equal(t, domain.MsgCampaignMissing, err.Error())
	})

	t.Run("status sort is not offered in campaign scope", func(t *testing.T) {
		query := domain.NewLeadQuery(domain.LeadScopeCampaign, 1)
		query.SortBy = domain.LeadSortByStatus

		_, err := service.GetLeads(ctx, query)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("membership status filter", func(t *testing.T) {
		query := domain.NewLeadQuery(domain.LeadScopeCampaign, 1)
		query.Status = string(domain.LeadCampaignStatusEngaged)
		mockCampaigns.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
		mockLeads.EXPECT().Find(gomock.Any(), query).Return(nil, nil)
		mockLeads.EXPECT().Count(gomock.Any(), query).Return(0, nil)

		page, err := service.GetLeads(ctx, query)
		require.NoError(t, err)
		assert.NotNil(t, page.Leads)
		assert.Equal(t, 0, page.Meta.TotalPages)
	})
}
