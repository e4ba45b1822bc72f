package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/internal/domain/mocks"
	"github.com/leadflow/leadflow/pkg/logger"
)

func TestCampaignHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockCampaignService(ctrl)
	mux := http.NewServeMux()
	NewCampaignHandler(mockService, logger.NewTestLogger(t)).RegisterRoutes(mux)

	t.Run("list", func(t *testing.T) {
		mockService.EXPECT().ListCampaigns(gomock.Any(), 1, 2).Return(&domain.CampaignPage{
			Campaigns: []*domain.Campaign{{ID: 1, Name: "Summer Sale 2025"}},
			Meta:      domain.NewPageMeta(1, 2, 3),
		}, nil)

		w := serve(mux, "GET", "/api/campaigns?pageSize=2", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"meta":{"page":1,"pageSize":2,"total":3,"totalPages":2}`)
	})

	t.Run("create", func(t *testing.T) {
		mockService.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, c *domain.Campaign) error {
				assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), c.StartDate)
				require.NotNil(t, c.EndDate)
				c.ID = 5
				return nil
			})

		w := serve(mux, "POST", "/api/campaigns", `{"name":"Summer Sale 2025","startDate":"2025-06-01","endDate":"2025-08-31"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		var c domain.Campaign
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
		assert.Equal(t, int64(5), c.ID)
	})

	t.Run("create with inverted dates", func(t *testing.T) {
		w := serve(mux, "POST", "/api/campaigns", `{"name":"Broken","startDate":"2025-06-01","endDate":"2025-05-01"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update clears end date", func(t *testing.T) {
		mockService.EXPECT().UpdateCampaign(gomock.Any(), int64(5), domain.CampaignUpdate{ClearEndDate: true}).
			Return(&domain.Campaign{ID: 5}, nil)

		w := serve(mux, "PUT", "/api/campaigns/5", `{"endDate":null}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"endDate":null`)
	})

	t.Run("get unknown", func(t *testing.T) {
		mockService.EXPECT().GetCampaign(gomock.Any(), int64(999999)).Return(nil, domain.NewNotFoundError(domain.MsgCampaignNotFound))

		w := serve(mux, "GET", "/api/campaigns/999999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		mockService.EXPECT().DeleteCampaign(gomock.Any(), int64(5)).Return(&domain.Campaign{ID: 5}, nil)

		w := serve(mux, "DELETE", "/api/campaigns/5", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deletedCampaign"`)
	})
}
