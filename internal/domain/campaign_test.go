package domain

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2025-06-01T10:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/06/2025")
	assert.Error(t, err)
}

func TestCreateCampaignRequest_Validate(t *testing.T) {
	end := "2025-08-31"
	req := CreateCampaignRequest{
		Name:        "Summer Sale 2025",
		Description: "Promotional campaign for summer products",
		StartDate:   "2025-06-01",
		EndDate:     &end,
	}
	c, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, "Summer Sale 2025", c.Name)
	require.NotNil(t, c.EndDate)
	assert.Equal(t, 31, c.EndDate.Day())

	badEnd := "2025-05-01"
	req.EndDate = &badEnd
	_, err = req.Validate()
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "endDate must not be before startDate", ve.Message)

	_, err = (&CreateCampaignRequest{Name: "X"}).Validate()
	assert.True(t, IsValidation(err))

	_, err = (&CreateCampaignRequest{StartDate: "2025-01-01"}).Validate()
	assert.True(t, IsValidation(err))
}

func TestUpdateCampaignRequest_FromJSON(t *testing.T) {
	t.Run("null end date clears it", func(t *testing.T) {
		var req UpdateCampaignRequest
		require.NoError(t, req.FromJSON([]byte(`{"endDate":null}`)))
		assert.True(t, req.Update.ClearEndDate)
		assert.Nil(t, req.Update.EndDate)
	})

	t.Run("absent end date is kept", func(t *testing.T) {
		var req UpdateCampaignRequest
		require.NoError(t, req.FromJSON([]byte(`{"name":"Renamed"}`)))
		assert.False(t, req.Update.ClearEndDate)
		assert.Nil(t, req.Update.EndDate)
		assert.Equal(t, "Renamed", *req.Update.Name)
	})

	t.Run("dates are parsed", func(t *testing.T) {
		var req UpdateCampaignRequest
		require.NoError(t, req.FromJSON([]byte(`{"startDate":"2025-01-01","endDate":"2025-01-15"}`)))
		assert.Equal(t, 1, req.Update.StartDate.Day())
		assert.Equal(t, 15, req.Update.EndDate.Day())
	})

	for name, body := range map[string]string{
		"bad date":      `{"startDate":"tomorrow"}`,
		"numeric end":   `{"endDate":12}`,
		"empty":         `{}`,
		"invalid json":  `nope`,
		"null name":     `{"name":null}`,
		"blank name":    `{"name":""}`,
		"bad end value": `{"endDate":"2025-13-01"}`,
		"long name":     `{"name":"` + strings.Repeat("c", MaxNameLength+1) + `"}`,
	} {
		t.Run(name, func(t *testing.T) {
			var req UpdateCampaignRequest
			assert.True(t, IsValidation(req.FromJSON([]byte(body))))
		})
	}
}

func TestCampaignUpdate_Apply(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	c := Campaign{Name: "A", StartDate: start, EndDate: &end}

	cleared := CampaignUpdate{ClearEndDate: true}.Apply(c)
	assert.Nil(t, cleared.EndDate)
	assert.NotNil(t, c.EndDate)

	newStart := end.AddDate(0, 1, 0)
	moved := CampaignUpdate{StartDate: &newStart}.Apply(c)
	assert.Error(t, moved.Validate())
}

func TestListCampaignsRequest_FromURLParams(t *testing.T) {
	var req ListCampaignsRequest
	require.NoError(t, req.FromURLParams(url.Values{}))
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 10, req.PageSize)

	require.NoError(t, req.FromURLParams(url.Values{"page": {"2"}, "pageSize": {"5"}}))
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 5, req.PageSize)

	assert.True(t, IsValidation(req.FromURLParams(url.Values{"page": {"x"}})))
	assert.True(t, IsValidation(req.FromURLParams(url.Values{"page": {"9223372036854775807"}})))
}
