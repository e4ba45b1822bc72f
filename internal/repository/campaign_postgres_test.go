package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/internal/repository/testutil"
)

func TestCampaignRepository_FindAndCount(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCampaignRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, name, description, start_date, end_date, created_at, updated_at FROM campaigns ORDER BY id ASC LIMIT 10 OFFSET 10`).
		WillReturnRows(sqlmock.NewRows(testutil.CampaignColumns).
			AddRow(int64(11), "Summer Sale 2025", "Promotional campaign for summer products", start, end, now, now).
			AddRow(int64(12), "Evergreen", "", start, nil, now, now))

	campaigns, err := repo.Find(context.Background(), 10, 10)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	require.NotNil(t, campaigns[0].EndDate)
	assert.Equal(t, end, *campaigns[0].EndDate)
	assert.Nil(t, campaigns[1].EndDate)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM campaigns`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, total)
}

func TestCampaignRepository_FindByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCampaignRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM campaigns WHERE id = \$1`).
		WithArgs(int64(999999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 999999)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, domain.MsgCampaignNotFound, err.Error())
}

func TestCampaignRepository_Create(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCampaignRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	campaign := &domain.Campaign{Name: "New Year Campaign", Description: "Celebrate", StartDate: start, EndDate: &end}
	mock.ExpectQuery(`INSERT INTO campaigns \(name, description, start_date, end_date\)`).
		WithArgs("New Year Campaign", "Celebrate", start, &end).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(2), now, now))

	require.NoError(t, repo.Create(context.Background(), campaign))
	assert.Equal(t, int64(2), campaign.ID)
}

func TestCampaignRepository_UpdateByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCampaignRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE campaigns SET updated_at = NOW\(\), end_date = \$1 WHERE id = \$2 RETURNING`).
		WithArgs(nil, int64(2)).
		WillReturnRows(sqlmock.NewRows(testutil.CampaignColumns).
			AddRow(int64(2), "New Year Campaign", "", start, nil, now, now))

	campaign, err := repo.UpdateByID(context.Background(), 2, domain.CampaignUpdate{ClearEndDate: true})
	require.NoError(t, err)
	assert.Nil(t, campaign.EndDate)

	name := "Renamed"
	mock.ExpectQuery(`UPDATE campaigns SET updated_at = NOW\(\), name = \$1 WHERE id = \$2`).
		WithArgs("Renamed", int64(3)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.UpdateByID(context.Background(), 3, domain.CampaignUpdate{Name: &name})
	assert.True(t, domain.IsNotFound(err))
}

func TestCampaignRepository_DeleteByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCampaignRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery(`DELETE FROM campaigns WHERE id = \$1 RETURNING`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(testutil.CampaignColumns).
			AddRow(int64(2), "New Year Campaign", "", now, nil, now, now))

	campaign, err := repo.DeleteByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "New Year Campaign", campaign.Name)
}

func TestCampaignRepository_GetLeadInCampaign(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCampaignRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery(`SELECT campaign_id, lead_id, status, created_at, updated_at FROM lead_campaigns WHERE campaign_id = \$1 AND lead_id = \$2`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"campaign_id", "lead_id", "status", "created_at", "updated_at"}).
			AddRow(int64(1), int64(2), "Engaged", now, now))

	membership, err := repo.GetLeadInCampaign(context.Background(), 1, 2)
	require.NoError(t, err)
	require.NotNil(t, membership)
	assert.Equal(t, domain.LeadCampaignStatusEngaged, membership.Status)

	mock.ExpectQuery(`FROM lead_campaigns WHERE campaign_id = \$1 AND lead_id = \$2`).
		WithArgs(int64(1), int64(3)).
		WillReturnError(sql.ErrNoRows)

	membership, err = repo.GetLeadInCampaign(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Nil(t, membership)

	mock.ExpectQuery(`FROM lead_campaigns`).
		WithArgs(int64(1), int64(4)).
		WillReturnError(errors.New("db down"))

	_, err = repo.GetLeadInCampaign(context.Background(), 1, 4)
	assert.Error(t, err)
}

func TestCampaignRepository_AddLead(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCampaignRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	membership := &domain.LeadCampaign{CampaignID: 1, LeadID: 2, Status: domain.LeadCampaignStatusNew}
	mock.ExpectQuery(`INSERT INTO lead_campaigns \(campaign_id, lead_id, status\)`).
		WithArgs(int64(1), int64(2), "New").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	require.NoError(t, repo.AddLead(context.Background(), membership))
	assert.Equal(t, now, membership.CreatedAt)

	mock.ExpectQuery(`INSERT INTO lead_campaigns`).
		WithArgs(int64(1), int64(2), "New").
		WillReturnError(&pq.Error{Code: "23505"})
	err := repo.AddLead(context.Background(), &domain.LeadCampaign{CampaignID: 1, LeadID: 2, Status: domain.LeadCampaignStatusNew})
	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, domain.MsgLeadAlreadyInCampaign, err.Error())

	mock.ExpectQuery(`INSERT INTO lead_campaigns`).
		WithArgs(int64(1), int64(7), "New").
		WillReturnError(&pq.Error{Code: "23503", Constraint: "lead_campaigns_lead_id_fkey"})
	err = repo.AddLead(context.Background(), &domain.LeadCampaign{CampaignID: 1, LeadID: 7, Status: domain.LeadCampaignStatusNew})
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, domain.MsgCampaignOrLeadNotFound, err.Error())
}

func TestCampaignRepository_UpdateLeadStatus(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCampaignRepository(db)

	mock.ExpectExec(`UPDATE lead_campaigns SET status = \$1, updated_at = NOW\(\) WHERE campaign_id = \$2 AND lead_id = \$3`).
		WithArgs("Qualified", int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.UpdateLeadStatus(context.Background(), &domain.LeadCampaign{CampaignID: 1, LeadID: 2, Status: domain.LeadCampaignStatusQualified}))

	mock.ExpectExec(`UPDATE lead_campaigns`).
		WithArgs("Qualified", int64(1), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateLeadStatus(context.Background(), &domain.LeadCampaign{CampaignID: 1, LeadID: 3, Status: domain.LeadCampaignStatusQualified})
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, domain.MsgLeadNotInCampaign, err.Error())
}

func TestCampaignRepository_RemoveLead(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCampaignRepository(db)

	mock.ExpectExec(`DELETE FROM lead_campaigns WHERE campaign_id = \$1 AND lead_id = \$2`).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.RemoveLead(context.Background(), 1, 2))

	mock.ExpectExec(`DELETE FROM lead_campaigns`).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.True(t, domain.IsNotFound(repo.RemoveLead(context.Background(), 1, 2)))
}
