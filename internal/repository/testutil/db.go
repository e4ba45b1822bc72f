package testutil

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SetupMockDB creates a mock database connection for testing. The cleanup
// function verifies that every expectation was consumed.
func SetupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cleanup := func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	}

	return db, mock, cleanup
}

// LeadColumns are the columns returned for a plain lead row
var LeadColumns = []string{"id", "name", "email", "phone", "status", "created_at", "updated_at"}

// LeadCampaignColumns are the columns returned when leads are listed within a campaign
var LeadCampaignColumns = append(append([]string{}, LeadColumns...),
	"campaign_id", "lead_id", "lc_status", "lc_created_at", "lc_updated_at")

// GroupColumns are the columns returned for a group row
var GroupColumns = []string{"id", "name", "description", "created_at", "updated_at"}

// CampaignColumns are the columns returned for a campaign row
var CampaignColumns = []string{"id", "name", "description", "start_date", "end_date", "created_at", "updated_at"}
