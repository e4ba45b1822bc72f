// Package schema defines the database schema bootstrapped at startup.
//
// The statements are idempotent so they can run on every boot. Changes that
// alter existing columns should ship as explicit migrations instead.
package schema

// TableDefinitions contains the SQL statements that create the leadflow tables
// and their indexes, in dependency order.
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS leads (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(50) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'New',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS groups (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS group_leads (
		group_id BIGINT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
		lead_id BIGINT NOT NULL REFERENCES leads(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (group_id, lead_id)
	)`,
	`CREATE TABLE IF NOT EXISTS lead_campaigns (
		campaign_id BIGINT NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
		lead_id BIGINT NOT NULL REFERENCES leads(id) ON DELETE CASCADE,
		status VARCHAR(20) NOT NULL DEFAULT 'New',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (campaign_id, lead_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_name ON leads(name)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_email ON leads(email)`,
	`CREATE INDEX IF NOT EXISTS idx_group_leads_lead_id ON group_leads(lead_id)`,
	`CREATE INDEX IF NOT EXISTS idx_lead_campaigns_lead_id ON lead_campaigns(lead_id)`,
	`CREATE INDEX IF NOT EXISTS idx_lead_campaigns_status ON lead_campaigns(campaign_id, status)`,
}

// TableNames lists the tables in creation order
var TableNames = []string{
	"leads",
	"groups",
	"campaigns",
	"group_leads",
	"lead_campaigns",
}
