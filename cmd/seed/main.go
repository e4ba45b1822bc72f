// Command seed fills an empty database with sample leads, groups and campaigns.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/leadflow/leadflow/config"
	"github.com/leadflow/leadflow/internal/database"
	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/internal/repository"
	"github.com/leadflow/leadflow/internal/service"
	"github.com/leadflow/leadflow/pkg/logger"
)

var sampleLeads = []domain.CreateLeadRequest{
	{Name: "John Doe", Email: "john@example.com", Phone: "555-1234", Status: domain.LeadStatusNew},
	{Name: "Jane Smith", Email: "jane@example.com", Phone: "555-5678", Status: domain.LeadStatusContacted},
}

var sampleGroups = []domain.CreateGroupRequest{
	{Name: "VIP Customers", Description: "High-value prospects"},
	{Name: "Newsletter Subscribers", Description: "Leads from newsletter signup"},
}

var sampleCampaigns = []domain.CreateCampaignRequest{
	{
		Name:        "Summer Sale 2025",
		Description: "Promotional campaign for summer products",
		StartDate:   "2025-06-01",
		EndDate:     strPtr("2025-08-31"),
	},
	{
		Name:        "New Year Campaign",
		Description: "Celebrate the new year with discounts",
		StartDate:   "2025-01-01",
		EndDate:     strPtr("2025-01-15"),
	},
}

func strPtr(s string) *string { return &s }

// seeder creates the sample data through the services so every row passes
// the same validation as API input
type seeder struct {
	leads     domain.LeadService
	groups    domain.GroupService
	campaigns domain.CampaignService
	logger    logger.Logger
}

// run seeds the sample data unless leads already exist
func (s *seeder) run(ctx context.Context) error {
	existing, err := s.leads.ListLeads(ctx, domain.LeadQuery{
		Scope:    domain.LeadScopeAll,
		Page:     1,
		PageSize: 1,
		SortBy:   domain.LeadSortByName,
		Order:    domain.SortAsc,
	})
	if err != nil {
		return fmt.Errorf("failed to check existing leads: %w", err)
	}
	if existing.Meta.Total > 0 {
		s.logger.WithField("leads", existing.Meta.Total).Info("Database already contains leads, skipping seed")
		return nil
	}

	for i := range sampleLeads {
		lead, err := sampleLeads[i].Validate()
		if err != nil {
			return err
		}
		if err := s.leads.CreateLead(ctx, lead); err != nil {
			return fmt.Errorf("failed to seed lead %q: %w", lead.Name, err)
		}
	}

	for i := range sampleGroups {
		group, err := sampleGroups[i].Validate()
		if err != nil {
			return err
		}
		if err := s.groups.CreateGroup(ctx, group); err != nil {
			return fmt.Errorf("failed to seed group %q: %w", group.Name, err)
		}
	}

	for i := range sampleCampaigns {
		campaign, err := sampleCampaigns[i].Validate()
		if err != nil {
			return err
		}
		if err := s.campaigns.CreateCampaign(ctx, campaign); err != nil {
			return fmt.Errorf("failed to seed campaign %q: %w", campaign.Name, err)
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"leads":     len(sampleLeads),
		"groups":    len(sampleGroups),
		"campaigns": len(sampleCampaigns),
	}).Info("Database has been seeded")
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLogger := logger.NewLoggerWithLevel(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.Connect(ctx, &cfg.Database, false)
	if err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
	defer db.Close()

	s := &seeder{
		leads:     service.NewLeadService(repository.NewLeadRepository(db), nil, appLogger),
		groups:    service.NewGroupService(repository.NewGroupRepository(db), appLogger),
		campaigns: service.NewCampaignService(repository.NewCampaignRepository(db), appLogger),
		logger:    appLogger,
	}
	if err := s.run(ctx); err != nil {
		appLogger.Error(err.Error())
		db.Close()
		os.Exit(1)
	}
}
