// Package persistence provides database abstraction interfaces for storing
// campaigns, generated content, strategies, and virality scores.
package persistence

import (
	"context"

	"adforge/internal/core"
)

// CampaignRepository handles campaign persistence operations
type CampaignRepository interface {
	// Create inserts a new campaign
	Create(ctx context.Context, campaign *core.Campaign) error

	// Get retrieves a campaign by ID
	Get(ctx context.Context, id string) (*core.Campaign, error)

	// List retrieves campaigns with pagination
	List(ctx context.Context, opts ListOptions) ([]core.Campaign, error)

	// Delete removes a campaign by ID
	Delete(ctx context.Context, id string) error
}

// ContentRepository handles generated-content persistence operations
type ContentRepository interface {
	// CreateBatch inserts one batch of generated items for a campaign
	CreateBatch(ctx context.Context, campaignID string, items []core.GeneratedContent) error

	// GetByCampaignID retrieves all generated items for a campaign
	GetByCampaignID(ctx context.Context, campaignID string) ([]core.GeneratedContent, error)

	// DeleteByCampaignID removes all generated items for a campaign
	DeleteByCampaignID(ctx context.Context, campaignID string) error
}

// StrategyRepository handles strategy-document persistence operations
type StrategyRepository interface {
	// Create inserts a new strategy document
	Create(ctx context.Context, strategy *core.Strategy) error

	// GetByCampaignID retrieves the most recent strategy for a campaign
	GetByCampaignID(ctx context.Context, campaignID string) (*core.Strategy, error)
}

// ScoreRepository handles virality-score persistence operations
type ScoreRepository interface {
	// Create inserts a score payload keyed by campaign
	Create(ctx context.Context, campaignID string, payload *core.ScorePayload) error

	// GetLatest retrieves the most recent scores for a campaign
	GetLatest(ctx context.Context, campaignID string, limit int) ([]core.ScorePayload, error)
}

// ListOptions provides common pagination options
type ListOptions struct {
	Limit  int // Maximum number of results (0 for the default limit)
	Offset int // Number of results to skip
}

// Database aggregates all repositories behind one connection
type Database interface {
	// Campaigns returns the campaign repository
	Campaigns() CampaignRepository

	// Content returns the generated-content repository
	Content() ContentRepository

	// Strategies returns the strategy repository
	Strategies() StrategyRepository

	// Scores returns the virality-score repository
	Scores() ScoreRepository

	// Close closes the database connection
	Close() error

	// Ping verifies the database connection
	Ping(ctx context.Context) error
}
