package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // Postgres driver

	"adforge/internal/core"
)

// PostgresDB implements the Database interface for PostgreSQL
type PostgresDB struct {
	db         *sql.DB
	campaigns  CampaignRepository
	content    ContentRepository
	strategies StrategyRepository
	scores     ScoreRepository
}

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	pgDB := &PostgresDB{db: db}
	pgDB.campaigns = &postgresCampaignRepo{db: db}
	pgDB.content = &postgresContentRepo{db: db}
	pgDB.strategies = &postgresStrategyRepo{db: db}
	pgDB.scores = &postgresScoreRepo{db: db}

	return pgDB, nil
}

func (p *PostgresDB) Campaigns() CampaignRepository  { return p.campaigns }
func (p *PostgresDB) Content() ContentRepository     { return p.content }
func (p *PostgresDB) Strategies() StrategyRepository { return p.strategies }
func (p *PostgresDB) Scores() ScoreRepository        { return p.scores }

func (p *PostgresDB) Close() error {
	return p.db.Close()
}

func (p *PostgresDB) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// postgresCampaignRepo implements CampaignRepository for PostgreSQL
type postgresCampaignRepo struct {
	db *sql.DB
}

func (r *postgresCampaignRepo) Create(ctx context.Context, campaign *core.Campaign) error {
	if campaign.ID == "" {
		campaign.ID = uuid.New().String()
	}
	if campaign.CreatedAt.IsZero() {
		campaign.CreatedAt = time.Now().UTC()
	}

	// Formats and media are stored as JSONB; they are read back whole and
	// never queried by element.
	formatsJSON, err := json.Marshal(campaign.OutputFormats)
	if err != nil {
		return fmt.Errorf("failed to marshal output formats: %w", err)
	}
	mediaJSON, err := json.Marshal(campaign.Media)
	if err != nil {
		return fmt.Errorf("failed to marshal media: %w", err)
	}

	query := `
		INSERT INTO campaigns (
			id, name, product_description, target_audience, desired_emotion,
			output_formats, ai_provider, media, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.db.ExecContext(ctx, query,
		campaign.ID, campaign.Name, campaign.ProductDescription,
		campaign.TargetAudience, campaign.DesiredEmotion,
		formatsJSON, campaign.AIProvider, mediaJSON, campaign.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert campaign: %w", err)
	}
	return nil
}

func (r *postgresCampaignRepo) Get(ctx context.Context, id string) (*core.Campaign, error) {
	query := `
		SELECT id, name, product_description, target_audience, desired_emotion,
			   output_formats, ai_provider, media, created_at
		FROM campaigns WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var campaign core.Campaign
	var formatsJSON, mediaJSON []byte
	err := row.Scan(
		&campaign.ID, &campaign.Name, &campaign.ProductDescription,
		&campaign.TargetAudience, &campaign.DesiredEmotion,
		&formatsJSON, &campaign.AIProvider, &mediaJSON, &campaign.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("campaign %s not found", id)
		}
		return nil, err
	}

	if len(formatsJSON) > 0 {
		if err := json.Unmarshal(formatsJSON, &campaign.OutputFormats); err != nil {
			return nil, fmt.Errorf("failed to unmarshal output formats: %w", err)
		}
	}
	if len(mediaJSON) > 0 {
		if err := json.Unmarshal(mediaJSON, &campaign.Media); err != nil {
			return nil, fmt.Errorf("failed to unmarshal media: %w", err)
		}
	}
	return &campaign, nil
}

func (r *postgresCampaignRepo) List(ctx context.Context, opts ListOptions) ([]core.Campaign, error) {
	query := `
		SELECT id, name, product_description, target_audience, desired_emotion,
			   output_formats, ai_provider, media, created_at
		FROM campaigns
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	limit := opts.Limit
	if limit == 0 {
		limit = 100 // Default limit
	}
	rows, err := r.db.QueryContext(ctx, query, limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []core.Campaign
	for rows.Next() {
		var campaign core.Campaign
		var formatsJSON, mediaJSON []byte
		err := rows.Scan(
			&campaign.ID, &campaign.Name, &campaign.ProductDescription,
			&campaign.TargetAudience, &campaign.DesiredEmotion,
			&formatsJSON, &campaign.AIProvider, &mediaJSON, &campaign.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if len(formatsJSON) > 0 {
			if err := json.Unmarshal(formatsJSON, &campaign.OutputFormats); err != nil {
				return nil, fmt.Errorf("failed to unmarshal output formats: %w", err)
			}
		}
		if len(mediaJSON) > 0 {
			if err := json.Unmarshal(mediaJSON, &campaign.Media); err != nil {
				return nil, fmt.Errorf("failed to unmarshal media: %w", err)
			}
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, rows.Err()
}

func (r *postgresCampaignRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM campaigns WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// postgresContentRepo implements ContentRepository for PostgreSQL
type postgresContentRepo struct {
	db *sql.DB
}

func (r *postgresContentRepo) CreateBatch(ctx context.Context, campaignID string, items []core.GeneratedContent) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO generated_content (id, campaign_id, format, content, generated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, item := range items {
		_, err := tx.ExecContext(ctx, query,
			uuid.New().String(), campaignID, item.Format, item.Content, item.GeneratedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert generated content: %w", err)
		}
	}
	return tx.Commit()
}

func (r *postgresContentRepo) GetByCampaignID(ctx context.Context, campaignID string) ([]core.GeneratedContent, error) {
	query := `
		SELECT format, content, generated_at
		FROM generated_content
		WHERE campaign_id = $1
		ORDER BY generated_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []core.GeneratedContent
	for rows.Next() {
		var item core.GeneratedContent
		if err := rows.Scan(&item.Format, &item.Content, &item.GeneratedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresContentRepo) DeleteByCampaignID(ctx context.Context, campaignID string) error {
	query := `DELETE FROM generated_content WHERE campaign_id = $1`
	_, err := r.db.ExecContext(ctx, query, campaignID)
	return err
}

// postgresStrategyRepo implements StrategyRepository for PostgreSQL
type postgresStrategyRepo struct {
	db *sql.DB
}

func (r *postgresStrategyRepo) Create(ctx context.Context, strategy *core.Strategy) error {
	if strategy.ID == "" {
		strategy.ID = uuid.New().String()
	}
	if strategy.GeneratedAt.IsZero() {
		strategy.GeneratedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO strategies (id, campaign_id, content, model_used, generated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		strategy.ID, strategy.CampaignID, strategy.Content,
		strategy.ModelUsed, strategy.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert strategy: %w", err)
	}
	return nil
}

func (r *postgresStrategyRepo) GetByCampaignID(ctx context.Context, campaignID string) (*core.Strategy, error) {
	query := `
		SELECT id, campaign_id, content, model_used, generated_at
		FROM strategies
		WHERE campaign_id = $1
		ORDER BY generated_at DESC
		LIMIT 1
	`
	row := r.db.QueryRowContext(ctx, query, campaignID)

	var strategy core.Strategy
	err := row.Scan(
		&strategy.ID, &strategy.CampaignID, &strategy.Content,
		&strategy.ModelUsed, &strategy.GeneratedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no strategy found for campaign %s", campaignID)
		}
		return nil, err
	}
	return &strategy, nil
}

// postgresScoreRepo implements ScoreRepository for PostgreSQL
type postgresScoreRepo struct {
	db *sql.DB
}

func (r *postgresScoreRepo) Create(ctx context.Context, campaignID string, payload *core.ScorePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal score payload: %w", err)
	}

	query := `
		INSERT INTO virality_scores (id, campaign_id, payload, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err = r.db.ExecContext(ctx, query,
		uuid.New().String(), campaignID, payloadJSON, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert virality score: %w", err)
	}
	return nil
}

func (r *postgresScoreRepo) GetLatest(ctx context.Context, campaignID string, limit int) ([]core.ScorePayload, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `
		SELECT payload
		FROM virality_scores
		WHERE campaign_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, campaignID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payloads []core.ScorePayload
	for rows.Next() {
		var payloadJSON []byte
		if err := rows.Scan(&payloadJSON); err != nil {
			return nil, err
		}
		var payload core.ScorePayload
		if err := json.Unmarshal(payloadJSON, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score payload: %w", err)
		}
		payloads = append(payloads, payload)
	}
	return payloads, rows.Err()
}
