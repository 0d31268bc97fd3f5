package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/feedback-pulse/backend/internal/feedback"
	"github.com/feedback-pulse/backend/internal/storage/models"
	"github.com/feedback-pulse/backend/pkg/logger"
)

type Client struct {
	db *sql.DB
}

func NewClient(dbPath string) (*Client, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec("PRAGMA journal_mode = WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	logger.Info("SQLite client initialized", zap.String("path", dbPath))

	return &Client{db: db}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS feedback (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		submitter TEXT NOT NULL,
		channel TEXT NOT NULL,
		urgency TEXT NOT NULL,
		theme TEXT NOT NULL,
		value TEXT NOT NULL,
		sentiment TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_feedback_created ON feedback(created_at);
	CREATE INDEX IF NOT EXISTS idx_feedback_urgency ON feedback(urgency);
	CREATE INDEX IF NOT EXISTS idx_feedback_theme ON feedback(theme);
	CREATE INDEX IF NOT EXISTS idx_feedback_sentiment ON feedback(sentiment);
	`

	_, err := c.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("SQLite schema initialized")
	return nil
}

// InsertFeedback appends a record; the id and creation time are assigned
// here, never by the caller.
func (c *Client) InsertFeedback(sub feedback.Submission) (*models.FeedbackRecord, error) {
	query := `
		INSERT INTO feedback (submitter, channel, urgency, theme, value, sentiment, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now()

	result, err := c.db.Exec(
		query,
		sub.Submitter,
		sub.Channel,
		sub.Urgency,
		sub.Theme,
		sub.Value,
		sub.Sentiment,
		sub.Message,
		createdAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert feedback: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", err)
	}

	logger.Info("Feedback stored",
		zap.Int64("feedback_id", id),
		zap.String("urgency", sub.Urgency),
		zap.String("theme", sub.Theme),
	)

	return &models.FeedbackRecord{
		ID:        id,
		Submitter: sub.Submitter,
		Channel:   sub.Channel,
		Urgency:   sub.Urgency,
		Theme:     sub.Theme,
		Value:     sub.Value,
		Sentiment: sub.Sentiment,
		Message:   sub.Message,
		CreatedAt: time.Unix(createdAt.Unix(), 0),
	}, nil
}

// ListFeedback reads records matching the sanitized filters, newest first.
// No match returns an empty slice, not an error.
func (c *Client) ListFeedback(filters feedback.FilterSet, limit int) ([]models.FeedbackRecord, error) {
	query, args := feedback.BuildListQuery(filters, limit)

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	records := make([]models.FeedbackRecord, 0)
	for rows.Next() {
		var r models.FeedbackRecord
		var createdAt int64

		err := rows.Scan(&r.ID, &r.Submitter, &r.Channel, &r.Urgency, &r.Theme, &r.Value, &r.Sentiment, &r.Message, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		r.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return records, nil
}
