package post_repository_sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/soloda1/pinstack-proto-definitions/custom_errors"
	_ "modernc.org/sqlite"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

// Open opens the sqlite database file at path and verifies the connection.
// Timestamps are written as "YYYY-MM-DD HH:MM:SS.fffffffff+hh:mm", which the
// sqlite date functions understand.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_time_format=sqlite")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

type PostRepository struct {
	log     ports.Logger
	db      *sql.DB
	metrics ports.MetricsProvider
}

func NewPostRepository(db *sql.DB, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Getting post by ID", slog.Int64("id", id))

	query := `SELECT id, title, content, created_at
				FROM posts WHERE id = ?`
	post := &model.Post{}
	err := p.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.CreatedAt,
	)
	p.metrics.RecordDatabaseQueryDuration("post_get_by_id", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_get_by_id", false)
		if errors.Is(err, sql.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_get_by_id", true)
	return post, nil
}

func (p *PostRepository) List(ctx context.Context) ([]*model.Post, error) {
	start := time.Now()
	defer func() {
		p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
	}()

	// created_at is stored as text with its offset; sort on the instant.
	query := `SELECT id, title, content, created_at
				FROM posts ORDER BY julianday(created_at) DESC, id DESC`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts := make([]*model.Post, 0)
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt); err != nil {
			p.metrics.IncrementDatabaseQueries("post_list", false)
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_list", true)
	p.log.Debug("Successfully listed posts", slog.Int("count", len(posts)))
	return posts, nil
}
