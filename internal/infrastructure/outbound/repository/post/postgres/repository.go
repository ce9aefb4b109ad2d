package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/soloda1/pinstack-proto-definitions/custom_errors"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/outbound/repository/postgres/db"
)

type PostRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewPostRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Getting post by ID", slog.Int64("id", id))

	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, title, content, created_at
				FROM posts WHERE id = @id`
	row := p.db.QueryRow(ctx, query, args)
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.CreatedAt,
	)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_get_by_id", false)
		p.metrics.RecordDatabaseQueryDuration("post_get_by_id", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_get_by_id", true)
	p.metrics.RecordDatabaseQueryDuration("post_get_by_id", time.Since(start))
	p.log.Debug("Successfully retrieved post by ID", slog.Int64("id", post.ID))
	return post, nil
}

func (p *PostRepository) List(ctx context.Context) ([]*model.Post, error) {
	start := time.Now()
	p.log.Debug("Listing posts")

	query := `SELECT id, title, content, created_at
				FROM posts ORDER BY created_at DESC, id DESC`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts := make([]*model.Post, 0)
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.CreatedAt,
		)
		if err != nil {
			p.metrics.IncrementDatabaseQueries("post_list", false)
			p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_list", true)
	p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
	p.log.Debug("Successfully listed posts", slog.Int("count", len(posts)))
	return posts, nil
}
