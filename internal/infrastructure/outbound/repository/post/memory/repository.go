package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/soloda1/pinstack-proto-definitions/custom_errors"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

// PostRepository keeps posts in a map. It is seeded once at construction
// and never written afterwards.
type PostRepository struct {
	log   ports.Logger
	mu    sync.RWMutex
	posts map[int64]*model.Post
}

func NewPostRepository(log ports.Logger, seed ...*model.Post) *PostRepository {
	posts := make(map[int64]*model.Post, len(seed))
	for _, post := range seed {
		postCopy := *post
		posts[post.ID] = &postCopy
	}
	return &PostRepository{
		log:   log,
		posts: posts,
	}
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) List(ctx context.Context) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]*model.Post, 0, len(p.posts))
	for _, post := range p.posts {
		postCopy := *post
		result = append(result, &postCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	p.log.Debug("Listed posts (memory impl)", slog.Int("count", len(result)))
	return result, nil
}
