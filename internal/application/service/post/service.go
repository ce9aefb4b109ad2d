package post_service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/soloda1/pinstack-proto-definitions/custom_errors"

	model "blog-service/internal/domain/models"
	post_service "blog-service/internal/domain/ports/input/post"
	ports "blog-service/internal/domain/ports/output"
	post_repository "blog-service/internal/domain/ports/output/post"
)

type PostService struct {
	postRepo post_repository.Repository
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewPostService(
	postRepo post_repository.Repository,
	log ports.Logger,
	metrics ports.MetricsProvider,
) post_service.Service {
	return &PostService{
		postRepo: postRepo,
		log:      log,
		metrics:  metrics,
	}
}

func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		s.metrics.IncrementPostOperations("get_post", false)
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found", slog.Int64("post_id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post", slog.Int64("post_id", id), slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("get_post", true)
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		s.metrics.IncrementPostOperations("list_posts", false)
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("list_posts", true)
	s.log.Debug("Listed posts", slog.Int("count", len(posts)))
	return posts, nil
}
