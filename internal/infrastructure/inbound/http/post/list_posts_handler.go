package post_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

const IndexTemplate = "index.html"

type PostLister interface {
	ListPosts(ctx context.Context) ([]*model.Post, error)
}

type ListPostsHandler struct {
	postService PostLister
	log         ports.Logger
}

func NewListPostsHandler(postService PostLister, log ports.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		log:         log,
	}
}

type IndexPage struct {
	Posts []*model.Post
}

func (h *ListPostsHandler) ListPosts(c echo.Context) error {
	posts, err := h.postService.ListPosts(c.Request().Context())
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	h.log.Debug("Rendering post listing", slog.Int("count", len(posts)))
	return c.Render(http.StatusOK, IndexTemplate, IndexPage{Posts: posts})
}
