package post_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/soloda1/pinstack-proto-definitions/custom_errors"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

const PostNotFoundMessage = "게시글이 존재하지 않습니다."

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
}

type PostDetailHandler struct {
	postService PostGetter
	log         ports.Logger
}

func NewPostDetailHandler(postService PostGetter, log ports.Logger) *PostDetailHandler {
	return &PostDetailHandler{
		postService: postService,
		log:         log,
	}
}

// PostDetailRequest carries both identifiers a detail request can hold.
// Only ID, the "id" field of the form body, selects the post. PK is the
// route segment and does not take part in the lookup. HasID is false when
// the body has no "id" key at all; "id=" sets it with an empty ID.
type PostDetailRequest struct {
	PK    string
	ID    string
	HasID bool
}

type PostContentResponse struct {
	Content string `json:"content"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *PostDetailHandler) PostDetail(c echo.Context) error {
	r := c.Request()
	req := PostDetailRequest{
		PK: c.Param("pk"),
		ID: r.PostFormValue("id"),
	}
	_, req.HasID = r.PostForm["id"]

	if !isInteger(req.PK) {
		return echo.ErrNotFound
	}

	if !req.HasID {
		h.log.Debug("Post detail requested without id", slog.String("pk", req.PK))
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: PostNotFoundMessage})
	}

	id, err := strconv.ParseInt(req.ID, 10, 64)
	if err != nil {
		return fmt.Errorf("parse post id %q: %w", req.ID, err)
	}

	if req.PK != req.ID {
		h.log.Debug("Post detail path id differs from form id, using form id",
			slog.String("pk", req.PK),
			slog.Int64("post_id", id))
	}

	post, err := h.postService.GetPostByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: PostNotFoundMessage})
		}
		return fmt.Errorf("get post %d: %w", id, err)
	}

	return c.JSON(http.StatusOK, PostContentResponse{Content: post.Content})
}

// isInteger reports whether s matches the route's integer converter.
func isInteger(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
