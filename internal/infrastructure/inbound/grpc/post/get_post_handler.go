package post_grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	pb "github.com/soloda1/pinstack-proto-definitions/gen/go/pinstack-proto-definitions/post/v1"
	"github.com/soloda1/pinstack-proto-definitions/custom_errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
}

type GetPostHandler struct {
	postService PostGetter
	validate    *validator.Validate
	log         ports.Logger
}

func NewGetPostHandler(postService PostGetter, validate *validator.Validate, log ports.Logger) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type GetPostRequestInternal struct {
	PostID int64 `validate:"required,gt=0"`
}

func (h *GetPostHandler) GetPost(ctx context.Context, req *pb.GetPostRequest) (*pb.Post, error) {
	validationReq := &GetPostRequestInternal{
		PostID: req.GetId(),
	}

	if err := h.validate.Struct(validationReq); err != nil {
		h.log.Debug("GetPost validation failed", slog.Int64("post_id", req.GetId()), slog.String("error", err.Error()))
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	post, err := h.postService.GetPostByID(ctx, req.GetId())
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			return nil, status.Error(codes.NotFound, "post not found")
		default:
			h.log.Error("Failed to get post", slog.Int64("post_id", req.GetId()), slog.String("error", err.Error()))
			return nil, status.Error(codes.Internal, "failed to get post")
		}
	}

	return toProtoPost(post), nil
}
