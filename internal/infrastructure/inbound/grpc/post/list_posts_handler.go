package post_grpc

import (
	"context"
	"log/slog"

	pb "github.com/soloda1/pinstack-proto-definitions/gen/go/pinstack-proto-definitions/post/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

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

// ListPosts returns every post, newest first. Filter and paging fields of
// the request are not supported and are ignored.
func (h *ListPostsHandler) ListPosts(ctx context.Context, req *pb.ListPostsRequest) (*pb.ListPostsResponse, error) {
	if req.GetLimit() != 0 || req.GetOffset() != 0 || req.GetAuthorId() != 0 || len(req.GetTagNames()) > 0 {
		h.log.Debug("ListPosts filters ignored",
			slog.Int64("author_id", req.GetAuthorId()),
			slog.Int("limit", int(req.GetLimit())),
			slog.Int("offset", int(req.GetOffset())))
	}

	posts, err := h.postService.ListPosts(ctx)
	if err != nil {
		h.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, status.Error(codes.Internal, "failed to list posts")
	}

	pbPosts := make([]*pb.Post, len(posts))
	for i, post := range posts {
		pbPosts[i] = toProtoPost(post)
	}

	return &pb.ListPostsResponse{
		Posts: pbPosts,
		Total: int64(len(posts)),
	}, nil
}
