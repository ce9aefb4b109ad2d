package post_grpc

import (
	"context"

	"github.com/go-playground/validator/v10"
	pb "github.com/soloda1/pinstack-proto-definitions/gen/go/pinstack-proto-definitions/post/v1"

	post_service "blog-service/internal/domain/ports/input/post"
	ports "blog-service/internal/domain/ports/output"
)

var validate = validator.New()

// PostGRPCService serves the read side of PostService. Write RPCs fall
// through to the embedded Unimplemented server.
type PostGRPCService struct {
	pb.UnimplementedPostServiceServer
	getPostHandler   *GetPostHandler
	listPostsHandler *ListPostsHandler
}

func NewPostGRPCService(postService post_service.Service, log ports.Logger) *PostGRPCService {
	return &PostGRPCService{
		getPostHandler:   NewGetPostHandler(postService, validate, log),
		listPostsHandler: NewListPostsHandler(postService, log),
	}
}

func (s *PostGRPCService) GetPost(ctx context.Context, req *pb.GetPostRequest) (*pb.Post, error) {
	return s.getPostHandler.GetPost(ctx, req)
}

func (s *PostGRPCService) ListPosts(ctx context.Context, req *pb.ListPostsRequest) (*pb.ListPostsResponse, error) {
	return s.listPostsHandler.ListPosts(ctx, req)
}
