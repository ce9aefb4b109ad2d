package post_grpc

import (
	pb "github.com/soloda1/pinstack-proto-definitions/gen/go/pinstack-proto-definitions/post/v1"
	"google.golang.org/protobuf/types/known/timestamppb"

	model "blog-service/internal/domain/models"
)

func toProtoPost(post *model.Post) *pb.Post {
	var createdAtPb *timestamppb.Timestamp
	if !post.CreatedAt.IsZero() {
		createdAtPb = timestamppb.New(post.CreatedAt)
	}
	return &pb.Post{
		Id:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: createdAtPb,
	}
}
