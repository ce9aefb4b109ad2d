package post_http

import (
	post_service "blog-service/internal/domain/ports/input/post"
	ports "blog-service/internal/domain/ports/output"
)

type PostHTTPAPI struct {
	*ListPostsHandler
	*PostDetailHandler
}

func NewPostHTTPAPI(postService post_service.Service, log ports.Logger) *PostHTTPAPI {
	return &PostHTTPAPI{
		ListPostsHandler:  NewListPostsHandler(postService, log),
		PostDetailHandler: NewPostDetailHandler(postService, log),
	}
}
