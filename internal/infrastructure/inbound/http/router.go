package delivery_http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	post_http "blog-service/internal/infrastructure/inbound/http/post"
)

// registerRoutes declares the URL table. The detail route captures an
// integer pk, but the handler selects the post by the "id" form field.
func registerRoutes(e *echo.Echo, api *post_http.PostHTTPAPI) {
	e.GET("/", api.ListPosts)
	e.Match([]string{http.MethodGet, http.MethodPost}, "/detail/:pk", api.PostDetail)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
