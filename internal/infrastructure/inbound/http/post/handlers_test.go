package post_http_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/soloda1/pinstack-proto-definitions/custom_errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	model "blog-service/internal/domain/models"
	post_http "blog-service/internal/infrastructure/inbound/http/post"
	"blog-service/internal/infrastructure/logger"
	mockpost "blog-service/mocks/post"
)

type captureRenderer struct {
	name string
	data interface{}
}

func (r *captureRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	r.name = name
	r.data = data
	return nil
}

func detailContext(e *echo.Echo, pk string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/detail/"+pk, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/detail/:pk")
	c.SetParamNames("pk")
	c.SetParamValues(pk)
	return c, rec
}

func TestPostDetailHandler_PostDetail(t *testing.T) {
	testLogger := logger.New("test")

	t.Run("Success", func(t *testing.T) {
		mockPostService := mockpost.NewService(t)
		handler := post_http.NewPostDetailHandler(mockPostService, testLogger)

		mockPostService.On("GetPostByID", mock.Anything, int64(42)).
			Return(&model.Post{ID: 42, Title: "t", Content: "hello", CreatedAt: time.Now()}, nil)

		c, rec := detailContext(echo.New(), "42", url.Values{"id": {"42"}})
		err := handler.PostDetail(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"content": "hello"}`, rec.Body.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		mockPostService := mockpost.NewService(t)
		handler := post_http.NewPostDetailHandler(mockPostService, testLogger)

		mockPostService.On("GetPostByID", mock.Anything, int64(999999)).Return(nil, custom_errors.ErrPostNotFound)

		c, rec := detailContext(echo.New(), "999999", url.Values{"id": {"999999"}})
		err := handler.PostDetail(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error": "`+post_http.PostNotFoundMessage+`"}`, rec.Body.String())
	})

	t.Run("StoreFailurePropagates", func(t *testing.T) {
		mockPostService := mockpost.NewService(t)
		handler := post_http.NewPostDetailHandler(mockPostService, testLogger)

		mockPostService.On("GetPostByID", mock.Anything, int64(1)).Return(nil, custom_errors.ErrDatabaseQuery)

		c, _ := detailContext(echo.New(), "1", url.Values{"id": {"1"}})
		err := handler.PostDetail(c)

		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	})

	t.Run("MissingIDSkipsLookup", func(t *testing.T) {
		mockPostService := mockpost.NewService(t)
		handler := post_http.NewPostDetailHandler(mockPostService, testLogger)

		c, rec := detailContext(echo.New(), "1", url.Values{})
		err := handler.PostDetail(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockPostService.AssertNotCalled(t, "GetPostByID", mock.Anything, mock.Anything)
	})

	t.Run("MalformedID", func(t *testing.T) {
		mockPostService := mockpost.NewService(t)
		handler := post_http.NewPostDetailHandler(mockPostService, testLogger)

		c, _ := detailContext(echo.New(), "1", url.Values{"id": {"1.5"}})
		err := handler.PostDetail(c)

		assert.Error(t, err)
		var he *echo.HTTPError
		assert.False(t, errors.As(err, &he))
	})

	t.Run("EmptyIDIsMalformed", func(t *testing.T) {
		mockPostService := mockpost.NewService(t)
		handler := post_http.NewPostDetailHandler(mockPostService, testLogger)

		c, rec := detailContext(echo.New(), "1", url.Values{"id": {""}})
		err := handler.PostDetail(c)

		require.Error(t, err)
		var he *echo.HTTPError
		assert.False(t, errors.As(err, &he))
		assert.NotEqual(t, http.StatusNotFound, rec.Code)
		mockPostService.AssertNotCalled(t, "GetPostByID", mock.Anything, mock.Anything)
	})

	t.Run("NonIntegerPK", func(t *testing.T) {
		mockPostService := mockpost.NewService(t)
		handler := post_http.NewPostDetailHandler(mockPostService, testLogger)

		c, _ := detailContext(echo.New(), "-1", url.Values{"id": {"1"}})
		err := handler.PostDetail(c)

		assert.Equal(t, echo.ErrNotFound, err)
	})
}

func TestListPostsHandler_ListPosts(t *testing.T) {
	testLogger := logger.New("test")

	t.Run("Success", func(t *testing.T) {
		mockPostService := mockpost.NewService(t)
		handler := post_http.NewListPostsHandler(mockPostService, testLogger)

		posts := []*model.Post{{ID: 2}, {ID: 1}}
		mockPostService.On("ListPosts", mock.Anything).Return(posts, nil)

		renderer := &captureRenderer{}
		e := echo.New()
		e.Renderer = renderer
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		err := handler.ListPosts(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, post_http.IndexTemplate, renderer.name)
		assert.Equal(t, post_http.IndexPage{Posts: posts}, renderer.data)
	})

	t.Run("StoreFailurePropagates", func(t *testing.T) {
		mockPostService := mockpost.NewService(t)
		handler := post_http.NewListPostsHandler(mockPostService, testLogger)

		mockPostService.On("ListPosts", mock.Anything).Return(nil, custom_errors.ErrDatabaseQuery)

		e := echo.New()
		e.Renderer = &captureRenderer{}
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		err := handler.ListPosts(c)

		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	})
}
