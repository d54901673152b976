package handler

import (
	"bloggo/domain"
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newContext(method string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorHandlerFallsBackToText(t *testing.T) {
	c, rec := newContext(http.MethodGet)

	ErrorHandler(echo.NewHTTPError(http.StatusForbidden, "Access denied."), c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied.", rec.Body.String())
}

func TestErrorHandlerLogsAfterCommit(t *testing.T) {
	c, rec := newContext(http.MethodGet)
	var buf bytes.Buffer
	c.Echo().Logger.SetOutput(&buf)
	assert.NoError(t, c.String(http.StatusOK, "partial"))

	ErrorHandler(errors.New("write failed"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
	assert.Contains(t, buf.String(), "write failed")
}

func TestErrorHandlerInternal(t *testing.T) {
	c, rec := newContext(http.MethodGet)

	ErrorHandler(errors.New("db exploded"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", rec.Body.String())
}

func TestErrorHandlerHead(t *testing.T) {
	c, rec := newContext(http.MethodHead)

	ErrorHandler(echo.NewHTTPError(http.StatusNotFound), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestPostError(t *testing.T) {
	err := postError(domain.ErrNotFound, 4)
	var he *echo.HTTPError
	assert.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusNotFound, he.Code)
	assert.Equal(t, "Post id 4 doesn't exist.", he.Message)

	err = postError(domain.ErrForbidden, 4)
	assert.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusForbidden, he.Code)

	err = commentError(domain.ErrNotFound, 9)
	assert.True(t, errors.As(err, &he))
	assert.Equal(t, "Comment id 9 doesn't exist.", he.Message)

	plain := errors.New("other")
	assert.Equal(t, plain, postError(plain, 1))
}

func TestPathID(t *testing.T) {
	c, _ := newContext(http.MethodGet)
	c.SetParamNames("id")
	c.SetParamValues("12")
	id, err := pathID(c, "id")
	assert.NoError(t, err)
	assert.Equal(t, int64(12), id)

	c.SetParamValues("-1")
	_, err = pathID(c, "id")
	assert.Error(t, err)

	c.SetParamValues("abc")
	_, err = pathID(c, "id")
	assert.Error(t, err)
}
