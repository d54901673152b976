package handler

import (
	"bloggo/auth"
	"bloggo/domain"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) Comment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var form domain.CommentForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	_, err = h.Blog.AddComment(c.Request().Context(), id, auth.CurrentUser(c), form)
	if verr, ok := validationError(err); ok {
		return h.renderView(c, id, http.StatusBadRequest, verr.Message)
	}
	if err != nil {
		return postError(err, id)
	}

	return c.Redirect(http.StatusFound, viewPath(id))
}

func (h *Handler) DeleteComment(c echo.Context) error {
	postID, err := pathID(c, "post_id")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Blog.DeleteComment(c.Request().Context(), postID, id, auth.CurrentUser(c)); err != nil {
		return commentError(err, id)
	}

	return c.Redirect(http.StatusFound, viewPath(postID))
}
