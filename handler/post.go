package handler

import (
	"bloggo/auth"
	"bloggo/blog"
	"bloggo/domain"
	"bloggo/web"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

type PostDTO struct {
	ID        int64
	Title     string
	Body      string
	Content   template.HTML
	Author    string
	CreatedAt string
	CanEdit   bool
}

type CommentDTO struct {
	ID        int64
	PostID    int64
	Body      string
	Author    string
	CreatedAt string
	CanDelete bool
}

func newPostDTO(p *domain.Post, viewer *domain.User) PostDTO {
	return PostDTO{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		Content:   web.SafeMarkdown(p.Body),
		Author:    p.Author,
		CreatedAt: p.CreatedAt.Format(time.DateOnly),
		CanEdit:   p.OwnedBy(viewer),
	}
}

type postFormPage struct {
	layout
	Post PostDTO
}

type postViewPage struct {
	layout
	Post     PostDTO
	Comments []CommentDTO
}

func (h *Handler) GetPosts(c echo.Context) error {
	posts, err := h.Blog.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}

	viewer := auth.CurrentUser(c)
	dtos := make([]PostDTO, 0, len(posts))
	for i := range posts {
		dtos = append(dtos, newPostDTO(&posts[i], viewer))
	}

	return c.Render(http.StatusOK, "index.html", struct {
		layout
		Posts []PostDTO
	}{
		layout: h.layout(c),
		Posts:  dtos,
	})
}

func (h *Handler) GetCreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "create.html", postFormPage{layout: h.layout(c)})
}

func (h *Handler) CreatePost(c echo.Context) error {
	var form domain.PostForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	_, err := h.Blog.CreatePost(c.Request().Context(), auth.CurrentUser(c), form)
	if verr, ok := validationError(err); ok {
		page := postFormPage{layout: h.layout(c), Post: PostDTO{Title: form.Title, Body: form.Body}}
		page.Error = verr.Message
		return c.Render(http.StatusBadRequest, "create.html", page)
	}
	if err != nil {
		return postError(err, 0)
	}

	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) GetUpdateForm(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	viewer := auth.CurrentUser(c)
	post, err := h.Blog.GetPost(c.Request().Context(), id, viewer, true)
	if err != nil {
		return postError(err, id)
	}

	return c.Render(http.StatusOK, "update.html", postFormPage{
		layout: h.layout(c),
		Post:   newPostDTO(post, viewer),
	})
}

func (h *Handler) UpdatePost(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var form domain.PostForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	viewer := auth.CurrentUser(c)
	post, err := h.Blog.UpdatePost(c.Request().Context(), id, viewer, form)
	if verr, ok := validationError(err); ok {
		dto := newPostDTO(post, viewer)
		dto.Title, dto.Body = form.Title, form.Body
		page := postFormPage{layout: h.layout(c), Post: dto}
		page.Error = verr.Message
		return c.Render(http.StatusBadRequest, "update.html", page)
	}
	if err != nil {
		return postError(err, id)
	}

	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) DeletePost(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Blog.DeletePost(c.Request().Context(), id, auth.CurrentUser(c)); err != nil {
		return postError(err, id)
	}
	c.Logger().Infof("post %d deleted", id)

	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) ViewPost(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return h.renderView(c, id, http.StatusOK, "")
}

func (h *Handler) renderView(c echo.Context, id int64, code int, message string) error {
	detail, err := h.Blog.ViewPost(c.Request().Context(), id)
	if err != nil {
		return postError(err, id)
	}

	page := postViewPage{layout: h.layout(c)}
	page.Error = message
	page.Post = newPostDTO(&detail.Post, page.User)
	page.Comments = commentDTOs(detail, page.User)

	return c.Render(code, "view.html", page)
}

func commentDTOs(detail *blog.PostDetail, viewer *domain.User) []CommentDTO {
	dtos := make([]CommentDTO, 0, len(detail.Comments))
	for _, cm := range detail.Comments {
		dtos = append(dtos, CommentDTO{
			ID:        cm.ID,
			PostID:    cm.PostID,
			Body:      cm.Body,
			Author:    cm.Author,
			CreatedAt: cm.CreatedAt.Format(time.DateOnly),
			CanDelete: viewer != nil,
		})
	}
	return dtos
}

func viewPath(postID int64) string {
	return "/" + strconv.FormatInt(postID, 10) + "/view"
}
