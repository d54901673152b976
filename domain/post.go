package domain

import (
	"strings"
	"time"
)

const MaxTitleLen = 100

type Post struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Author    string    `db:"author" json:"author"`
}

// OwnedBy reports whether u is the author of the post. A nil user owns nothing.
func (p *Post) OwnedBy(u *User) bool {
	return u != nil && u.ID == p.UserID
}

// PostForm is the payload of the create and update forms.
type PostForm struct {
	Title string `form:"title"`
	Body  string `form:"body"`
}

func (f *PostForm) Validate() error {
	f.Title = Truncate(strings.TrimSpace(f.Title), MaxTitleLen)
	if f.Title == "" {
		return &ValidationError{Field: "title", Message: "Title is required."}
	}
	if strings.TrimSpace(f.Body) == "" {
		return &ValidationError{Field: "body", Message: "Body is required."}
	}
	return nil
}
