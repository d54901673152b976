package domain

import (
	"strings"
	"time"
)

const MaxCommentLen = 300

type Comment struct {
	ID        int64     `db:"id" json:"id"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created"`
	PostID    int64     `db:"post_id" json:"post_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Author    string    `db:"author" json:"author"`
}

type CommentForm struct {
	Body string `form:"body"`
}

func (f *CommentForm) Validate() error {
	f.Body = Truncate(strings.TrimSpace(f.Body), MaxCommentLen)
	if f.Body == "" {
		return &ValidationError{Field: "body", Message: "Empty comment."}
	}
	return nil
}
