package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostFormValidate(t *testing.T) {
	tests := []struct {
		name  string
		form  PostForm
		field string
	}{
		{"ok", PostForm{Title: "Hello", Body: "World"}, ""},
		{"empty title", PostForm{Title: "", Body: "World"}, "title"},
		{"blank title", PostForm{Title: "   ", Body: "World"}, "title"},
		{"empty body", PostForm{Title: "Hello", Body: ""}, "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestPostFormValidateTruncatesTitle(t *testing.T) {
	f := PostForm{Title: strings.Repeat("é", MaxTitleLen+20), Body: "b"}
	require.NoError(t, f.Validate())
	assert.Equal(t, MaxTitleLen, len([]rune(f.Title)))
}

func TestTruncateNormalisesInvalidUTF8(t *testing.T) {
	assert.Equal(t, "a\uFFFDb", Truncate("a\xffb", 10))
	assert.Equal(t, "a\uFFFD", Truncate("a\xffb", 2))
	assert.Equal(t, "héllo", Truncate("héllo", 10))
}

func TestCommentFormValidate(t *testing.T) {
	f := CommentForm{Body: ""}
	err := f.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Empty comment.", verr.Message)

	f = CommentForm{Body: strings.Repeat("x", 400)}
	require.NoError(t, f.Validate())
	assert.Len(t, f.Body, MaxCommentLen)
}

func TestCredentialsFormValidate(t *testing.T) {
	f := CredentialsForm{Username: " alice ", Password: ""}
	err := f.Validate()
	require.Error(t, err)
	assert.Equal(t, "alice", f.Username)
	assert.Contains(t, err.Error(), "Password is required.")
}

func TestOwnedBy(t *testing.T) {
	p := &Post{UserID: 7}
	assert.True(t, p.OwnedBy(&User{ID: 7}))
	assert.False(t, p.OwnedBy(&User{ID: 8}))
	assert.False(t, p.OwnedBy(nil))
}
