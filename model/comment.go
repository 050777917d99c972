// model/comment.go
package model

import "time"

// Comment is either a top-level comment on a material or a reply to one.
// Replies are only populated on top-level comments.
type Comment struct {
	ID         int       `json:"id"`
	Material   int       `json:"material"`
	Author     int       `json:"author"`
	AuthorName string    `json:"author_name"`
	Parent     *int      `json:"parent"`
	Content    string    `json:"content"`
	Replies    []Comment `json:"replies"`
	CreatedAt  time.Time `json:"created_at"`
}

func (c *Comment) IsReply() bool {
	return c.Parent != nil
}

type CommentCreate struct {
	Material int    `json:"material" validate:"required"`
	Parent   *int   `json:"parent,omitempty"`
	Content  string `json:"content" validate:"required,max=2000"`
}
