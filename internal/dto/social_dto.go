package dto

import (
	"time"

	"onemore-backend/internal/entity"
	"onemore-backend/pkg/utils"
)

// PostView is a post serialized for a particular viewer.
type PostView struct {
	Id            string           `json:"id"`
	UserId        string           `json:"userId"`
	AuthorName    string           `json:"authorName"`
	AuthorAvatar  string           `json:"authorAvatar"`
	Content       string           `json:"content"`
	Image         *string          `json:"image"`
	CreatedAt     time.Time        `json:"createdAt"`
	Comments      []entity.Comment `json:"comments"`
	CommentsCount int              `json:"commentsCount"`
	LikeCount     int              `json:"likeCount"`
	LikedByMe     bool             `json:"likedByMe"`
}

func NewPostView(p *entity.Post, viewerId string) PostView {
	comments := p.Comments
	if comments == nil {
		comments = []entity.Comment{}
	}
	return PostView{
		Id:            p.Id,
		UserId:        p.UserId,
		AuthorName:    p.AuthorName,
		AuthorAvatar:  p.AuthorAvatar,
		Content:       p.Content,
		Image:         p.Image,
		CreatedAt:     p.CreatedAt,
		Comments:      comments,
		CommentsCount: len(comments),
		LikeCount:     len(p.Likes),
		LikedByMe:     p.LikedBy(viewerId),
	}
}

type ListPostsResponse struct {
	Posts []PostView `json:"posts"`
}

type CreatePostRequest struct {
	Content string  `json:"content" validate:"required"`
	Image   *string `json:"image"`
}

type PostResponse struct {
	Post PostView `json:"post"`
}

type ListCommentsResponse struct {
	Comments   []entity.Comment                 `json:"comments"`
	Pagination utils.PageResult[entity.Comment] `json:"pagination"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type DeleteCommentResponse struct {
	Post    PostView `json:"post"`
	Deleted bool     `json:"deleted"`
}
