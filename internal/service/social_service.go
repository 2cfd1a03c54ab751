package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"onemore-backend/internal/dto"
	"onemore-backend/internal/entity"
	"onemore-backend/internal/pkg/apperror"
	"onemore-backend/internal/repository"
	"onemore-backend/pkg/utils"

	"github.com/google/uuid"
)

const (
	defaultCommentPageSize = 5
	maxCommentPageSize     = 50
)

type ISocialService interface {
	ListPosts(ctx context.Context, user entity.User) (*dto.ListPostsResponse, error)
	CreatePost(ctx context.Context, user entity.User, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	ToggleLike(ctx context.Context, user entity.User, postId string) (*dto.PostResponse, error)
	ListComments(ctx context.Context, user entity.User, postId string, page, pageSize int) (*dto.ListCommentsResponse, error)
	CreateComment(ctx context.Context, user entity.User, postId string, req *dto.CreateCommentRequest) (*dto.PostResponse, error)
	DeleteComment(ctx context.Context, user entity.User, postId, commentId string) (*dto.DeleteCommentResponse, error)
}

type socialService struct {
	store *repository.DocumentStore
}

func NewSocialService(store *repository.DocumentStore) ISocialService {
	return &socialService{store: store}
}

func (s *socialService) ListPosts(ctx context.Context, user entity.User) (*dto.ListPostsResponse, error) {
	var views []dto.PostView
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		changed := repository.EnsureSeedPosts(doc)

		sorted := make([]entity.Post, len(doc.Posts))
		copy(sorted, doc.Posts)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})

		views = make([]dto.PostView, 0, len(sorted))
		for i := range sorted {
			views = append(views, dto.NewPostView(&sorted[i], user.Id))
		}
		return changed, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListPostsResponse{Posts: views}, nil
}

func (s *socialService) CreatePost(ctx context.Context, user entity.User, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperror.Validation("Post content cannot be empty.")
	}

	avatar := "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=300&q=80"
	if user.Avatar != nil && *user.Avatar != "" {
		avatar = *user.Avatar
	}

	post := entity.Post{
		Id:           uuid.NewString(),
		UserId:       user.Id,
		AuthorName:   user.Name,
		AuthorAvatar: avatar,
		Content:      content,
		Image:        req.Image,
		Likes:        []string{},
		Comments:     []entity.Comment{},
		CreatedAt:    time.Now(),
	}

	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		doc.Posts = append(doc.Posts, post)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.PostResponse{Post: dto.NewPostView(&post, user.Id)}, nil
}

func (s *socialService) ToggleLike(ctx context.Context, user entity.User, postId string) (*dto.PostResponse, error) {
	var view dto.PostView
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		post := doc.PostById(postId)
		if post == nil {
			return false, apperror.NotFound("Post not found.")
		}

		liked := -1
		for i, id := range post.Likes {
			if id == user.Id {
				liked = i
				break
			}
		}
		if liked >= 0 {
			post.Likes = append(post.Likes[:liked], post.Likes[liked+1:]...)
		} else {
			post.Likes = append(post.Likes, user.Id)
		}

		view = dto.NewPostView(post, user.Id)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.PostResponse{Post: view}, nil
}

func (s *socialService) ListComments(ctx context.Context, user entity.User, postId string, page, pageSize int) (*dto.ListCommentsResponse, error) {
	if pageSize == 0 {
		pageSize = defaultCommentPageSize
	}

	var paged utils.PageResult[entity.Comment]
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		post := doc.PostById(postId)
		if post == nil {
			return false, apperror.NotFound("Post not found.")
		}

		comments := make([]entity.Comment, len(post.Comments))
		copy(comments, post.Comments)
		sort.SliceStable(comments, func(i, j int) bool {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		})

		paged = utils.Paginate(comments, page, pageSize, maxCommentPageSize)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListCommentsResponse{Comments: paged.Items, Pagination: paged}, nil
}

func (s *socialService) CreateComment(ctx context.Context, user entity.User, postId string, req *dto.CreateCommentRequest) (*dto.PostResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperror.Validation("Comment cannot be empty.")
	}

	var view dto.PostView
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		post := doc.PostById(postId)
		if post == nil {
			return false, apperror.NotFound("Post not found.")
		}

		post.Comments = append(post.Comments, entity.Comment{
			Id:         uuid.NewString(),
			UserId:     user.Id,
			AuthorName: user.Name,
			Text:       text,
			CreatedAt:  time.Now(),
		})

		view = dto.NewPostView(post, user.Id)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.PostResponse{Post: view}, nil
}

// DeleteComment enforces ownership: the comment must exist on the post
// and belong to the caller.
func (s *socialService) DeleteComment(ctx context.Context, user entity.User, postId, commentId string) (*dto.DeleteCommentResponse, error) {
	var view dto.PostView
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		post := doc.PostById(postId)
		if post == nil {
			return false, apperror.NotFound("Post not found.")
		}

		idx := -1
		for i := range post.Comments {
			if post.Comments[i].Id == commentId {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false, apperror.NotFound("Comment not found.")
		}
		if post.Comments[idx].UserId != user.Id {
			return false, apperror.Forbidden("You can only delete your own comments.")
		}

		post.Comments = append(post.Comments[:idx], post.Comments[idx+1:]...)
		view = dto.NewPostView(post, user.Id)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.DeleteCommentResponse{Post: view, Deleted: true}, nil
}
