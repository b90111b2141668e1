package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/store"
)

// CommentService provides operations over comments. Every comment lives
// under a post; creation resolves the post first, and mutation and deletion
// are restricted to the comment's author.
type CommentService interface {
	// ListCommentsByPost retrieves a page of comments on the given post.
	// Zero matching rows yields a not-found error.
	ListCommentsByPost(ctx context.Context, postID int64, page, size int) (store.Page[domain.Comment], error)

	// GetComment retrieves a comment by its ID.
	GetComment(ctx context.Context, commentID int64) (*domain.Comment, error)

	// CreateComment creates a new comment on postID authored by userID.
	// Blank content is rejected; an unresolvable post yields
	// store.ErrPostNotFound.
	CreateComment(ctx context.Context, postID, userID int64, content string) (*domain.Comment, error)

	// UpdateComment replaces the comment's content on behalf of actorID.
	// Only the comment's author may update it.
	UpdateComment(ctx context.Context, commentID, actorID int64, content string) (*domain.Comment, error)

	// DeleteComment deletes the comment on behalf of actorID. Only the
	// comment's author may delete it.
	DeleteComment(ctx context.Context, commentID, actorID int64) error
}

// commentServiceImpl implements the CommentService interface.
type commentServiceImpl struct {
	commentStore store.CommentStore
	postStore    store.PostStore
	logger       *slog.Logger
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentStore store.CommentStore, postStore store.PostStore, logger *slog.Logger) CommentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentServiceImpl{
		commentStore: commentStore,
		postStore:    postStore,
		logger:       logger.With(slog.String("component", "comment_service")),
	}
}

// ListCommentsByPost implements CommentService.ListCommentsByPost
func (s *commentServiceImpl) ListCommentsByPost(ctx context.Context, postID int64, page, size int) (store.Page[domain.Comment], error) {
	comments, err := s.commentStore.ListByPost(ctx, postID, page, size)
	if err != nil {
		s.logger.Error("failed to list comments by post", "error", err, "post_id", postID)
		return store.Page[domain.Comment]{}, fmt.Errorf("failed to list comments by post: %w", err)
	}
	if comments.IsEmpty() {
		s.logger.Debug("no comments for post", "post_id", postID)
		return store.Page[domain.Comment]{}, fmt.Errorf("no comments for post %d: %w", postID, store.ErrCommentNotFound)
	}
	return comments, nil
}

// GetComment implements CommentService.GetComment
func (s *commentServiceImpl) GetComment(ctx context.Context, commentID int64) (*domain.Comment, error) {
	comment, err := s.commentStore.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			s.logger.Debug("comment not found", "comment_id", commentID)
		} else {
			s.logger.Error("failed to retrieve comment", "error", err, "comment_id", commentID)
		}
		return nil, fmt.Errorf("failed to retrieve comment: %w", err)
	}
	return comment, nil
}

// CreateComment implements CommentService.CreateComment
func (s *commentServiceImpl) CreateComment(ctx context.Context, postID, userID int64, content string) (*domain.Comment, error) {
	comment, err := domain.NewComment(content, userID, postID)
	if err != nil {
		s.logger.Debug("invalid comment data", "error", err, "post_id", postID)
		return nil, err
	}

	if _, err := s.postStore.GetByID(ctx, postID); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			s.logger.Debug("comment references missing post", "post_id", postID)
			return nil, err
		}
		s.logger.Error("failed to resolve post for comment", "error", err, "post_id", postID)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if err := s.commentStore.Create(ctx, comment); err != nil {
		s.logger.Error("failed to save comment", "error", err, "post_id", postID)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("comment created successfully",
		"comment_id", comment.ID, "post_id", postID, "user_id", userID)
	return comment, nil
}

// UpdateComment implements CommentService.UpdateComment
func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID, actorID int64, content string) (*domain.Comment, error) {
	comment, err := s.commentStore.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			s.logger.Debug("comment not found for update", "comment_id", commentID)
		} else {
			s.logger.Error("failed to retrieve comment for update", "error", err, "comment_id", commentID)
		}
		return nil, fmt.Errorf("failed to retrieve comment for update: %w", err)
	}

	if err := AuthorizeOwner(actorID, comment.UserID); err != nil {
		s.logger.Warn("comment update denied",
			"comment_id", commentID, "actor_id", actorID, "owner_id", comment.UserID)
		return nil, err
	}

	comment.Content = content
	if err := comment.Validate(); err != nil {
		s.logger.Debug("invalid comment data on update", "error", err, "comment_id", commentID)
		return nil, err
	}

	if err := s.commentStore.Update(ctx, comment); err != nil {
		s.logger.Error("failed to update comment", "error", err, "comment_id", commentID)
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	s.logger.Info("comment updated successfully", "comment_id", commentID, "actor_id", actorID)
	return comment, nil
}

// DeleteComment implements CommentService.DeleteComment
func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID, actorID int64) error {
	comment, err := s.commentStore.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			s.logger.Debug("comment not found for delete", "comment_id", commentID)
		} else {
			s.logger.Error("failed to retrieve comment for delete", "error", err, "comment_id", commentID)
		}
		return fmt.Errorf("failed to retrieve comment for delete: %w", err)
	}

	if err := AuthorizeOwner(actorID, comment.UserID); err != nil {
		s.logger.Warn("comment delete denied",
			"comment_id", commentID, "actor_id", actorID, "owner_id", comment.UserID)
		return err
	}

	if err := s.commentStore.Delete(ctx, commentID); err != nil {
		s.logger.Error("failed to delete comment", "error", err, "comment_id", commentID)
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.logger.Info("comment deleted successfully", "comment_id", commentID, "actor_id", actorID)
	return nil
}
