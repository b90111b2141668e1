package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/store"
)

// PostService provides operations over blog posts. Creation enforces the
// duplicate-pair rule and resolves both foreign keys before persisting;
// mutation and deletion are restricted to the post's author.
type PostService interface {
	// ListPosts retrieves a page of all posts. An empty result is not an
	// error: the absence of any posts at all carries no missing-parent
	// implication.
	ListPosts(ctx context.Context, page, size int) (store.Page[domain.Post], error)

	// ListPostsByCategory retrieves a page of posts in the given category.
	// Zero matching rows yields a not-found error.
	ListPostsByCategory(ctx context.Context, categoryID int64, page, size int) (store.Page[domain.Post], error)

	// ListPostsByUser retrieves a page of posts authored by the given user.
	// Zero matching rows yields a not-found error.
	ListPostsByUser(ctx context.Context, userID int64, page, size int) (store.Page[domain.Post], error)

	// SearchPosts retrieves a page of posts whose title or content contains
	// the keyword as a case-sensitive substring. Zero matching rows yields
	// a not-found error.
	SearchPosts(ctx context.Context, keyword string, page, size int) (store.Page[domain.Post], error)

	// GetPost retrieves a post by its ID.
	GetPost(ctx context.Context, postID int64) (*domain.Post, error)

	// GetPostDetail retrieves a post joined with its category title and
	// author name, the shape consumed by the report renderers.
	GetPostDetail(ctx context.Context, postID int64) (*store.PostDetail, error)

	// CreatePost creates a new post owned by userID in categoryID.
	// A post carrying both the same title and the same content as an
	// existing post yields store.ErrPostExists; an unresolvable category or
	// author yields the corresponding not-found error.
	CreatePost(ctx context.Context, title, content, image string, categoryID, userID int64) (*domain.Post, error)

	// UpdatePost replaces the post's title, content, image and category on
	// behalf of actorID. Only the post's author may update it; no
	// duplicate-pair re-check runs on update.
	UpdatePost(ctx context.Context, postID, actorID int64, title, content, image string, categoryID int64) (*domain.Post, error)

	// DeletePost deletes the post on behalf of actorID. Only the post's
	// author may delete it. Comments on the post are removed by the
	// schema's cascade rules.
	DeletePost(ctx context.Context, postID, actorID int64) error
}

// postServiceImpl implements the PostService interface.
type postServiceImpl struct {
	postStore     store.PostStore
	categoryStore store.CategoryStore
	userStore     store.UserStore
	logger        *slog.Logger
}

// NewPostService creates a new PostService.
func NewPostService(
	postStore store.PostStore,
	categoryStore store.CategoryStore,
	userStore store.UserStore,
	logger *slog.Logger,
) PostService {
	if logger == nil {
		logger = slog.Default()
	}
	return &postServiceImpl{
		postStore:     postStore,
		categoryStore: categoryStore,
		userStore:     userStore,
		logger:        logger.With(slog.String("component", "post_service")),
	}
}

// ListPosts implements PostService.ListPosts
func (s *postServiceImpl) ListPosts(ctx context.Context, page, size int) (store.Page[domain.Post], error) {
	posts, err := s.postStore.List(ctx, page, size)
	if err != nil {
		s.logger.Error("failed to list posts", "error", err)
		return store.Page[domain.Post]{}, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// ListPostsByCategory implements PostService.ListPostsByCategory
func (s *postServiceImpl) ListPostsByCategory(ctx context.Context, categoryID int64, page, size int) (store.Page[domain.Post], error) {
	posts, err := s.postStore.ListByCategory(ctx, categoryID, page, size)
	if err != nil {
		s.logger.Error("failed to list posts by category", "error", err, "category_id", categoryID)
		return store.Page[domain.Post]{}, fmt.Errorf("failed to list posts by category: %w", err)
	}
	if posts.IsEmpty() {
		s.logger.Debug("no posts for category", "category_id", categoryID)
		return store.Page[domain.Post]{}, fmt.Errorf("no posts for category %d: %w", categoryID, store.ErrPostNotFound)
	}
	return posts, nil
}

// ListPostsByUser implements PostService.ListPostsByUser
func (s *postServiceImpl) ListPostsByUser(ctx context.Context, userID int64, page, size int) (store.Page[domain.Post], error) {
	posts, err := s.postStore.ListByUser(ctx, userID, page, size)
	if err != nil {
		s.logger.Error("failed to list posts by user", "error", err, "user_id", userID)
		return store.Page[domain.Post]{}, fmt.Errorf("failed to list posts by user: %w", err)
	}
	if posts.IsEmpty() {
		s.logger.Debug("no posts for user", "user_id", userID)
		return store.Page[domain.Post]{}, fmt.Errorf("no posts for user %d: %w", userID, store.ErrPostNotFound)
	}
	return posts, nil
}

// SearchPosts implements PostService.SearchPosts
func (s *postServiceImpl) SearchPosts(ctx context.Context, keyword string, page, size int) (store.Page[domain.Post], error) {
	posts, err := s.postStore.Search(ctx, keyword, page, size)
	if err != nil {
		s.logger.Error("failed to search posts", "error", err, "keyword", keyword)
		return store.Page[domain.Post]{}, fmt.Errorf("failed to search posts: %w", err)
	}
	if posts.IsEmpty() {
		s.logger.Debug("no posts match keyword", "keyword", keyword)
		return store.Page[domain.Post]{}, fmt.Errorf("no posts match keyword %q: %w", keyword, store.ErrPostNotFound)
	}
	return posts, nil
}

// GetPost implements PostService.GetPost
func (s *postServiceImpl) GetPost(ctx context.Context, postID int64) (*domain.Post, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			s.logger.Debug("post not found", "post_id", postID)
		} else {
			s.logger.Error("failed to retrieve post", "error", err, "post_id", postID)
		}
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	return post, nil
}

// GetPostDetail implements PostService.GetPostDetail
func (s *postServiceImpl) GetPostDetail(ctx context.Context, postID int64) (*store.PostDetail, error) {
	detail, err := s.postStore.GetDetailByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			s.logger.Debug("post not found for detail", "post_id", postID)
		} else {
			s.logger.Error("failed to retrieve post detail", "error", err, "post_id", postID)
		}
		return nil, fmt.Errorf("failed to retrieve post detail: %w", err)
	}
	return detail, nil
}

// CreatePost implements PostService.CreatePost
// The duplicate rule compares the (title, content) pair: a post matching an
// existing title with different content, or vice versa, is allowed.
func (s *postServiceImpl) CreatePost(ctx context.Context, title, content, image string, categoryID, userID int64) (*domain.Post, error) {
	post, err := domain.NewPost(title, content, image, categoryID, userID)
	if err != nil {
		s.logger.Debug("invalid post data", "error", err, "title", title)
		return nil, err
	}

	exists, err := s.postStore.ExistsByTitleAndContent(ctx, title, content)
	if err != nil {
		s.logger.Error("failed to check post existence", "error", err, "title", title)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	if exists {
		s.logger.Debug("attempted to create duplicate post", "title", title)
		return nil, store.ErrPostExists
	}

	if _, err := s.categoryStore.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			s.logger.Debug("post references missing category", "category_id", categoryID)
			return nil, err
		}
		s.logger.Error("failed to resolve category for post", "error", err, "category_id", categoryID)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("post references missing user", "user_id", userID)
			return nil, err
		}
		s.logger.Error("failed to resolve user for post", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		s.logger.Error("failed to save post", "error", err, "title", title)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created successfully",
		"post_id", post.ID, "user_id", userID, "category_id", categoryID)
	return post, nil
}

// UpdatePost implements PostService.UpdatePost
// Ownership is decided before any field is touched; the author recorded on
// the stored row is authoritative and never changes.
func (s *postServiceImpl) UpdatePost(ctx context.Context, postID, actorID int64, title, content, image string, categoryID int64) (*domain.Post, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			s.logger.Debug("post not found for update", "post_id", postID)
		} else {
			s.logger.Error("failed to retrieve post for update", "error", err, "post_id", postID)
		}
		return nil, fmt.Errorf("failed to retrieve post for update: %w", err)
	}

	if err := AuthorizeOwner(actorID, post.UserID); err != nil {
		s.logger.Warn("post update denied",
			"post_id", postID, "actor_id", actorID, "owner_id", post.UserID)
		return nil, err
	}

	if categoryID != 0 && categoryID != post.CategoryID {
		if _, err := s.categoryStore.GetByID(ctx, categoryID); err != nil {
			if errors.Is(err, store.ErrCategoryNotFound) {
				s.logger.Debug("post update references missing category", "category_id", categoryID)
				return nil, err
			}
			s.logger.Error("failed to resolve category for post update", "error", err, "category_id", categoryID)
			return nil, fmt.Errorf("failed to update post: %w", err)
		}
		post.CategoryID = categoryID
	}

	post.Title = title
	post.Content = content
	post.Image = image

	if err := post.Validate(); err != nil {
		s.logger.Debug("invalid post data on update", "error", err, "post_id", postID)
		return nil, err
	}

	if err := s.postStore.Update(ctx, post); err != nil {
		s.logger.Error("failed to update post", "error", err, "post_id", postID)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	s.logger.Info("post updated successfully", "post_id", postID, "actor_id", actorID)
	return post, nil
}

// DeletePost implements PostService.DeletePost
func (s *postServiceImpl) DeletePost(ctx context.Context, postID, actorID int64) error {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			s.logger.Debug("post not found for delete", "post_id", postID)
		} else {
			s.logger.Error("failed to retrieve post for delete", "error", err, "post_id", postID)
		}
		return fmt.Errorf("failed to retrieve post for delete: %w", err)
	}

	if err := AuthorizeOwner(actorID, post.UserID); err != nil {
		s.logger.Warn("post delete denied",
			"post_id", postID, "actor_id", actorID, "owner_id", post.UserID)
		return err
	}

	if err := s.postStore.Delete(ctx, postID); err != nil {
		s.logger.Error("failed to delete post", "error", err, "post_id", postID)
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("post deleted successfully", "post_id", postID, "actor_id", actorID)
	return nil
}
