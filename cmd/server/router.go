package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/devpost/blog-api/internal/api"
	apiMiddleware "github.com/devpost/blog-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Registration and login stay public; everything else under
// /api runs behind the credential gate.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	userHandler := api.NewUserHandler(app.userService)
	categoryHandler := api.NewCategoryHandler(app.categoryService)
	postHandler := api.NewPostHandler(app.postService)
	commentHandler := api.NewCommentHandler(app.commentService)
	downloadHandler := api.NewDownloadHandler(app.postService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(
		app.authenticator,
		app.config.Auth.BypassPrefixes,
	)

	r.Route("/api", func(r chi.Router) {
		// Account endpoints (public)
		r.Post("/users/register", userHandler.Register)
		r.Post("/users/login", userHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// User endpoints
			r.Get("/users", userHandler.ListUsers)
			r.Get("/users/{userID}", userHandler.GetUser)
			r.Put("/users/{userID}", userHandler.UpdateUser)
			r.Delete("/users/{userID}", userHandler.DeleteUser)
			r.Get("/users/{userID}/posts", postHandler.ListPostsByUser)

			// Category endpoints
			r.Get("/categories", categoryHandler.ListCategories)
			r.Post("/categories", categoryHandler.CreateCategory)
			r.Get("/categories/{categoryID}", categoryHandler.GetCategory)
			r.Put("/categories/{categoryID}", categoryHandler.UpdateCategory)
			r.Delete("/categories/{categoryID}", categoryHandler.DeleteCategory)
			r.Get("/categories/{categoryID}/posts", postHandler.ListPostsByCategory)

			// Post endpoints
			r.Get("/posts", postHandler.ListPosts)
			r.Post("/posts", postHandler.CreatePost)
			r.Get("/posts/search", postHandler.SearchPosts)
			r.Get("/posts/{postID}", postHandler.GetPost)
			r.Put("/posts/{postID}", postHandler.UpdatePost)
			r.Delete("/posts/{postID}", postHandler.DeletePost)

			// Comment endpoints
			r.Get("/posts/{postID}/comments", commentHandler.ListCommentsByPost)
			r.Post("/posts/{postID}/comments", commentHandler.CreateComment)
			r.Get("/comments/{commentID}", commentHandler.GetComment)
			r.Put("/comments/{commentID}", commentHandler.UpdateComment)
			r.Delete("/comments/{commentID}", commentHandler.DeleteComment)

			// Report download endpoints
			r.Get("/posts/{postID}/download/pdf", downloadHandler.DownloadPDF)
			r.Get("/posts/{postID}/download/excel", downloadHandler.DownloadExcel)
			r.Get("/posts/{postID}/download/csv", downloadHandler.DownloadCSV)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
