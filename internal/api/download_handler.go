package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/devpost/blog-api/internal/report"
	"github.com/devpost/blog-api/internal/service"
	"github.com/devpost/blog-api/internal/store"
)

// DownloadHandler renders a single post into downloadable document formats.
type DownloadHandler struct {
	postService service.PostService
}

// NewDownloadHandler creates a new DownloadHandler
func NewDownloadHandler(postService service.PostService) *DownloadHandler {
	return &DownloadHandler{
		postService: postService,
	}
}

// DownloadPDF handles GET /api/posts/{postID}/download/pdf requests
func (h *DownloadHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, "application/pdf", "pdf", report.RenderPDF)
}

// DownloadExcel handles GET /api/posts/{postID}/download/excel requests
func (h *DownloadHandler) DownloadExcel(w http.ResponseWriter, r *http.Request) {
	h.download(w, r,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"xlsx", report.RenderExcel)
}

// DownloadCSV handles GET /api/posts/{postID}/download/csv requests
func (h *DownloadHandler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, "text/csv", "csv", report.RenderCSV)
}

// download resolves the post detail and streams the rendered document with
// attachment headers. The renderer decides the body format; this method
// owns only the HTTP concerns.
func (h *DownloadHandler) download(
	w http.ResponseWriter,
	r *http.Request,
	contentType, extension string,
	render func(*store.PostDetail, io.Writer) error,
) {
	postID, err := getPathID(r, "postID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	detail, err := h.postService.GetPostDetail(r.Context(), postID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve post for download")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=post_%d.%s", postID, extension))

	if err := render(detail, w); err != nil {
		// Headers are already out; the truncated body is all we can signal.
		slog.Error("failed to render post download",
			"error", err, "post_id", postID, "format", extension)
	}
}
