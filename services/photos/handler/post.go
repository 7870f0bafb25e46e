package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sployal/fine-back-sub000/internal/pkg/logger"
	"github.com/sployal/fine-back-sub000/internal/pkg/middleware"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
	"github.com/sployal/fine-back-sub000/internal/utils"
	"github.com/sployal/fine-back-sub000/services/photos"
)

// PhotoHandler handles HTTP requests for photo-sharing operations
type PhotoHandler struct {
	photoUC photos.PhotoUC
	logger  *logger.ZapLogger
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(photoUC photos.PhotoUC, zapLogger *logger.ZapLogger) *PhotoHandler {
	return &PhotoHandler{
		photoUC: photoUC,
		logger:  zapLogger,
	}
}

// RegisterRoutes registers the photo-sharing routes
func (h *PhotoHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config) {
	auth := middleware.AuthMiddleware(cfg.Auth)

	g := e.Group("/posts", auth)
	g.POST("", h.CreatePost)
	g.GET("", h.ListReceivedPosts)
	g.GET("/:id", h.GetPost)
	g.DELETE("/:id", h.DeletePost)
}

// CreatePost handles photo collection sends
func (h *PhotoHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	post, err := h.photoUC.CreatePost(c.Request().Context(), middleware.UserID(c), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Post created", post)
}

// GetPost handles single post lookups
func (h *PhotoHandler) GetPost(c echo.Context) error {
	post, err := h.photoUC.GetPost(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", post)
}

// ListReceivedPosts handles inbox listing with optional tag filter
func (h *PhotoHandler) ListReceivedPosts(c echo.Context) error {
	filter := models.PostFilter{
		Tag: c.QueryParam("tag"),
	}

	if limit := c.QueryParam("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			return utils.BadRequestResponse(c, "limit must be an integer")
		}
		filter.Limit = parsed
	}
	if offset := c.QueryParam("offset"); offset != "" {
		parsed, err := strconv.Atoi(offset)
		if err != nil {
			return utils.BadRequestResponse(c, "offset must be an integer")
		}
		filter.Offset = parsed
	}

	posts, err := h.photoUC.ListReceivedPosts(c.Request().Context(), middleware.UserID(c), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", posts)
}

// DeletePost handles post deletion by the sender
func (h *PhotoHandler) DeletePost(c echo.Context) error {
	if err := h.photoUC.DeletePost(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Post deleted", nil)
}
