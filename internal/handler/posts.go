package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Okelahbegitu/fesnuk-api/internal/middleware"
	"github.com/Okelahbegitu/fesnuk-api/internal/repository"
)

type PostHandler interface {
	ListPosts(c *gin.Context)
	GetPostForEdit(c *gin.Context)
	CreatePost(c *gin.Context)
	UpdatePost(c *gin.Context)
	DeletePost(c *gin.Context)
}

type postHandler struct {
	postRepo repository.PostRepository
	logger   *zap.Logger
}

func NewPostHandler(postRepo repository.PostRepository, logger *zap.Logger) PostHandler {
	return &postHandler{postRepo: postRepo, logger: logger}
}

type PostRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// callerID returns the account id the auth middleware stored after verifying
// the token. The id in the URL or body is never consulted.
func callerID(c *gin.Context) int64 {
	return c.MustGet(middleware.ContextAccountID).(int64)
}

// ListPosts handles GET /home
func (h *postHandler) ListPosts(c *gin.Context) {
	posts, err := h.postRepo.GetPostsByAccount(c.Request.Context(), callerID(c))
	if err != nil {
		h.logger.Error("Failed to list posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	// An account with no posts gets an empty array, not a 404.
	c.JSON(http.StatusOK, gin.H{"content": posts})
}

// GetPostForEdit handles GET /edit/:id_post
func (h *postHandler) GetPostForEdit(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id_post"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	post, err := h.postRepo.GetPostByID(c.Request.Context(), postID, callerID(c))
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to get post", zap.Int64("post_id", postID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": post})
}

// CreatePost handles POST /add
func (h *postHandler) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and body are required"})
		return
	}

	post, err := h.postRepo.CreatePost(c.Request.Context(), callerID(c), req.Title, req.Body)
	if err != nil {
		h.logger.Error("Failed to create post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created",
		"content": post,
	})
}

// UpdatePost handles PUT /edit/:id_post
func (h *postHandler) UpdatePost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id_post"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and body are required"})
		return
	}

	if err := h.postRepo.UpdatePost(c.Request.Context(), postID, callerID(c), req.Title, req.Body); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to update post", zap.Int64("post_id", postID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post updated"})
}

// DeletePost handles DELETE /delete/:id_post
func (h *postHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id_post"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := h.postRepo.DeletePost(c.Request.Context(), postID, callerID(c)); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to delete post", zap.Int64("post_id", postID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
