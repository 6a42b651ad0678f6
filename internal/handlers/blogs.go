package handlers

import (
	"net/http"

	"bloglist/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for creating a blog. Likes is a pointer so an omitted value
// can default to zero.
type createBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

// Request DTO for merge-updating a blog; absent fields stay unchanged.
type updateBlogRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes"`
}

// @Summary      List blogs
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  models.Blog
// @Router       /api/blogs [get]
func (h *Handler) listBlogs(c *gin.Context) {
	blogs, err := h.services.Blogs.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// @Summary      Create blog
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        body  body  createBlogRequest  true  "Blog payload"
// @Success      201  {object}  models.Blog
// @Failure      400  {object}  map[string]string
// @Router       /api/blogs [post]
func (h *Handler) createBlog(c *gin.Context) {
	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blog, err := h.services.Blogs.Create(c.Request.Context(), service.CreateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

// @Summary      Get blog by id
// @Tags         blogs
// @Produce      json
// @Param        id   path  string  true  "Blog id"
// @Success      200  {object}  models.Blog
// @Failure      400  {object}  map[string]string
// @Failure      404
// @Router       /api/blogs/{id} [get]
func (h *Handler) getBlog(c *gin.Context) {
	blog, err := h.services.Blogs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// @Summary      Update blog
// @Description  Merges the supplied fields into the existing entry.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Blog id"
// @Param        body  body  updateBlogRequest  true  "Partial payload"
// @Success      200  {object}  models.Blog
// @Failure      400  {object}  map[string]string
// @Router       /api/blogs/{id} [put]
func (h *Handler) updateBlog(c *gin.Context) {
	var req updateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blog, err := h.services.Blogs.Update(c.Request.Context(), c.Param("id"), service.UpdateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// @Summary      Delete blog
// @Description  Idempotent: deleting an already-deleted id still succeeds.
// @Tags         blogs
// @Param        id  path  string  true  "Blog id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /api/blogs/{id} [delete]
func (h *Handler) deleteBlog(c *gin.Context) {
	if err := h.services.Blogs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Catalog stats
// @Tags         blogs
// @Produce      json
// @Success      200  {object}  service.BlogStats
// @Router       /api/blogs/stats [get]
func (h *Handler) blogStats(c *gin.Context) {
	stats, err := h.services.Blogs.Stats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
