package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-demandflo-backend/internal/delivery/http/response"
	"go-demandflo-backend/internal/domain"
	"go-demandflo-backend/pkg/apperror"
	"go-demandflo-backend/pkg/validation"
)

type BlogHandler struct {
	blogUC domain.BlogUsecase
}

// NewBlogHandler registers the public blog reads and the key-gated admin
// mutations. Create lives on the gated group even though its path is under
// /blog: it is a mutation and the admin key applies.
func NewBlogHandler(public, protected *gin.RouterGroup, blogUC domain.BlogUsecase) {
	handler := &BlogHandler{blogUC: blogUC}

	public.GET("/blog/posts", handler.ListPublished)
	public.GET("/blog/posts/:slug", handler.GetBySlug)

	protected.POST("/blog/posts", handler.Create)
	protected.GET("/admin/blog/posts", handler.ListAll)
	protected.PUT("/admin/blog/posts/:id", handler.Update)
	protected.DELETE("/admin/blog/posts/:id", handler.Delete)
}

// ListPublished godoc
// @Summary      List published blog posts
// @Description  Returns all published posts, newest first. Drafts are never included.
// @Tags         blog
// @Produce      json
// @Success      200  {array}   domain.BlogPost
// @Failure      500  {object}  response.ErrorBody
// @Router       /blog/posts [get]
func (h *BlogHandler) ListPublished(c *gin.Context) {
	posts, err := h.blogUC.ListPublished(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if posts == nil {
		posts = []domain.BlogPost{}
	}
	response.JSON(c, http.StatusOK, posts)
}

// GetBySlug godoc
// @Summary      Get a published blog post by slug
// @Description  Exact, case-sensitive slug match. Unpublished posts read as 404.
// @Tags         blog
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  domain.BlogPost
// @Failure      404   {object}  response.ErrorBody
// @Failure      500   {object}  response.ErrorBody
// @Router       /blog/posts/{slug} [get]
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.blogUC.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, post)
}

// Create godoc
// @Summary      Create a blog post
// @Description  Creates a post. Published defaults to false when omitted.
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        post  body      domain.CreateBlogPostRequest  true  "Post fields"
// @Success      201   {object}  domain.BlogPost
// @Failure      400   {object}  response.ErrorBody
// @Failure      401   {object}  response.ErrorBody
// @Failure      409   {object}  response.ErrorBody
// @Router       /blog/posts [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req domain.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.Validation("Invalid blog post", validation.FormatValidationErrors(err)))
		return
	}

	post, err := h.blogUC.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, post)
}

// ListAll godoc
// @Summary      List all blog posts including drafts
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}   domain.BlogPost
// @Failure      401  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /admin/blog/posts [get]
func (h *BlogHandler) ListAll(c *gin.Context) {
	posts, err := h.blogUC.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if posts == nil {
		posts = []domain.BlogPost{}
	}
	response.JSON(c, http.StatusOK, posts)
}

// Update godoc
// @Summary      Update a blog post
// @Description  Partial update; only supplied fields change. ID and createdAt are immutable.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path      string                        true  "Post ID"
// @Param        post  body      domain.UpdateBlogPostRequest  true  "Fields to change"
// @Success      200   {object}  domain.BlogPost
// @Failure      400   {object}  response.ErrorBody
// @Failure      404   {object}  response.ErrorBody
// @Failure      409   {object}  response.ErrorBody
// @Router       /admin/blog/posts/{id} [put]
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(apperror.BadRequest("Invalid post ID"))
		return
	}

	var req domain.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.Validation("Invalid blog post", validation.FormatValidationErrors(err)))
		return
	}

	post, err := h.blogUC.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, post)
}

// Delete godoc
// @Summary      Delete a blog post
// @Description  Hard delete. Deleting a missing post returns 404, not an error body change.
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id  path      string  true  "Post ID"
// @Success      200 {object}  map[string]bool
// @Failure      404 {object}  response.ErrorBody
// @Router       /admin/blog/posts/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(apperror.BadRequest("Invalid post ID"))
		return
	}

	if err := h.blogUC.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"deleted": true})
}
