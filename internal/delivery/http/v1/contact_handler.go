package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-demandflo-backend/internal/delivery/http/response"
	"go-demandflo-backend/internal/domain"
	"go-demandflo-backend/pkg/apperror"
	"go-demandflo-backend/pkg/validation"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the public contact form endpoint and the
// key-gated admin listing.
func NewContactHandler(public, protected *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{contactUC: contactUC}

	public.POST("/contact", handler.Submit)
	protected.GET("/admin/contact-submissions", handler.ListSubmissions)
}

// Submit godoc
// @Summary      Submit the contact form
// @Description  Persists a lead-capture submission. Public endpoint; optional fields are stored as null when blank.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        submission  body      domain.CreateContactRequest  true  "Contact form data"
// @Success      201         {object}  map[string]string
// @Failure      400         {object}  response.ErrorBody
// @Failure      500         {object}  response.ErrorBody
// @Router       /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req domain.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.Validation("Invalid contact submission", validation.FormatValidationErrors(err)))
		return
	}

	submission, err := h.contactUC.SubmitContact(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{"id": submission.ID.String()})
}

// ListSubmissions godoc
// @Summary      List contact submissions
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}   domain.ContactSubmission
// @Failure      401  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /admin/contact-submissions [get]
func (h *ContactHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.contactUC.ListSubmissions(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if submissions == nil {
		submissions = []domain.ContactSubmission{}
	}
	response.JSON(c, http.StatusOK, submissions)
}
