package handlers

import (
	"errors"
	"net/http"

	"employee-directory/internal/archive"
	apperrors "employee-directory/internal/errors"
	"employee-directory/internal/logger"
	"employee-directory/internal/service"

	"github.com/gin-gonic/gin"
)

// Multipart field names of the employee card form
const (
	HeadshotField = "headshot"
	MediaField    = "media"
)

// EmployeeCardHandler packages new employees submitted through the form
type EmployeeCardHandler struct {
	cardService    service.EmployeeCardServiceInterface
	maxUploadBytes int64
}

// NewEmployeeCardHandler creates a new employee card handler
func NewEmployeeCardHandler(cardService service.EmployeeCardServiceInterface, maxUploadBytes int64) *EmployeeCardHandler {
	return &EmployeeCardHandler{
		cardService:    cardService,
		maxUploadBytes: maxUploadBytes,
	}
}

// ValidationErrorResponse names the form field that was rejected
type ValidationErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// CreateEmployeeCard handles POST /employee-cards
// @Summary Package a new employee
// @Description Validate the form and return a zip holding data.json, contact.vcf, the headshot and all media
// @Tags employee-cards
// @Accept multipart/form-data
// @Produce application/zip
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param title formData string true "Job title"
// @Param department formData string true "Department"
// @Param email formData string true "Email"
// @Param phone formData string false "Phone"
// @Param linkedin formData string false "LinkedIn address"
// @Param bioHtml formData string false "Bio markup"
// @Param headshot formData file true "Headshot image"
// @Param media formData file false "Additional media, repeatable"
// @Success 200 {file} file "Employee card archive"
// @Failure 400 {object} ValidationErrorResponse "Invalid form"
// @Failure 500 {object} ErrorResponse "Packaging failed"
// @Router /api/v1/employee-cards [post]
func (h *EmployeeCardHandler) CreateEmployeeCard(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	var req service.CreateEmployeeCardRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Invalid form: " + err.Error()})
		return
	}

	var headshot *service.Upload
	var media []service.Upload
	if form, err := c.MultipartForm(); err == nil {
		if files := form.File[HeadshotField]; len(files) > 0 {
			headshot = &service.Upload{Filename: files[0].Filename, Blob: archive.FormFileBlob{Header: files[0]}}
		}
		for _, fh := range form.File[MediaField] {
			media = append(media, service.Upload{Filename: fh.Filename, Blob: archive.FormFileBlob{Header: fh}})
		}
	}

	card, err := h.cardService.BuildEmployeeCard(&req, headshot, media)
	if err != nil {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: validationErr.Error(), Field: validationErr.Field})
			return
		}

		logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to create employee card")
		if apperrors.IsPackaging(err) {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to package employee card: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.Header("Content-Disposition", attachment(card.Filename))
	c.Data(http.StatusOK, "application/zip", card.Content)
}
