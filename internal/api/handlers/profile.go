package handlers

import (
	"fmt"
	"net/http"
	"strings"

	apperrors "employee-directory/internal/errors"
	"employee-directory/internal/models"
	"employee-directory/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves single profiles and their downloads
type ProfileHandler struct {
	profileService service.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile handles GET /profile?id=<slug>
// @Summary Get an employee profile
// @Description Look up one employee by slug. The directory index is not consulted.
// @Tags profile
// @Produce json
// @Param id query string true "Employee slug"
// @Success 200 {object} service.ProfileState "Profile found"
// @Failure 400 {object} service.ProfileState "No employee specified"
// @Failure 404 {object} service.ProfileState "Employee not found"
// @Failure 502 {object} service.ProfileState "Record malformed or unavailable"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	slug := strings.TrimSpace(c.Query(models.ProfileQueryKey))

	state := h.profileService.GetProfile(c.Request.Context(), slug)

	c.JSON(profileStatusCode(state.Status), state)
}

func profileStatusCode(status service.ProfileStatus) int {
	switch status {
	case service.ProfileOK:
		return http.StatusOK
	case service.ProfileMissingParameter:
		return http.StatusBadRequest
	case service.ProfileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// GetContactCard handles GET /employees/:slug/contact.vcf
// @Summary Download a contact card
// @Tags profile
// @Produce text/vcard
// @Param slug path string true "Employee slug"
// @Success 200 {file} file "vCard 3.0"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 502 {object} ErrorResponse "Record malformed or unavailable"
// @Router /api/v1/employees/{slug}/contact.vcf [get]
func (h *ProfileHandler) GetContactCard(c *gin.Context) {
	slug := c.Param("slug")

	card, err := h.profileService.GetContactCard(c.Request.Context(), slug)
	if err != nil {
		c.JSON(lookupStatusCode(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", attachment(card.Filename))
	c.Data(http.StatusOK, "text/vcard; charset=utf-8", card.Content)
}

// GetQRCode handles GET /employees/:slug/qrcode
// @Summary Scannable code of the profile address
// @Tags profile
// @Produce image/png
// @Param slug path string true "Employee slug"
// @Param size query string false "small or large" default(small)
// @Success 200 {file} file "PNG image"
// @Failure 400 {object} ErrorResponse "Invalid size"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 502 {object} ErrorResponse "Record malformed or unavailable"
// @Router /api/v1/employees/{slug}/qrcode [get]
func (h *ProfileHandler) GetQRCode(c *gin.Context) {
	png, err := h.profileService.GetQRCode(c.Request.Context(), c.Param("slug"), c.Query("size"))
	if err != nil {
		c.JSON(lookupStatusCode(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// lookupStatusCode maps service errors onto HTTP statuses
func lookupStatusCode(err error) int {
	switch {
	case apperrors.IsMissingParameter(err), apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsLookup(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func attachment(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}
