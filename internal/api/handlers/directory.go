package handlers

import (
	"net/http"

	"employee-directory/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the directory listing and the management list
type DirectoryHandler struct {
	directoryService service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
	}
}

// ListEmployees handles GET /employees
// @Summary List employees
// @Description Resolve every slug of the directory index and return one card per employee, in index order.
// @Description Slugs that could not be resolved are skipped and reported under failures.
// @Tags employees
// @Produce json
// @Success 200 {object} service.DirectoryListResponse "Successfully resolved the directory"
// @Router /api/v1/employees [get]
func (h *DirectoryHandler) ListEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, h.directoryService.ListCards(c.Request.Context()))
}

// ListManagementEntries handles GET /manage/employees
// @Summary List employees for management
// @Description Same resolution as the listing, with slug and removal instructions per employee
// @Tags management
// @Produce json
// @Success 200 {object} service.ManagementListResponse "Successfully resolved the directory"
// @Router /api/v1/manage/employees [get]
func (h *DirectoryHandler) ListManagementEntries(c *gin.Context) {
	c.JSON(http.StatusOK, h.directoryService.ListManagementEntries(c.Request.Context()))
}
