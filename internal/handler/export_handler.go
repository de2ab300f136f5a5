package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"agendados/internal/domain"
	"agendados/internal/service"
)

// ExportHandler handles spreadsheet export endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Download handles GET /api/v1/exports/:format
// @Summary Download all clients as a spreadsheet
// @Tags exports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format path string true "csv or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponseBody "Unknown format"
// @Security BearerAuth
// @Router /exports/{format} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	agentID, ok := extractAgentID(c)
	if !ok {
		return
	}

	format := domain.ExportFormat(c.Param("format"))
	if format != domain.ExportCSV && format != domain.ExportXLSX {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}

	file, err := h.exportService.Export(c.Request.Context(), agentID, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// Archive handles POST /api/v1/exports/archive
// @Summary Upload an xlsx export and get a temporary link
// @Tags exports
// @Produce json
// @Success 200 {object} Response{data=service.ArchiveResult}
// @Failure 500 {object} ErrorResponseBody "Export failed"
// @Security BearerAuth
// @Router /exports/archive [post]
func (h *ExportHandler) Archive(c *gin.Context) {
	agentID, ok := extractAgentID(c)
	if !ok {
		return
	}

	res, err := h.exportService.Archive(c.Request.Context(), agentID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}
