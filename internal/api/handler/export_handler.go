package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/dto"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/service"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Export 导出数据集
// GET /api/v1/export/:dataset?format=csv|xlsx
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "format 只能为 csv 或 xlsx")
		return
	}

	file, err := h.exportSvc.Export(c.Request.Context(), c.Param("dataset"), req.Format)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body.Bytes())
}

// ExportCalendar 导出排班日历
// GET /api/v1/export/calendar.ics
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	file, err := h.exportSvc.ExportCalendar(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body.Bytes())
}
