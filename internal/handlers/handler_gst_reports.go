package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/atithihms/hotel_books_app/internal/core/ports/services"
	"github.com/atithihms/hotel_books_app/internal/dto"
	"github.com/atithihms/hotel_books_app/internal/middleware"
)

// gstHandler serves the GST registers and summaries.
type gstHandler struct {
	reportService portssvc.GSTReportSvcFacade
}

func newGSTHandler(reportService portssvc.GSTReportSvcFacade) *gstHandler {
	return &gstHandler{reportService: reportService}
}

func registerGSTRoutes(
	v1 *gin.RouterGroup,
	reportService portssvc.GSTReportSvcFacade,
	reconciliationService portssvc.ReconciliationSvcFacade,
	reportLimiter *limiter.Limiter,
) {
	h := newGSTHandler(reportService)
	rh := newReconciliationHandler(reconciliationService)

	// The register reads scan whole source tables; throttle them.
	gst := v1.Group("/gst", middleware.RateLimit(reportLimiter))
	{
		gst.GET("/rcm-register", h.getRCMRegister)
		gst.GET("/rcm-register/export", h.exportRCMRegister)
		gst.GET("/itc-register", h.getITCRegister)
		gst.GET("/master-summary", h.getMasterSummary)
		gst.POST("/gstr2b-reconcile", rh.reconcile)
	}
}

// getRCMRegister godoc
// @Summary Get the reverse-charge register
// @Description Lists RCM-liable expenses and purchases for a period with self-invoice numbers and a summary
// @Tags gst
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.RCMRegisterResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Router /gst/rcm-register [get]
func (h *gstHandler) getRCMRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parsePeriodParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, records, err := h.reportService.GetRCMRegister(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to build RCM register", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build RCM register"})
		return
	}

	c.JSON(http.StatusOK, dto.RCMRegisterResponse{
		Period:  periodOf(from, to),
		Summary: dto.ToRCMSummaryResponse(summary),
		Data:    records,
	})
}

// exportRCMRegister godoc
// @Summary Download the reverse-charge register as xlsx
// @Tags gst
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid date range"
// @Router /gst/rcm-register/export [get]
func (h *gstHandler) exportRCMRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parsePeriodParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.reportService.ExportRCMRegisterXLSX(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to export RCM register", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export RCM register"})
		return
	}

	filename := fmt.Sprintf("rcm-register-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// getITCRegister godoc
// @Summary Get the input-tax-credit register
// @Description Lists ITC-eligible inward supplies for a period, flagging credits claimed via reverse charge
// @Tags gst
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ITCRegisterResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Router /gst/itc-register [get]
func (h *gstHandler) getITCRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parsePeriodParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, records, err := h.reportService.GetITCRegister(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to build ITC register", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build ITC register"})
		return
	}

	c.JSON(http.StatusOK, dto.ITCRegisterResponse{
		Period:  periodOf(from, to),
		Summary: dto.ToRCMSummaryResponse(summary),
		Data:    records,
	})
}

// getMasterSummary godoc
// @Summary Get the period GST position
// @Description Derives output tax, available ITC, RCM liability and net payable from posted ledger lines
// @Tags gst
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.MasterSummaryResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Router /gst/master-summary [get]
func (h *gstHandler) getMasterSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parsePeriodParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.reportService.GetMasterSummary(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to build master summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build master summary"})
		return
	}

	c.JSON(http.StatusOK, dto.MasterSummaryResponse{
		Period:  periodOf(from, to),
		Summary: *summary,
	})
}

func periodOf(from, to *time.Time) dto.ReportPeriod {
	p := dto.ReportPeriod{}
	if from != nil {
		p.StartDate = from.Format("2006-01-02")
	}
	if to != nil {
		p.EndDate = to.Format("2006-01-02")
	}
	return p
}
