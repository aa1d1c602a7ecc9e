package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/atithihms/hotel_books_app/internal/core/ports/services"
	"github.com/atithihms/hotel_books_app/internal/dto"
	"github.com/atithihms/hotel_books_app/internal/middleware"
	"github.com/atithihms/hotel_books_app/internal/utils/gstr2b"
)

// reconciliationHandler runs GSTR-2B reconciliation over uploaded invoice data.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(reconciliationService portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: reconciliationService}
}

// reconcile godoc
// @Summary Reconcile the books against a GSTR-2B statement
// @Description Accepts either a JSON invoice list or a multipart upload of the portal's xlsx workbook (form field "file"), and partitions every record into matched, mismatched, missing-in-books or missing-in-external. Malformed rows are rejected individually with a reason.
// @Tags gst
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param body body dto.ReconcileRequest false "Invoice rows (JSON variant)"
// @Param file formData file false "GSTR-2B xlsx workbook (multipart variant)"
// @Success 200 {object} dto.ReconciliationResult
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /gst/gstr2b-reconcile [post]
func (h *reconciliationHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, ok := h.readRows(c)
	if !ok {
		return
	}

	result, err := h.reconciliationService.Reconcile(c.Request.Context(), rows)
	if err != nil {
		logger.Error("Reconciliation run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Reconciliation run failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// readRows extracts invoice rows from either upload variant. On failure it
// writes the error response and returns ok=false.
func (h *reconciliationHandler) readRows(c *gin.Context) ([]dto.ExternalInvoiceRequest, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing workbook upload in form field 'file'"})
			return nil, false
		}
		file, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open uploaded workbook", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
			return nil, false
		}
		defer file.Close()

		rows, err := gstr2b.Parse(file)
		if err != nil {
			logger.Warn("Failed to parse uploaded workbook", slog.String("error", err.Error()), slog.String("filename", fileHeader.Filename))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is not a readable xlsx workbook"})
			return nil, false
		}
		return rows, true
	}

	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for reconcile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return nil, false
	}
	return req.Invoices, true
}
