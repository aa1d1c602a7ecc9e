package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atithihms/hotel_books_app/internal/apperrors"
	portssvc "github.com/atithihms/hotel_books_app/internal/core/ports/services"
	"github.com/atithihms/hotel_books_app/internal/dto"
	"github.com/atithihms/hotel_books_app/internal/middleware"
)

// vendorHandler handles HTTP requests for supplier registration.
type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func newVendorHandler(vendorService portssvc.VendorSvcFacade) *vendorHandler {
	return &vendorHandler{vendorService: vendorService}
}

func registerVendorRoutes(v1 *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := newVendorHandler(vendorService)
	vendors := v1.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("/:vendorID", h.getVendor)
	}
}

// createVendor godoc
// @Summary Register a vendor
// @Description Registers a supplier; the RCM flag drives reverse-charge handling for its purchases
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} domain.Vendor
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createVendor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	caller, ok := middleware.GetCallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req, caller)
	if err != nil {
		logger.Error("Failed to create vendor", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

// getVendor godoc
// @Summary Get a vendor
// @Tags vendors
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Success 200 {object} domain.Vendor
// @Failure 404 {object} map[string]string "Vendor not found"
// @Router /vendors/{vendorID} [get]
func (h *vendorHandler) getVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("vendorID")

	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), vendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
			return
		}
		logger.Error("Failed to get vendor", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vendor"})
		return
	}

	c.JSON(http.StatusOK, vendor)
}
