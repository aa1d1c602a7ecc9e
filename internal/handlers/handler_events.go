package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atithihms/hotel_books_app/internal/apperrors"
	"github.com/atithihms/hotel_books_app/internal/core/domain"
	portssvc "github.com/atithihms/hotel_books_app/internal/core/ports/services"
	"github.com/atithihms/hotel_books_app/internal/dto"
	"github.com/atithihms/hotel_books_app/internal/middleware"
)

// eventHandler accepts business events from the other suite modules
// (bookings, food orders, expense desk, inventory) and posts their
// accounting entries.
type eventHandler struct {
	postingService portssvc.PostingSvcFacade
}

func newEventHandler(postingService portssvc.PostingSvcFacade) *eventHandler {
	return &eventHandler{postingService: postingService}
}

func registerEventRoutes(v1 *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newEventHandler(postingService)
	events := v1.Group("/events")
	{
		events.POST("/checkout", h.postCheckout)
		events.POST("/food-order", h.postFoodOrder)
		events.POST("/expense", h.postExpense)
		events.POST("/purchase", h.postPurchase)
	}
}

// postCheckout godoc
// @Summary Record a guest checkout
// @Description Posts the revenue recognition entry for a checkout. An unbalanced entry is reported as a warning so the checkout itself never fails on an accounting bug.
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CheckoutEventRequest true "Checkout event"
// @Success 200 {object} dto.PostingResult
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Ledger account not configured"
// @Router /events/checkout [post]
func (h *eventHandler) postCheckout(c *gin.Context) {
	var req dto.CheckoutEventRequest
	if !bindEvent(c, &req) {
		return
	}
	h.postEvent(c, req.ToDomain())
}

// postFoodOrder godoc
// @Summary Record a paid food order
// @Description Posts the entry for a tax-inclusive food order total, back-calculating the GST portion
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.FoodOrderEventRequest true "Food order event"
// @Success 200 {object} dto.PostingResult
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Ledger account not configured"
// @Router /events/food-order [post]
func (h *eventHandler) postFoodOrder(c *gin.Context) {
	var req dto.FoodOrderEventRequest
	if !bindEvent(c, &req) {
		return
	}
	h.postEvent(c, req.ToDomain())
}

// postExpense godoc
// @Summary Record an expense
// @Description Posts the expense entry including any reverse-charge liability and input tax credit, and stores the source row for the GST registers
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.ExpenseEventRequest true "Expense event"
// @Success 200 {object} dto.PostingResult
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Ledger account not configured"
// @Router /events/expense [post]
func (h *eventHandler) postExpense(c *gin.Context) {
	var req dto.ExpenseEventRequest
	if !bindEvent(c, &req) {
		return
	}
	h.postEvent(c, req.ToDomain())
}

// postPurchase godoc
// @Summary Record a purchase receipt
// @Description Posts the inventory entry for received stock, honouring the vendor's reverse-charge flag
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.PurchaseEventRequest true "Purchase event"
// @Success 200 {object} dto.PostingResult
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Ledger account not configured"
// @Router /events/purchase [post]
func (h *eventHandler) postPurchase(c *gin.Context) {
	var req dto.PurchaseEventRequest
	if !bindEvent(c, &req) {
		return
	}
	h.postEvent(c, req.ToDomain())
}

func bindEvent(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind event payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return false
	}
	if _, ok := middleware.GetCallerFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return false
	}
	return true
}

// postEvent translates and posts the event, mapping failures per the posting
// policy: an unbalanced entry must not fail the originating business action,
// so it comes back 200 with posted=false and a warning while the failure is
// logged at error level for the accountant to chase. A missing ledger
// account is a configuration fault and stays a hard 500.
func (h *eventHandler) postEvent(c *gin.Context, event domain.SourceEvent) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, _ := middleware.GetCallerFromContext(c)
	sourceType, sourceID := event.SourceRef()

	journal, err := h.postingService.PostEvent(c.Request.Context(), event, caller)
	if err != nil {
		var unknownAccount *apperrors.UnknownAccountError
		switch {
		case errors.As(err, &unknownAccount):
			logger.Error("Event references an unconfigured ledger account",
				slog.String("account", unknownAccount.AccountName),
				slog.String("source_type", string(sourceType)),
				slog.String("source_id", sourceID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Ledger account not configured: %s", unknownAccount.AccountName)})
		case errors.Is(err, apperrors.ErrUnbalanced):
			logger.Error("Unbalanced entry for business event, nothing posted",
				slog.String("error", err.Error()),
				slog.String("source_type", string(sourceType)),
				slog.String("source_id", sourceID))
			c.JSON(http.StatusOK, dto.PostingResult{
				Posted:  false,
				Warning: "Accounting entry could not be posted: " + err.Error(),
			})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid business event", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to post event", slog.String("error", err.Error()),
				slog.String("source_type", string(sourceType)),
				slog.String("source_id", sourceID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post accounting entry"})
		}
		return
	}

	resp := dto.ToJournalResponse(journal)
	c.JSON(http.StatusOK, dto.PostingResult{Posted: true, Journal: &resp})
}
