package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	portssvc "github.com/vmaryna/cashdine_backend/internal/core/ports/services"
	"github.com/vmaryna/cashdine_backend/internal/dto"
	"github.com/vmaryna/cashdine_backend/internal/middleware"
)

// transferHandler handles HTTP requests related to point transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
	balanceService  portssvc.BalanceSvcFacade
}

func newTransferHandler(ts portssvc.TransferSvcFacade, bs portssvc.BalanceSvcFacade) *transferHandler {
	return &transferHandler{transferService: ts, balanceService: bs}
}

// registerTransferRoutes registers routes related to transfers.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade, balanceService portssvc.BalanceSvcFacade) {
	h := newTransferHandler(transferService, balanceService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("", h.listTransfers)
		transfers.GET("/:transferID", h.getTransferByID)
	}
}

// createTransfer godoc
// @Summary Transfer points
// @Description Moves points from the caller to another user or back to the restaurant, atomically. Replaying the same requestToken returns the original record with 200.
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse "Committed"
// @Success 200 {object} dto.TransferResponse "Replayed"
// @Failure 400 {object} map[string]string "Invalid amount or self transfer"
// @Failure 404 {object} map[string]string "Unknown restaurant"
// @Failure 409 {object} map[string]string "Request token reused with a different payload"
// @Failure 422 {object} dto.InsufficientBalanceResponse "Insufficient balance"
// @Failure 500 {object} map[string]string "Transfer failed"
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fromUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(
		slog.String("to_id", req.ToID),
		slog.String("restaurant_id", req.RestaurantID))
	logger.Info("Received request to transfer points")

	transfer, replayed, err := h.transferService.Transfer(c.Request.Context(), fromUserID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount):
			middleware.ObserveTransferOutcome("rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Transfer amount must be positive"})
		case errors.Is(err, apperrors.ErrSelfTransfer):
			middleware.ObserveTransferOutcome("rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot transfer points to yourself"})
		case errors.Is(err, apperrors.ErrValidation):
			middleware.ObserveTransferOutcome("rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUnknownRestaurant):
			middleware.ObserveTransferOutcome("rejected")
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown restaurant"})
		case errors.Is(err, apperrors.ErrDuplicateRequest):
			middleware.ObserveTransferOutcome("rejected")
			c.JSON(http.StatusConflict, gin.H{"error": "Request token already used with a different payload"})
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			middleware.ObserveTransferOutcome("insufficient_balance")
			h.respondInsufficientBalance(c, fromUserID, req.RestaurantID)
		default:
			middleware.ObserveTransferOutcome("error")
			logger.Error("Transfer failed in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Transfer failed"})
		}
		return
	}

	if replayed {
		middleware.ObserveTransferOutcome("replayed")
		logger.Info("Transfer replayed", slog.String("transfer_id", transfer.TransferID))
		c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
		return
	}

	middleware.ObserveTransferOutcome("committed")
	logger.Info("Transfer committed", slog.String("transfer_id", transfer.TransferID))
	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}

// respondInsufficientBalance returns 422 with the points actually available so
// the client can show them. The balance read is best effort.
func (h *transferHandler) respondInsufficientBalance(c *gin.Context, userID, restaurantID string) {
	current, err := h.balanceService.GetBalance(c.Request.Context(), userID, restaurantID)
	if err != nil {
		current = decimal.Zero
	}
	c.JSON(http.StatusUnprocessableEntity, dto.InsufficientBalanceResponse{
		Error:          "Insufficient balance",
		CurrentBalance: current,
	})
}

// listTransfers godoc
// @Summary List the caller's transfer history
// @Description Returns transfers where the caller is sender or recipient, newest first
// @Tags transfers
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   offset query int false "Offset"
// @Success 200 {object} dto.ListTransfersResponse
// @Failure 500 {object} map[string]string "Failed to list transfers"
// @Security BearerAuth
// @Router /transfers [get]
func (h *transferHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransfersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransfers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transfers, err := h.transferService.ListTransfers(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to list transfers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transfers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransfersResponse(transfers))
}

// getTransferByID godoc
// @Summary Get a transfer record
// @Description Retrieves one transfer by ID; only the sender or recipient may read it
// @Tags transfers
// @Produce  json
// @Param   transferID path string true "Transfer ID"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} map[string]string "Transfer not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transfer"
// @Security BearerAuth
// @Router /transfers/{transferID} [get]
func (h *transferHandler) getTransferByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transferID := c.Param("transferID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transfer, err := h.transferService.GetTransferByID(c.Request.Context(), transferID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transfer not found"})
			return
		}
		logger.Error("Failed to get transfer from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transfer"})
		return
	}

	// A transfer is visible only to its participants.
	if transfer.FromUserID != userID && transfer.ToID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transfer not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}
