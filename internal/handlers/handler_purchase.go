package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	portssvc "github.com/vmaryna/cashdine_backend/internal/core/ports/services"
	"github.com/vmaryna/cashdine_backend/internal/dto"
	"github.com/vmaryna/cashdine_backend/internal/middleware"
)

// purchaseHandler handles HTTP requests related to purchases and the point
// awards they earn.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps}
}

// registerPurchaseRoutes registers routes related to purchases.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
	}
}

// createPurchase godoc
// @Summary Record a purchase
// @Description Records a purchase at a restaurant and credits the earned points atomically
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown restaurant"
// @Failure 500 {object} map[string]string "Failed to record purchase"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to record purchase", slog.String("restaurant_id", req.RestaurantID))

	purchase, err := h.purchaseService.RecordPurchase(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Purchase total must be positive"})
		case errors.Is(err, apperrors.ErrUnknownRestaurant):
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown restaurant"})
		default:
			logger.Error("Failed to record purchase in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record purchase"})
		}
		return
	}

	logger.Info("Purchase recorded", slog.String("purchase_id", purchase.PurchaseID))
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// listPurchases godoc
// @Summary List the caller's purchase history
// @Description Returns the authenticated user's purchases, newest first
// @Tags purchases
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   offset query int false "Offset"
// @Success 200 {object} dto.ListPurchasesResponse
// @Failure 500 {object} map[string]string "Failed to list purchases"
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPurchasesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListPurchases", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	purchases, err := h.purchaseService.ListPurchases(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to list purchases from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list purchases"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchasesResponse(purchases))
}
