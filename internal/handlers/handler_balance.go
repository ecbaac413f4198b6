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

// balanceHandler handles HTTP requests related to point balances.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: bs}
}

// registerBalanceRoutes registers routes related to balances.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)

	balances := rg.Group("/balances")
	{
		balances.GET("", h.getBalance)
		balances.GET("/all", h.listBalances)
	}
}

// getBalance godoc
// @Summary Get the caller's balance for one restaurant
// @Description Returns the authenticated user's point balance for a restaurant; zero when the user never earned points there
// @Tags balances
// @Produce  json
// @Param   restaurantID query string true "Restaurant ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Missing restaurantID"
// @Failure 404 {object} map[string]string "Restaurant not found"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Security BearerAuth
// @Router /balances [get]
func (h *balanceHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.BalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for GetBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balance, err := h.balanceService.GetBalance(c.Request.Context(), userID, params.RestaurantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		logger.Error("Failed to get balance from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:       userID,
		RestaurantID: params.RestaurantID,
		Points:       balance,
	})
}

// listBalances godoc
// @Summary List all of the caller's balances
// @Description Returns every restaurant balance the authenticated user holds
// @Tags balances
// @Produce  json
// @Success 200 {object} dto.ListBalancesResponse
// @Failure 500 {object} map[string]string "Failed to list balances"
// @Security BearerAuth
// @Router /balances/all [get]
func (h *balanceHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balances, err := h.balanceService.ListBalances(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list balances from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBalancesResponse(balances))
}
