package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmaryna/cashdine_backend/internal/apperrors"
	"github.com/vmaryna/cashdine_backend/internal/core/domain"
	portssvc "github.com/vmaryna/cashdine_backend/internal/core/ports/services"
	"github.com/vmaryna/cashdine_backend/internal/dto"
	"github.com/vmaryna/cashdine_backend/internal/middleware"
)

// restaurantHandler handles HTTP requests related to the restaurant catalog
// and ranked listings.
type restaurantHandler struct {
	restaurantService portssvc.RestaurantSvcFacade
	rankingService    portssvc.RankingSvcFacade
}

func newRestaurantHandler(rs portssvc.RestaurantSvcFacade, rank portssvc.RankingSvcFacade) *restaurantHandler {
	return &restaurantHandler{restaurantService: rs, rankingService: rank}
}

// registerRestaurantRoutes registers routes related to the catalog.
func registerRestaurantRoutes(rg *gin.RouterGroup, restaurantService portssvc.RestaurantSvcFacade, rankingService portssvc.RankingSvcFacade) {
	h := newRestaurantHandler(restaurantService, rankingService)

	restaurants := rg.Group("/restaurants")
	{
		restaurants.POST("", h.createRestaurant)
		restaurants.GET("", h.listRestaurants)
		restaurants.GET("/rank", h.rankRestaurants)
		restaurants.GET("/:restaurantID", h.getRestaurantByID)
	}
}

// createRestaurant godoc
// @Summary Create a restaurant
// @Description Adds a new catalog entry with an optional location and image
// @Tags restaurants
// @Accept  json
// @Produce  json
// @Param   restaurant body dto.CreateRestaurantRequest true "Restaurant details"
// @Success 201 {object} dto.RestaurantResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create restaurant"
// @Security BearerAuth
// @Router /restaurants [post]
func (h *restaurantHandler) createRestaurant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRestaurant", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create restaurant", slog.String("name", req.Name))

	restaurant, err := h.restaurantService.CreateRestaurant(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create restaurant in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToRestaurantResponse(restaurant))
}

// listRestaurants godoc
// @Summary List all restaurants
// @Description Returns the full catalog ordered by name
// @Tags restaurants
// @Produce  json
// @Success 200 {object} dto.ListRestaurantsResponse
// @Failure 500 {object} map[string]string "Failed to list restaurants"
// @Security BearerAuth
// @Router /restaurants [get]
func (h *restaurantHandler) listRestaurants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	restaurants, err := h.restaurantService.ListRestaurants(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list restaurants from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list restaurants"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRestaurantsResponse(restaurants))
}

// getRestaurantByID godoc
// @Summary Get a restaurant
// @Description Retrieves one catalog entry by ID
// @Tags restaurants
// @Produce  json
// @Param   restaurantID path string true "Restaurant ID"
// @Success 200 {object} dto.RestaurantResponse
// @Failure 404 {object} map[string]string "Restaurant not found"
// @Failure 500 {object} map[string]string "Failed to retrieve restaurant"
// @Security BearerAuth
// @Router /restaurants/{restaurantID} [get]
func (h *restaurantHandler) getRestaurantByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	restaurantID := c.Param("restaurantID")

	restaurant, err := h.restaurantService.GetRestaurantByID(c.Request.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		logger.Error("Failed to get restaurant from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve restaurant"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRestaurantResponse(restaurant))
}

// rankRestaurants godoc
// @Summary Ranked restaurant listing
// @Description Lists restaurants sorted by ALPHABETICAL, DISTANCE or POINTS, annotated with the caller's balance. DISTANCE requires lat and lon.
// @Tags restaurants
// @Produce  json
// @Param   criterion query string false "ALPHABETICAL (default), DISTANCE or POINTS"
// @Param   lat query number false "Caller latitude"
// @Param   lon query number false "Caller longitude"
// @Success 200 {object} dto.RankResponse
// @Failure 400 {object} map[string]string "Invalid criterion or coordinates"
// @Failure 422 {object} map[string]string "DISTANCE requested without a location"
// @Failure 500 {object} map[string]string "Failed to rank restaurants"
// @Security BearerAuth
// @Router /restaurants/rank [get]
func (h *restaurantHandler) rankRestaurants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.RankParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for RankRestaurants", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var location *domain.Coordinate
	if params.Lat != nil && params.Lon != nil {
		location = &domain.Coordinate{Latitude: *params.Lat, Longitude: *params.Lon}
	}

	ranked, err := h.rankingService.Rank(c.Request.Context(), userID, params.Criterion, location)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLocationUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Distance ranking requires lat and lon"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to rank restaurants in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank restaurants"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRankResponse(params.Criterion, ranked))
}
