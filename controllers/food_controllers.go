package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/repositories"
	"github.com/yeremiapane/restaurant-api/services"
	"github.com/yeremiapane/restaurant-api/utils"
	"gorm.io/gorm"
)

type FoodController struct {
	DB *gorm.DB
}

func NewFoodController(db *gorm.DB) *FoodController {
	return &FoodController{DB: db}
}

func (fc *FoodController) service() services.FoodServiceInterface {
	return services.NewFoodService(repositories.NewUnitOfWork(fc.DB))
}

func (fc *FoodController) GetFoods(c *gin.Context) {
	resp, err := fc.service().GetFoods(c.Request.Context())
	respond(c, "GetFoods", resp, err)
}

func (fc *FoodController) CreateFood(c *gin.Context) {
	var req dtos.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resp, err := fc.service().CreateFood(c.Request.Context(), req)
	respond(c, "CreateFood", resp, err)
}

func (fc *FoodController) UpdateFood(c *gin.Context) {
	var req dtos.UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resp, err := fc.service().UpdateFood(c.Request.Context(), req)
	respond(c, "UpdateFood", resp, err)
}

func (fc *FoodController) DeleteFood(c *gin.Context) {
	id, ok := idParam(c, "food_id")
	if !ok {
		return
	}

	resp, err := fc.service().DeleteFood(c.Request.Context(), id)
	respond(c, "DeleteFood", resp, err)
}

// GetSalesFood -> best selling food of the window
func (fc *FoodController) GetSalesFood(c *gin.Context) {
	var dateRange dtos.DateRange
	if err := c.ShouldBindQuery(&dateRange); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resp, err := fc.service().GetSalesFood(c.Request.Context(), dateRange)
	respond(c, "GetSalesFood", resp, err)
}
