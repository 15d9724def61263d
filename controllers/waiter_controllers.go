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

type WaiterController struct {
	DB *gorm.DB
}

func NewWaiterController(db *gorm.DB) *WaiterController {
	return &WaiterController{DB: db}
}

func (wc *WaiterController) service() services.WaiterServiceInterface {
	return services.NewWaiterService(repositories.NewUnitOfWork(wc.DB))
}

func (wc *WaiterController) GetWaiters(c *gin.Context) {
	resp, err := wc.service().GetWaiters(c.Request.Context())
	respond(c, "GetWaiters", resp, err)
}

func (wc *WaiterController) CreateWaiter(c *gin.Context) {
	var req dtos.CreateWaiterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resp, err := wc.service().CreateWaiter(c.Request.Context(), req)
	respond(c, "CreateWaiter", resp, err)
}

func (wc *WaiterController) UpdateWaiter(c *gin.Context) {
	var req dtos.UpdateWaiterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resp, err := wc.service().UpdateWaiter(c.Request.Context(), req)
	respond(c, "UpdateWaiter", resp, err)
}

func (wc *WaiterController) DeleteWaiter(c *gin.Context) {
	id, ok := idParam(c, "waiter_id")
	if !ok {
		return
	}

	resp, err := wc.service().DeleteWaiter(c.Request.Context(), id)
	respond(c, "DeleteWaiter", resp, err)
}

func (wc *WaiterController) GetWaiterSales(c *gin.Context) {
	var dateRange dtos.DateRange
	if err := c.ShouldBindQuery(&dateRange); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resp, err := wc.service().GetWaiterSales(c.Request.Context(), dateRange)
	respond(c, "GetWaiterSales", resp, err)
}
