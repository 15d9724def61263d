package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/kds"
	"github.com/yeremiapane/restaurant-api/repositories"
	"github.com/yeremiapane/restaurant-api/services"
	"github.com/yeremiapane/restaurant-api/utils"
	"gorm.io/gorm"
)

type BillController struct {
	DB        *gorm.DB
	Publisher kds.Publisher
}

// NewBillController builds the bill endpoints. publisher may be nil.
func NewBillController(db *gorm.DB, publisher kds.Publisher) *BillController {
	return &BillController{DB: db, Publisher: publisher}
}

// service shares one unit of work between the bill and its details so both
// writes land in the same transaction.
func (bc *BillController) service() services.BillServiceInterface {
	uow := repositories.NewUnitOfWork(bc.DB)
	return services.NewBillService(uow, services.NewBillDetailService(uow), bc.Publisher)
}

func (bc *BillController) CreateBill(c *gin.Context) {
	var req dtos.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resp, err := bc.service().CreateBill(c.Request.Context(), req)
	respond(c, "CreateBill", resp, err)
}

func (bc *BillController) GetBillsWithDetails(c *gin.Context) {
	var filter dtos.BillFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resp, err := bc.service().GetBillsWithDetails(c.Request.Context(), filter)
	respond(c, "GetBillsWithDetails", resp, err)
}
