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

type DiningTableController struct {
	DB *gorm.DB
	QR services.QRGenerator
}

func NewDiningTableController(db *gorm.DB, qr services.QRGenerator) *DiningTableController {
	return &DiningTableController{DB: db, QR: qr}
}

func (tc *DiningTableController) service() services.DiningTableServiceInterface {
	return services.NewDiningTableService(repositories.NewUnitOfWork(tc.DB), tc.QR)
}

func (tc *DiningTableController) GetDiningTables(c *gin.Context) {
	resp, err := tc.service().GetDiningTables(c.Request.Context())
	respond(c, "GetDiningTables", resp, err)
}

func (tc *DiningTableController) CreateDiningTable(c *gin.Context) {
	var req dtos.CreateDiningTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resp, err := tc.service().CreateDiningTable(c.Request.Context(), req)
	respond(c, "CreateDiningTable", resp, err)
}

func (tc *DiningTableController) UpdateDiningTable(c *gin.Context) {
	var req dtos.UpdateDiningTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resp, err := tc.service().UpdateDiningTable(c.Request.Context(), req)
	respond(c, "UpdateDiningTable", resp, err)
}

func (tc *DiningTableController) DeleteDiningTable(c *gin.Context) {
	id, ok := idParam(c, "table_id")
	if !ok {
		return
	}

	resp, err := tc.service().DeleteDiningTable(c.Request.Context(), id)
	respond(c, "DeleteDiningTable", resp, err)
}

// GetDiningTableQRCode -> PNG QR pointing at the table's bills
func (tc *DiningTableController) GetDiningTableQRCode(c *gin.Context) {
	id, ok := idParam(c, "table_id")
	if !ok {
		return
	}

	resp, err := tc.service().GetDiningTableQRCode(c.Request.Context(), id)
	if err != nil {
		utils.RespondUseCaseError(c, "GetDiningTableQRCode", err)
		return
	}

	png, isPNG := resp.Data.([]byte)
	if resp.ResponseCode != utils.ResponseCodeOk || !isPNG {
		utils.RespondService(c, resp)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
