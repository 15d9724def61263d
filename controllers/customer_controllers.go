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

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

func (cc *CustomerController) service() services.CustomerServiceInterface {
	return services.NewCustomerService(repositories.NewUnitOfWork(cc.DB))
}

func (cc *CustomerController) GetCustomers(c *gin.Context) {
	resp, err := cc.service().GetCustomers(c.Request.Context())
	respond(c, "GetCustomers", resp, err)
}

func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req dtos.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resp, err := cc.service().CreateCustomer(c.Request.Context(), req)
	respond(c, "CreateCustomer", resp, err)
}

func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var req dtos.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resp, err := cc.service().UpdateCustomer(c.Request.Context(), req)
	respond(c, "UpdateCustomer", resp, err)
}

func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	resp, err := cc.service().DeleteCustomer(c.Request.Context(), c.Param("customer_id"))
	respond(c, "DeleteCustomer", resp, err)
}

// GetCustomerSpend -> customers whose spend in the window reaches ?spent
func (cc *CustomerController) GetCustomerSpend(c *gin.Context) {
	var filter dtos.CustomerSpendFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resp, err := cc.service().GetCustomerSpend(c.Request.Context(), filter)
	respond(c, "GetCustomerSpend", resp, err)
}
