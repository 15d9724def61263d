package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-api/utils"
)

// respond writes the outcome of a service call: a failed operation is a
// 500, anything else follows the envelope code.
func respond(c *gin.Context, op string, resp *utils.ServiceResponse, err error) {
	if err != nil {
		if ucErr, ok := utils.AsUseCaseError(err); ok && ucErr.Op != "" {
			op = ucErr.Op
		}
		utils.RespondUseCaseError(c, op, err)
		return
	}
	utils.RespondService(c, resp)
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid "+name))
		return 0, false
	}
	return uint(id), true
}
