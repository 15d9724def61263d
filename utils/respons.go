package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status       bool         `json:"status"`
	Message      string       `json:"message"`
	Data         interface{}  `json:"data,omitempty"`
	Quantity     int          `json:"quantity"`
	ResponseCode ResponseCode `json:"response_code"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:       false,
		Message:      err.Error(),
		Data:         nil,
		ResponseCode: ResponseCodeBadRequest,
	})
}

// RespondService maps a service envelope onto HTTP: Ok is 200, BadRequest is
// 400 and every other code is 204 without a body.
func RespondService(c *gin.Context, resp *ServiceResponse) {
	body := JSONResponse{
		Status:       resp.Status,
		Message:      resp.Message,
		Data:         resp.Data,
		Quantity:     resp.Quantity,
		ResponseCode: resp.ResponseCode,
	}

	switch resp.ResponseCode {
	case ResponseCodeOk:
		c.JSON(http.StatusOK, body)
	case ResponseCodeBadRequest:
		c.JSON(http.StatusBadRequest, body)
	default:
		c.Status(http.StatusNoContent)
	}
}

// RespondUseCaseError writes the 500 answer for a failed operation as
// "<op>: <cause>".
func RespondUseCaseError(c *gin.Context, op string, err error) {
	ErrorLogger.WithError(err).WithField("op", op).Error("request failed")
	c.JSON(http.StatusInternalServerError, JSONResponse{
		Status:       false,
		Message:      fmt.Sprintf("%s: %s", op, err.Error()),
		ResponseCode: ResponseCodeInternalError,
	})
}
