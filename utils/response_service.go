package utils

type ResponseCode int

const (
	ResponseCodeOk ResponseCode = iota
	ResponseCodeBadRequest
	ResponseCodeNoContent
	ResponseCodeInternalError
	ResponseCodeCreated
	ResponseCodeConflict
)

func (c ResponseCode) String() string {
	switch c {
	case ResponseCodeOk:
		return "Ok"
	case ResponseCodeBadRequest:
		return "BadRequest"
	case ResponseCodeNoContent:
		return "NoContent"
	case ResponseCodeInternalError:
		return "InternalError"
	case ResponseCodeCreated:
		return "Created"
	case ResponseCodeConflict:
		return "Conflict"
	}
	return "Unknown"
}

const (
	StatusSuccessful = "successful"
	StatusFailed     = "failed"
	StatusNoContent  = "noContent"
)

// ServiceResponse is the envelope every service operation returns.
type ServiceResponse struct {
	ResponseCode ResponseCode `json:"response_code"`
	Message      string       `json:"message"`
	Status       bool         `json:"status"`
	Data         interface{}  `json:"data"`
	Quantity     int          `json:"quantity"`
}

// NewServiceResponse starts in the failed state; callers flip it on success.
func NewServiceResponse() *ServiceResponse {
	return &ServiceResponse{
		ResponseCode: ResponseCodeInternalError,
		Message:      StatusFailed,
		Status:       false,
		Quantity:     0,
	}
}

// Reject marks a business rejection (duplicate, missing record).
func (r *ServiceResponse) Reject(message string) *ServiceResponse {
	r.ResponseCode = ResponseCodeBadRequest
	r.Message = message
	r.Status = false
	r.Quantity = 0
	return r
}

// Affected fills the envelope for a single write whose success is ok.
func (r *ServiceResponse) Affected(ok bool, data interface{}, failMessage string) *ServiceResponse {
	r.Status = ok
	r.Data = data
	if ok {
		r.ResponseCode = ResponseCodeOk
		r.Message = StatusSuccessful
		r.Quantity = 1
		return r
	}
	r.ResponseCode = ResponseCodeBadRequest
	r.Message = failMessage
	r.Quantity = 0
	return r
}

// Listing fills the envelope for a read of count rows. An empty read is
// NoContent, never an error.
func (r *ServiceResponse) Listing(count int, data interface{}, emptyMessage string) *ServiceResponse {
	r.Data = data
	r.Quantity = count
	r.Status = count > 0
	if count > 0 {
		r.ResponseCode = ResponseCodeOk
		r.Message = StatusSuccessful
		return r
	}
	r.ResponseCode = ResponseCodeNoContent
	r.Message = emptyMessage
	return r
}
