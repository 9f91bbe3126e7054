package response

import (
	"encoding/json"
	"net/http"
)

// Status is the closed set of outcomes an operation reports to its caller.
type Status int

const (
	Success Status = iota
	NotFound
	Unauthorized
	Forbidden
	ValidationError
	ServerError
	BadRequest
)

func (s Status) Name() string {
	switch s {
	case Success:
		return "success"
	case NotFound:
		return "not_found"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	case ValidationError:
		return "validation_error"
	case ServerError:
		return "server_error"
	case BadRequest:
		return "bad_request"
	default:
		return "unknown"
	}
}

func (s Status) String() string {
	return s.Name()
}

func (s Status) IsError() bool {
	return s != Success
}

func (s Status) HTTPStatus() int {
	switch s {
	case Success:
		return http.StatusOK
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case ValidationError:
		return http.StatusUnprocessableEntity
	case BadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Name())
}

// Result is the {status, message} envelope returned by write operations.
// ID is set only when an operation creates a resource.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	IsError bool   `json:"is_error"`
	ID      int64  `json:"id,omitempty"`
}

func New(status Status, message string) Result {
	return Result{
		Status:  status,
		Message: message,
		IsError: status.IsError(),
	}
}

func (r Result) WithID(id int64) Result {
	r.ID = id
	return r
}
