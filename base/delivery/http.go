package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zkzk-trade/goapi/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
	// JsonResponseStatusPrompt asks the user to act (install or connect a wallet)
	JsonResponseStatusPrompt JsonResponseStatus = "prompt"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// ErrorStatus maps a domain error to its http status, fallback is returned for unknown errors
func ErrorStatus(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest
	case domain.IsPrompt(err):
		return http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrRemoteCall),
		errors.Is(err, domain.ErrTxReverted),
		errors.Is(err, domain.ErrUnsupportedChain):
		return http.StatusBadGateway
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = ErrorStatus(err, status)
		data = err.Error()
		if status == http.StatusPreconditionFailed {
			return c.JSON(status, JsonResponse{data, JsonResponseStatusPrompt})
		}
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
