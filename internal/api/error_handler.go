package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fintrack/personal-finance/internal/api/handler"
	"github.com/fintrack/personal-finance/internal/core/domain"
)

// User-facing messages, kept in the app's language.
const (
	msgMissingFields      = "Vui lòng điền đầy đủ thông tin!"
	msgDuplicateUser      = "Tên đăng nhập đã tồn tại!"
	msgInvalidCredentials = "Tên đăng nhập hoặc mật khẩu không đúng!"
	msgNotLoggedIn        = "Vui lòng đăng nhập để tiếp tục."
	msgSessionMismatch    = "Phiên đăng nhập đã hết hạn, vui lòng đăng nhập lại."
	msgUnknownSetting     = "Cài đặt không hợp lệ."
	msgCorruptRecord      = "Dữ liệu lưu trữ bị lỗi."
	msgInternal           = "Đã có lỗi xảy ra, vui lòng thử lại."
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, handler.ErrorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, handler.ErrorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, handler.ErrorResponse{Error: msgMissingFields, Details: err.Error()}
	case errors.Is(err, domain.ErrUnknownSetting):
		return http.StatusBadRequest, handler.ErrorResponse{Error: msgUnknownSetting, Details: err.Error()}
	case errors.Is(err, domain.ErrDuplicateUser):
		return http.StatusConflict, handler.ErrorResponse{Error: msgDuplicateUser}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, handler.ErrorResponse{Error: msgInvalidCredentials}
	case errors.Is(err, domain.ErrNotLoggedIn):
		return http.StatusUnauthorized, handler.ErrorResponse{Error: msgNotLoggedIn}
	case errors.Is(err, domain.ErrSessionMismatch):
		return http.StatusUnauthorized, handler.ErrorResponse{Error: msgSessionMismatch}
	case errors.Is(err, domain.ErrCorruptRecord):
		log.Error().Err(err).Str("path", c.Path()).Msg("corrupt persisted record")
		return http.StatusInternalServerError, handler.ErrorResponse{Error: msgCorruptRecord}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, handler.ErrorResponse{Error: msgInternal}
}
