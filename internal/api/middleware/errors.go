package middleware

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyText     = errors.New("text is required")
	ErrInvalidFormat = errors.New("unsupported output format")
)

type ErrorResponse struct {
	Error   string `json:"error" description:"Error message"`
	Code    int    `json:"code" description:"HTTP status code"`
	Details string `json:"details,omitempty" description:"Additional error details"`
}

// HandleError writes err as an ErrorResponse with the given status. Server
// errors hide the error text from the client.
func HandleError(resp *restful.Response, err error, status int) {
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
		writeError(resp, status, http.StatusText(status), "")
		return
	}
	writeError(resp, status, http.StatusText(status), err.Error())
}

func writeError(resp *restful.Response, status int, message, details string) {
	if err := resp.WriteHeaderAndEntity(status, ErrorResponse{
		Error:   message,
		Code:    status,
		Details: details,
	}); err != nil {
		log.Error().Err(err).Msg("failed to write error response")
	}
}
