package response

import (
	"encoding/json"
	"net/http"

	"buslink/shared/constant"
	"buslink/shared/failure"

	"github.com/rs/zerolog/log"
)

// Base is the response envelope every endpoint writes.
type Base struct {
	Data    *any    `json:"data,omitempty"`
	Error   *string `json:"error,omitempty"`
	Message *string `json:"message,omitempty"`
}

// WithJSON sends a response containing a JSON payload.
func WithJSON(w http.ResponseWriter, code int, jsonPayload any) {
	respond(w, code, Base{Data: &jsonPayload})
}

// WithMessage sends a response containing a simple text message.
func WithMessage(w http.ResponseWriter, code int, message string) {
	respond(w, code, Base{Message: &message})
}

// WithError sends a response with the error message and the HTTP status
// carried by the error, defaulting to 500 for plain errors.
func WithError(w http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	respond(w, code, Base{Error: &errMsg})
}

func respond(w http.ResponseWriter, code int, payload Base) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
