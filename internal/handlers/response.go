package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neowatch-backend/internal/apierr"
)

// ErrorEnvelope is the wire shape every failed request uses.
type ErrorEnvelope struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// RespondError classifies err through apierr and writes the envelope.
func RespondError(c *gin.Context, err error) {
	apiErr := apierr.From(err)
	c.JSON(apiErr.Status, ErrorEnvelope{
		Error:   apiErr.Error(),
		Code:    apiErr.Code,
		Details: apiErr.Details,
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
