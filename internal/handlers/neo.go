package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neowatch-backend/internal/neo"
	"github.com/yungbote/neowatch-backend/internal/services"
)

type NeoHandler struct {
	neoService services.NeoService
}

func NewNeoHandler(neoService services.NeoService) *NeoHandler {
	return &NeoHandler{neoService: neoService}
}

func (nh *NeoHandler) GetFeed(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", neo.DefaultPageLimit)

	result, err := nh.neoService.GetFeed(c.Request.Context(), c.Query("start_date"), c.Query("end_date"), page, limit)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (nh *NeoHandler) GetSummary(c *gin.Context) {
	result, err := nh.neoService.GetSummary(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (nh *NeoHandler) GetLookup(c *gin.Context) {
	result, err := nh.neoService.GetLookup(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

// intQuery parses a positive integer query param; anything else falls
// back to the default and lets the service clamp it.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}
