package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neowatch-backend/internal/apierr"
	"github.com/yungbote/neowatch-backend/internal/services"
)

type WatchlistHandler struct {
	watchlistService services.WatchlistService
}

func NewWatchlistHandler(watchlistService services.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService}
}

func (wh *WatchlistHandler) List(c *gin.Context) {
	items, err := wh.watchlistService.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"total": len(items), "items": items})
}

func (wh *WatchlistHandler) Add(c *gin.Context) {
	var body struct {
		NeoID        string `json:"neo_id"`
		NeoName      string `json:"neo_name"`
		AlertEnabled bool   `json:"alert_enabled"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	item, err := wh.watchlistService.Add(c.Request.Context(), body.NeoID, body.NeoName, body.AlertEnabled)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": item})
}

func (wh *WatchlistHandler) Remove(c *gin.Context) {
	neoID := c.Param("neoId")
	if err := wh.watchlistService.Remove(c.Request.Context(), neoID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": true, "neo_id": neoID, "removed": true})
}

// ToggleAlert needs no body; a bare PATCH flips the stored flag. An
// optional {"enabled": bool} body sets it explicitly instead.
func (wh *WatchlistHandler) ToggleAlert(c *gin.Context) {
	var body struct {
		Enabled *bool `json:"enabled"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			RespondError(c, apierr.Validation("invalid request body"))
			return
		}
	}
	item, err := wh.watchlistService.ToggleAlert(c.Request.Context(), c.Param("neoId"), body.Enabled)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": true, "neo_id": item.NeoID, "alert_enabled": item.AlertEnabled})
}
