package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neowatch-backend/internal/apierr"
	"github.com/yungbote/neowatch-backend/internal/services"
)

type AlertHandler struct {
	alertService services.AlertService
}

func NewAlertHandler(alertService services.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

func (ah *AlertHandler) GetAlerts(c *gin.Context) {
	result, err := ah.alertService.GetAlerts(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ah *AlertHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if err := ah.alertService.MarkRead(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": id, "read": true})
}

func (ah *AlertHandler) MarkAllRead(c *gin.Context) {
	var body struct {
		AlertIDs []string `json:"alert_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	updated, err := ah.alertService.MarkAllRead(c.Request.Context(), body.AlertIDs)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": updated, "read": true})
}

func (ah *AlertHandler) DeleteAlert(c *gin.Context) {
	id := c.Param("id")
	if err := ah.alertService.DeleteAlert(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": id, "deleted": true})
}
