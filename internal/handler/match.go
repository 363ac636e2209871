package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sksohail19/cricket-score-tracking-app/internal/model"
	"github.com/sksohail19/cricket-score-tracking-app/internal/repository"
	"github.com/sksohail19/cricket-score-tracking-app/internal/service"
	"github.com/sksohail19/cricket-score-tracking-app/pkg/response"
)

type MatchHandler struct {
	svc service.MatchService
}

func NewMatchHandler(svc service.MatchService) *MatchHandler { return &MatchHandler{svc: svc} }

func (h *MatchHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/matches")
	{
		g.POST("", h.create)
		g.GET("", h.list)
		g.GET("/:match_id", h.getByID)
		g.DELETE("/:match_id", h.delete)
		g.POST("/:match_id/deliveries", h.recordDelivery)
		g.POST("/:match_id/complete", h.complete)
		g.GET("/:match_id/scorecard", h.scorecard)
		g.GET("/:match_id/export", h.exportJSON)
		g.GET("/:match_id/export.xlsx", h.exportXLSX)
	}
}

func (h *MatchHandler) create(c *gin.Context) {
	var req service.CreateMatchParams
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	m, err := h.svc.CreateMatch(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, m)
}

func (h *MatchHandler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	res, err := h.svc.ListMatches(c.Request.Context(), repository.Page{Limit: limit, Offset: offset})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"items": res.Items, "total": res.Total})
}

func (h *MatchHandler) getByID(c *gin.Context) {
	m, err := h.svc.GetMatch(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, m)
}

func (h *MatchHandler) delete(c *gin.Context) {
	if err := h.svc.DeleteMatch(c.Request.Context(), c.Param("match_id")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// recordDelivery applies one ball. When the update succeeded but the save
// did not, the updated match rides along with the 503 so the client can
// keep scoring and retry the save.
func (h *MatchHandler) recordDelivery(c *gin.Context) {
	var d model.Delivery
	if err := c.ShouldBindJSON(&d); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	m, err := h.svc.RecordDelivery(c.Request.Context(), c.Param("match_id"), d)
	if err != nil {
		if errors.Is(err, service.ErrNotPersisted) {
			status, payload := response.MapError(err)
			c.AbortWithStatusJSON(status, gin.H{"error": payload.Error, "message": payload.Message, "match": m})
			return
		}
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, m)
}

func (h *MatchHandler) complete(c *gin.Context) {
	m, err := h.svc.CompleteMatch(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		if errors.Is(err, service.ErrNotPersisted) {
			status, payload := response.MapError(err)
			c.AbortWithStatusJSON(status, gin.H{"error": payload.Error, "message": payload.Message, "match": m})
			return
		}
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, m)
}

func (h *MatchHandler) scorecard(c *gin.Context) {
	card, err := h.svc.Scorecard(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, card)
}

func (h *MatchHandler) exportJSON(c *gin.Context) {
	id := c.Param("match_id")
	data, err := h.svc.ExportJSON(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=match_%s.json", id))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *MatchHandler) exportXLSX(c *gin.Context) {
	id := c.Param("match_id")
	data, err := h.svc.ExportXLSX(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=match_%s.xlsx", id))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
