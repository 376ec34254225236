package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/portwave/portwave-backend/internal/platform/logger"
	"github.com/portwave/portwave-backend/internal/services"
)

type IncidentHandler struct {
	log             *logger.Logger
	incidentService services.IncidentService
}

func NewIncidentHandler(log *logger.Logger, incidentService services.IncidentService) *IncidentHandler {
	return &IncidentHandler{
		log:             log.With("handler", "IncidentHandler"),
		incidentService: incidentService,
	}
}

type reportIncidentRequest struct {
	Kind        string         `json:"kind" binding:"required"`
	Severity    string         `json:"severity"`
	Description string         `json:"description"`
	VesselID    *uuid.UUID     `json:"vessel_id"`
	BerthID     *uuid.UUID     `json:"berth_id"`
	ReportedAt  *time.Time     `json:"reported_at"`
	Metadata    map[string]any `json:"metadata"`
}

func (h *IncidentHandler) Report(c *gin.Context) {
	var req reportIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}

	in := services.ReportIncidentInput{
		Kind:        req.Kind,
		Severity:    req.Severity,
		Description: req.Description,
		VesselID:    req.VesselID,
		BerthID:     req.BerthID,
		Metadata:    req.Metadata,
	}
	if req.ReportedAt != nil {
		in.ReportedAt = *req.ReportedAt
	}

	incident, err := h.incidentService.Report(c.Request.Context(), in)
	if err != nil {
		RespondAggregateError(c, err)
		return
	}
	RespondCreated(c, incident)
}

func (h *IncidentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	incident, err := h.incidentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("GetByID failed", "incident_id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "load_incident_failed", err)
		return
	}
	if incident == nil {
		RespondError(c, http.StatusNotFound, "not_found", errIncidentNotFound)
		return
	}
	RespondOK(c, incident)
}

func (h *IncidentHandler) ListRecent(c *gin.Context) {
	incidents, err := h.incidentService.ListRecent(c.Request.Context(), 50)
	if err != nil {
		h.log.Error("ListRecent failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_incidents_failed", err)
		return
	}
	RespondOK(c, gin.H{"incidents": incidents})
}
