package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/portwave/portwave-backend/internal/platform/logger"
	"github.com/portwave/portwave-backend/internal/services"
)

type FleetHandler struct {
	log          *logger.Logger
	fleetService services.FleetService
}

func NewFleetHandler(log *logger.Logger, fleetService services.FleetService) *FleetHandler {
	return &FleetHandler{
		log:          log.With("handler", "FleetHandler"),
		fleetService: fleetService,
	}
}

func (h *FleetHandler) ListVessels(c *gin.Context) {
	vessels, err := h.fleetService.ListVessels(c.Request.Context(), 0)
	if err != nil {
		h.log.Error("ListVessels failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_vessels_failed", err)
		return
	}
	RespondOK(c, gin.H{"vessels": vessels})
}

func (h *FleetHandler) GetVessel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	vessel, err := h.fleetService.GetVessel(c.Request.Context(), id)
	if err != nil {
		h.log.Error("GetVessel failed", "vessel_id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "load_vessel_failed", err)
		return
	}
	if vessel == nil {
		RespondError(c, http.StatusNotFound, "not_found", errors.New("vessel not found"))
		return
	}
	RespondOK(c, vessel)
}

func (h *FleetHandler) GetContainer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	container, err := h.fleetService.GetContainer(c.Request.Context(), id)
	if err != nil {
		h.log.Error("GetContainer failed", "container_id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "load_container_failed", err)
		return
	}
	if container == nil {
		RespondError(c, http.StatusNotFound, "not_found", errors.New("container not found"))
		return
	}
	RespondOK(c, container)
}

func (h *FleetHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	employee, err := h.fleetService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		h.log.Error("GetEmployee failed", "employee_id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "load_employee_failed", err)
		return
	}
	if employee == nil {
		RespondError(c, http.StatusNotFound, "not_found", errors.New("employee not found"))
		return
	}
	RespondOK(c, employee)
}
