package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/portwave/portwave-backend/internal/platform/logger"
	"github.com/portwave/portwave-backend/internal/services"
)

type CatalogHandler struct {
	log            *logger.Logger
	catalogService services.CatalogService
}

func NewCatalogHandler(log *logger.Logger, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		log:            log.With("handler", "CatalogHandler"),
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) ListPorts(c *gin.Context) {
	ports, err := h.catalogService.ListPorts(c.Request.Context(), 0)
	if err != nil {
		h.log.Error("ListPorts failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_ports_failed", err)
		return
	}
	RespondOK(c, gin.H{"ports": ports})
}

func (h *CatalogHandler) ListBerthsByPort(c *gin.Context) {
	portID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	berths, err := h.catalogService.ListBerthsByPort(c.Request.Context(), portID)
	if err != nil {
		h.log.Error("ListBerthsByPort failed", "port_id", portID, "error", err)
		RespondError(c, http.StatusInternalServerError, "load_berths_failed", err)
		return
	}
	RespondOK(c, gin.H{"berths": berths})
}

func (h *CatalogHandler) GetRoute(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	route, err := h.catalogService.GetRoute(c.Request.Context(), id)
	if err != nil {
		h.log.Error("GetRoute failed", "route_id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "load_route_failed", err)
		return
	}
	if route == nil {
		RespondError(c, http.StatusNotFound, "not_found", errors.New("route not found"))
		return
	}
	RespondOK(c, route)
}

func (h *CatalogHandler) ListOperationStatuses(c *gin.Context) {
	statuses, err := h.catalogService.ListOperationStatuses(c.Request.Context())
	if err != nil {
		h.log.Error("ListOperationStatuses failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_statuses_failed", err)
		return
	}
	RespondOK(c, gin.H{"statuses": statuses})
}

func (h *CatalogHandler) ListNavigationStatuses(c *gin.Context) {
	statuses, err := h.catalogService.ListNavigationStatuses(c.Request.Context())
	if err != nil {
		h.log.Error("ListNavigationStatuses failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_statuses_failed", err)
		return
	}
	RespondOK(c, gin.H{"statuses": statuses})
}
