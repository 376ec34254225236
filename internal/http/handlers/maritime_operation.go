package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainagg "github.com/portwave/portwave-backend/internal/domain/aggregates"
	"github.com/portwave/portwave-backend/internal/platform/logger"
	"github.com/portwave/portwave-backend/internal/services"
)

type MaritimeOperationHandler struct {
	log              *logger.Logger
	operationService services.OperationService
}

func NewMaritimeOperationHandler(log *logger.Logger, operationService services.OperationService) *MaritimeOperationHandler {
	return &MaritimeOperationHandler{
		log:              log.With("handler", "MaritimeOperationHandler"),
		operationService: operationService,
	}
}

// Request field names keep the original admin frontend contract.
type createMaritimeOperationRequest struct {
	Codigo                  string       `json:"codigo" binding:"required"`
	FechaInicio             time.Time    `json:"fecha_inicio" binding:"required"`
	FechaFin                *time.Time   `json:"fecha_fin"`
	EstadoNombre            string       `json:"estado_nombre" binding:"required"`
	IDBuque                 uuid.UUID    `json:"id_buque" binding:"required"`
	CantidadContenedores    *int         `json:"cantidad_contenedores"`
	EstatusNavegacionNombre string       `json:"estatus_navegacion_nombre"`
	PorcentajeTrayecto      *float64     `json:"porcentaje_trayecto"`
	IDRutaMaritima          uuid.UUID    `json:"id_ruta_maritima" binding:"required"`
	IDMuelleOrigen          uuid.UUID    `json:"id_muelle_origen" binding:"required"`
	IDMuelleDestino         uuid.UUID    `json:"id_muelle_destino" binding:"required"`
	TripulacionIDs          *[]uuid.UUID `json:"tripulacion_ids"`
	ContenedorIDs           *[]uuid.UUID `json:"contenedor_ids"`
}

type createMaritimeOperationResponse struct {
	IDOperacion         uuid.UUID `json:"id_operacion"`
	IDOperacionMaritima uuid.UUID `json:"id_operacion_maritima"`
}

func (h *MaritimeOperationHandler) Create(c *gin.Context) {
	var req createMaritimeOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	// The association lists are required but may be empty.
	if req.TripulacionIDs == nil {
		RespondError(c, http.StatusBadRequest, "validation", errMissingField("tripulacion_ids"))
		return
	}
	if req.ContenedorIDs == nil {
		RespondError(c, http.StatusBadRequest, "validation", errMissingField("contenedor_ids"))
		return
	}

	in := domainagg.CreateMaritimeOperationInput{
		Code:                 req.Codigo,
		StartAt:              req.FechaInicio,
		EndAt:                req.FechaFin,
		StatusName:           req.EstadoNombre,
		VesselID:             req.IDBuque,
		NavigationStatusName: req.EstatusNavegacionNombre,
		RouteID:              req.IDRutaMaritima,
		OriginBerthID:        req.IDMuelleOrigen,
		DestinationBerthID:   req.IDMuelleDestino,
		ContainerIDs:         *req.ContenedorIDs,
		CrewIDs:              *req.TripulacionIDs,
	}
	if req.CantidadContenedores != nil {
		in.ContainerCount = *req.CantidadContenedores
	}
	if req.PorcentajeTrayecto != nil {
		in.TrajectoryPct = *req.PorcentajeTrayecto
	}

	res, err := h.operationService.CreateMaritime(c.Request.Context(), in)
	if err != nil {
		RespondAggregateError(c, err)
		return
	}
	RespondCreated(c, createMaritimeOperationResponse{
		IDOperacion:         res.OperationID,
		IDOperacionMaritima: res.MaritimeOperationID,
	})
}

func (h *MaritimeOperationHandler) GetByOperationID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	view, err := h.operationService.GetMaritimeByOperationID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("GetByOperationID failed", "operation_id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "load_operation_failed", err)
		return
	}
	if view == nil {
		RespondError(c, http.StatusNotFound, "not_found", errOperationNotFound)
		return
	}
	RespondOK(c, view)
}
