package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/portwave/portwave-backend/internal/data/aggregates"
	"github.com/portwave/portwave-backend/internal/data/repos/fleet"
	"github.com/portwave/portwave-backend/internal/data/repos/incidents"
	"github.com/portwave/portwave-backend/internal/data/repos/ports"
	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

const incidentCodePrefix = "INC"

// ReportIncidentInput carries a new incident report. The code is generated,
// never caller supplied.
type ReportIncidentInput struct {
	Kind        string
	Severity    string
	Description string
	VesselID    *uuid.UUID
	BerthID     *uuid.UUID
	ReportedAt  time.Time
	Metadata    map[string]any
}

type IncidentService interface {
	Report(ctx context.Context, in ReportIncidentInput) (*types.Incident, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Incident, error)
	ListRecent(ctx context.Context, limit int) ([]*types.Incident, error)
}

type incidentService struct {
	db        *gorm.DB
	log       *logger.Logger
	runner    aggregates.TxRunner
	incidents incidents.IncidentRepo
	sequences incidents.CodeSequenceRepo
	vessels   fleet.VesselRepo
	berths    ports.BerthRepo
}

func NewIncidentService(
	db *gorm.DB,
	baseLog *logger.Logger,
	runner aggregates.TxRunner,
	incidentRepo incidents.IncidentRepo,
	sequenceRepo incidents.CodeSequenceRepo,
	vesselRepo fleet.VesselRepo,
	berthRepo ports.BerthRepo,
) IncidentService {
	return &incidentService{
		db:        db,
		log:       baseLog.With("service", "IncidentService"),
		runner:    runner,
		incidents: incidentRepo,
		sequences: sequenceRepo,
		vessels:   vesselRepo,
		berths:    berthRepo,
	}
}

// Report generates the period-scoped incident code and inserts the incident
// in the same transaction, so the counter lock covers the insert.
func (s *incidentService) Report(ctx context.Context, in ReportIncidentInput) (*types.Incident, error) {
	const op = "Incidents.Report"

	if strings.TrimSpace(in.Kind) == "" {
		return nil, aggregates.MapError(op, aggregates.ValidationError("incident kind is required"))
	}
	severity := strings.ToLower(strings.TrimSpace(in.Severity))
	if severity == "" {
		severity = "low"
	}
	reportedAt := in.ReportedAt.UTC()
	if reportedAt.IsZero() {
		reportedAt = time.Now().UTC()
	}

	read := dbctx.Context{Ctx: ctx}
	if in.VesselID != nil {
		vessel, err := s.vessels.GetByID(read, *in.VesselID)
		if err != nil {
			return nil, aggregates.MapError(op, err)
		}
		if vessel == nil {
			return nil, aggregates.MapError(op, aggregates.NotFoundError(fmt.Sprintf("vessel not found: %s", *in.VesselID)))
		}
	}
	if in.BerthID != nil {
		berth, err := s.berths.GetByID(read, *in.BerthID)
		if err != nil {
			return nil, aggregates.MapError(op, err)
		}
		if berth == nil {
			return nil, aggregates.MapError(op, aggregates.NotFoundError(fmt.Sprintf("berth not found: %s", *in.BerthID)))
		}
	}

	metadata := datatypes.JSON([]byte("{}"))
	if len(in.Metadata) > 0 {
		raw, err := json.Marshal(in.Metadata)
		if err != nil {
			return nil, aggregates.MapError(op, aggregates.ValidationError("metadata is not serializable"))
		}
		metadata = datatypes.JSON(raw)
	}

	var created *types.Incident
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		period := aggregates.SequencePeriod(reportedAt)
		ordinal, err := s.sequences.Next(dbc, incidentCodePrefix, period)
		if err != nil {
			return err
		}
		row := &types.Incident{
			Code:        aggregates.FormatSequenceCode(incidentCodePrefix, period, ordinal),
			Kind:        strings.TrimSpace(in.Kind),
			Severity:    severity,
			Description: strings.TrimSpace(in.Description),
			VesselID:    in.VesselID,
			BerthID:     in.BerthID,
			ReportedAt:  reportedAt,
			Metadata:    metadata,
		}
		created, err = s.incidents.Create(dbc, row)
		return err
	})
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}

	s.log.Info("incident reported", "code", created.Code, "kind", created.Kind, "severity", created.Severity)
	return created, nil
}

func (s *incidentService) GetByID(ctx context.Context, id uuid.UUID) (*types.Incident, error) {
	return s.incidents.GetByID(dbctx.Context{Ctx: ctx}, id)
}

func (s *incidentService) ListRecent(ctx context.Context, limit int) ([]*types.Incident, error) {
	return s.incidents.ListRecent(dbctx.Context{Ctx: ctx}, limit)
}
