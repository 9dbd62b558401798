package queries

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"hmpaquetes/internal/core/domain/model/document"
	"hmpaquetes/internal/core/domain/model/location"
	"hmpaquetes/internal/core/domain/model/shipment"
	"hmpaquetes/internal/core/domain/services"
	"hmpaquetes/internal/core/ports"
	"hmpaquetes/internal/pkg/errs"
)

const (
	HistoryDateLayout  = "02/01/2006 03:04 PM"
	NoMovementsMessage = "No se encontraron movimientos para este envío."
)

// HistoryRepositories are the read models the history needs.
type HistoryRepositories interface {
	ShipmentRepository() ports.ShipmentRepository
	ItemRepository() ports.ItemRepository
	DocumentRepository() ports.DocumentRepository
	LocationRepository() ports.LocationRepository
}

type HistoryRepositoriesFactory interface {
	Create() HistoryRepositories
}

// HistoryOptions configures how the history is rendered.
type HistoryOptions struct {
	// Location is the zone dates are rendered in. Defaults to UTC.
	Location *time.Location
	// MediaURL prefixes delivery photo paths.
	MediaURL string
	// Now is used for the fallback entry. Defaults to time.Now.
	Now func() time.Time
}

// GetShipmentHistoryQueryHandler builds the public tracking view of a shipment.
//
// Processing steps:
//   - Find the shipment by code, ignoring case
//   - Load its items in insertion order and resolve their documents in one batch per kind
//   - Narrate each item, skipping items whose document no longer exists
//   - Fall back to a single "Aduana" entry when nothing could be narrated
//   - Sort newest first and estimate the days left until delivery
//
// Example:
//
//	handler := NewGetShipmentHistoryQueryHandler(factory, logger, HistoryOptions{MediaURL: "/media/"})
//	history, err := handler.Handle(ctx, query)
type GetShipmentHistoryQueryHandler struct {
	repos     HistoryRepositoriesFactory
	logger    *slog.Logger
	opts      HistoryOptions
	narrator  services.HistoryNarrator
	estimator services.DeliveryEstimator
}

func NewGetShipmentHistoryQueryHandler(
	repos HistoryRepositoriesFactory,
	logger *slog.Logger,
	opts HistoryOptions,
) GetShipmentHistoryQueryHandler {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}

	return GetShipmentHistoryQueryHandler{
		repos:     repos,
		logger:    logger.With("component", "shipment_history"),
		opts:      opts,
		narrator:  services.NewHistoryNarrator(),
		estimator: services.NewDeliveryEstimator(),
	}
}

// Handle returns an errs.ErrObjectNotFound error for unknown codes. Any other
// error is an internal failure.
func (h GetShipmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentHistoryQuery,
) (GetShipmentHistoryQueryResponse, error) {
	var resp GetShipmentHistoryQueryResponse
	if err := query.Validate(); err != nil {
		return resp, err
	}

	repos := h.repos.Create()

	s, err := repos.ShipmentRepository().GetByCode(ctx, query.Code())
	if err != nil {
		return resp, err
	}

	items, err := repos.ItemRepository().ListByShipment(ctx, s.ID())
	if err != nil {
		return resp, err
	}
	h.logger.InfoContext(ctx, "items found", "code", s.Code(), "items", len(items))

	resp.Shipment, err = h.summarize(ctx, repos.LocationRepository(), s)
	if err != nil {
		return resp, err
	}

	resp.History = make([]HistoryEntry, 0, len(items))
	if len(items) == 0 {
		resp.Message = NoMovementsMessage
		return resp, nil
	}

	refs := make([]document.Ref, 0, len(items))
	for _, item := range items {
		refs = append(refs, item.Document())
	}
	docs, err := repos.DocumentRepository().GetMany(ctx, refs)
	if err != nil {
		return resp, err
	}

	movements := make([]services.Movement, 0, len(items))
	for _, item := range items {
		m, describeErr := h.narrator.Describe(item, docs[item.Document()])
		if describeErr != nil {
			h.logger.WarnContext(ctx, "document not resolved, skipping item",
				"item_id", item.ID(), "document", item.Document().String())
			continue
		}
		movements = append(movements, m)
	}

	if len(movements) == 0 {
		movements = append(movements, h.narrator.Fallback(s.Status(), h.opts.Now()))
	}

	for _, m := range h.narrator.Timeline(movements) {
		resp.History = append(resp.History, HistoryEntry{
			Event:  m.Event,
			Date:   m.OccurredAt.In(h.opts.Location).Format(HistoryDateLayout),
			Detail: m.Detail,
			Kind:   m.Kind,
		})
	}

	return resp, nil
}

func (h GetShipmentHistoryQueryHandler) summarize(
	ctx context.Context,
	locations ports.LocationRepository,
	s *shipment.Shipment,
) (ShipmentSummary, error) {
	summary := ShipmentSummary{
		Code:   s.Code(),
		Status: s.Status().String(),
	}

	if s.Status() != shipment.NotReceived {
		summary.Warehouse = s.Location()
	}

	var warehouse *location.Location
	if s.Status() == shipment.Received && s.Location() != "" {
		found, err := locations.GetByName(ctx, s.Location())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
		case err != nil:
			return summary, err
		default:
			warehouse = found
		}
	}
	summary.EstimatedDays = h.estimator.EstimateDays(s.Status(), warehouse)

	if s.Status() == shipment.Delivered && s.DeliveryPhoto() != "" {
		summary.PhotoURL = mediaURL(h.opts.MediaURL, s.DeliveryPhoto())
	}

	return summary, nil
}

func mediaURL(base, path string) string {
	if base == "" {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
