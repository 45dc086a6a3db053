package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hostbook/internal/app/commands"
	"hostbook/internal/app/dto"
	"hostbook/internal/app/policies"
	domainavailability "hostbook/internal/domain/availability"
	domainbooking "hostbook/internal/domain/booking"
	"hostbook/internal/domain/calendar"
	"hostbook/internal/domain/shared/daterange"
	"hostbook/internal/domain/shared/events"
)

const (
	blockDatesKey   = "availability.block"
	releaseBlockKey = "availability.release"
)

var ErrSpanConflict = errors.New("availability: dates unavailable")

type BlockDatesCommand struct {
	CommandID  string
	PropertyID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Now        time.Time
}

func (c BlockDatesCommand) Key() string { return blockDatesKey }

type BlockDatesResult struct {
	Blocked dto.BlockedRange `json:"blocked"`
}

type BlockDatesHandler struct {
	Bookings  domainbooking.Repository
	Blocked   domainavailability.BlockedRepository
	Publisher policies.EventPublisher
}

func (h *BlockDatesHandler) Handle(ctx context.Context, cmd BlockDatesCommand) (*BlockDatesResult, error) {
	propertyID := domainbooking.PropertyID(cmd.PropertyID)
	span, err := daterange.NewSpan(calendar.StartOfDay(cmd.StartDate), calendar.StartOfDay(cmd.EndDate))
	if err != nil {
		return nil, err
	}

	bookings, err := h.Bookings.ListByProperty(ctx, &propertyID)
	if err != nil {
		return nil, err
	}
	blocked, err := h.Blocked.ListByProperty(ctx, &propertyID)
	if err != nil {
		return nil, err
	}

	if res := domainavailability.CheckSpan(span, bookings, blocked); !res.OK {
		return nil, fmt.Errorf("%w: %s", ErrSpanConflict, res.ConflictingLabel())
	}

	br, err := domainavailability.NewBlockedRange(
		domainavailability.BlockedRangeID(cmd.CommandID), propertyID, span, cmd.Reason, cmd.Now)
	if err != nil {
		return nil, err
	}
	if err := h.Blocked.Save(ctx, br); err != nil {
		return nil, err
	}
	publishPending(ctx, h.Publisher, &br.EventRecorder)

	return &BlockDatesResult{Blocked: dto.BlockedRange{
		ID:         string(br.ID),
		PropertyID: string(br.PropertyID),
		StartDate:  br.Span.Start,
		EndDate:    br.Span.End,
		Reason:     br.Reason,
	}}, nil
}

type ReleaseBlockCommand struct {
	BlockID string
	Now     time.Time
}

func (c ReleaseBlockCommand) Key() string { return releaseBlockKey }

type ReleaseBlockResult struct {
	Released bool `json:"released"`
}

type ReleaseBlockHandler struct {
	Blocked   domainavailability.BlockedRepository
	Publisher policies.EventPublisher
}

func (h *ReleaseBlockHandler) Handle(ctx context.Context, cmd ReleaseBlockCommand) (*ReleaseBlockResult, error) {
	id := domainavailability.BlockedRangeID(cmd.BlockID)
	br, err := h.Blocked.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := h.Blocked.Delete(ctx, id); err != nil {
		return nil, err
	}
	if h.Publisher != nil {
		_ = h.Publisher.Publish(ctx, domainavailability.BlockReleased{
			BlockID:    br.ID,
			PropertyID: br.PropertyID,
			At:         cmd.Now.UTC(),
		})
	}
	return &ReleaseBlockResult{Released: true}, nil
}

func publishPending(ctx context.Context, pub policies.EventPublisher, rec *events.EventRecorder) {
	if pub == nil {
		return
	}
	for _, ev := range rec.PendingEvents() {
		_ = pub.Publish(ctx, ev)
	}
	rec.ClearEvents()
}

var (
	_ commands.Handler[BlockDatesCommand, *BlockDatesResult]     = (*BlockDatesHandler)(nil)
	_ commands.Handler[ReleaseBlockCommand, *ReleaseBlockResult] = (*ReleaseBlockHandler)(nil)
)
