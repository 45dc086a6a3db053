package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	domainavailability "hostbook/internal/domain/availability"
	domainbooking "hostbook/internal/domain/booking"
	"hostbook/internal/domain/shared/daterange"
)

type bookingFixture struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	GuestName   string    `json:"guest_name"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Platform    string    `json:"platform"`
	AmountMinor int64     `json:"amount_minor"`
}

type blockedFixture struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reason     string    `json:"reason"`
}

type fixtureFile struct {
	Bookings []bookingFixture `json:"bookings"`
	Blocked  []blockedFixture `json:"blocked_ranges"`
}

// LoadFixtures seeds the repositories from a JSON file for local runs.
// Records are stored as-is, without conflict gating: fixtures may contain
// the same inconsistencies historical data does, and the read side must
// cope with them.
func LoadFixtures(ctx context.Context, path string, bookings *BookingRepository, blocked *BlockedRepository) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fixtures: read %s: %w", path, err)
	}
	var file fixtureFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("fixtures: parse %s: %w", path, err)
	}

	for _, f := range file.Bookings {
		b := &domainbooking.Booking{
			ID:          domainbooking.BookingID(f.ID),
			PropertyID:  domainbooking.PropertyID(f.PropertyID),
			GuestName:   f.GuestName,
			Range:       daterange.DateRange{CheckIn: f.CheckIn.UTC(), CheckOut: f.CheckOut.UTC()},
			Platform:    domainbooking.ParsePlatform(f.Platform),
			AmountMinor: f.AmountMinor,
		}
		if err := bookings.Save(ctx, b); err != nil {
			return err
		}
	}
	for _, f := range file.Blocked {
		br := &domainavailability.BlockedRange{
			ID:         domainavailability.BlockedRangeID(f.ID),
			PropertyID: domainbooking.PropertyID(f.PropertyID),
			Span:       daterange.Span{Start: f.StartDate.UTC(), End: f.EndDate.UTC()},
			Reason:     f.Reason,
		}
		if err := blocked.Save(ctx, br); err != nil {
			return err
		}
	}
	return nil
}
