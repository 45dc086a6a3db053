package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainbooking "hostbook/internal/domain/booking"
	"hostbook/internal/domain/shared/daterange"
)

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection("bookings")}
}

func (r *BookingRepository) ByID(ctx context.Context, id domainbooking.BookingID) (*domainbooking.Booking, error) {
	var doc bookingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainbooking.ErrBookingNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *BookingRepository) Save(ctx context.Context, b *domainbooking.Booking) error {
	doc := newBookingDocument(b)
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": doc}, opts)
	return err
}

func (r *BookingRepository) Delete(ctx context.Context, id domainbooking.BookingID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": string(id)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domainbooking.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) ListByProperty(ctx context.Context, propertyID *domainbooking.PropertyID) ([]*domainbooking.Booking, error) {
	filter := bson.M{}
	if propertyID != nil {
		filter["property_id"] = string(*propertyID)
	}
	opts := options.Find().SetSort(bson.D{{Key: "check_in", Value: 1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*domainbooking.Booking
	for cursor.Next(ctx) {
		var doc bookingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toAggregate())
	}
	return out, cursor.Err()
}

type bookingDocument struct {
	ID          string `bson:"_id"`
	PropertyID  string `bson:"property_id"`
	GuestName   string `bson:"guest_name"`
	CheckIn     int64  `bson:"check_in"`
	CheckOut    int64  `bson:"check_out"`
	Platform    string `bson:"platform"`
	AmountMinor int64  `bson:"amount_minor"`
	CreatedAt   int64  `bson:"created_at"`
	UpdatedAt   int64  `bson:"updated_at"`
}

func newBookingDocument(b *domainbooking.Booking) bookingDocument {
	return bookingDocument{
		ID:          string(b.ID),
		PropertyID:  string(b.PropertyID),
		GuestName:   b.GuestName,
		CheckIn:     b.Range.CheckIn.UnixMilli(),
		CheckOut:    b.Range.CheckOut.UnixMilli(),
		Platform:    string(b.Platform),
		AmountMinor: b.AmountMinor,
		CreatedAt:   b.CreatedAt.UnixMilli(),
		UpdatedAt:   b.UpdatedAt.UnixMilli(),
	}
}

func (d bookingDocument) toAggregate() *domainbooking.Booking {
	return &domainbooking.Booking{
		ID:          domainbooking.BookingID(d.ID),
		PropertyID:  domainbooking.PropertyID(d.PropertyID),
		GuestName:   d.GuestName,
		Range:       daterange.DateRange{CheckIn: millisToTime(d.CheckIn), CheckOut: millisToTime(d.CheckOut)},
		Platform:    domainbooking.ParsePlatform(d.Platform),
		AmountMinor: d.AmountMinor,
		CreatedAt:   millisToTime(d.CreatedAt),
		UpdatedAt:   millisToTime(d.UpdatedAt),
	}
}

func millisToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

var _ domainbooking.Repository = (*BookingRepository)(nil)
