package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainavailability "hostbook/internal/domain/availability"
	domainbooking "hostbook/internal/domain/booking"
	"hostbook/internal/domain/shared/daterange"
)

type BlockedRepository struct {
	col *mongo.Collection
}

func NewBlockedRepository(db *mongo.Database) *BlockedRepository {
	return &BlockedRepository{col: db.Collection("blocked_ranges")}
}

func (r *BlockedRepository) ByID(ctx context.Context, id domainavailability.BlockedRangeID) (*domainavailability.BlockedRange, error) {
	var doc blockedDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainavailability.ErrBlockNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *BlockedRepository) Save(ctx context.Context, br *domainavailability.BlockedRange) error {
	doc := newBlockedDocument(br)
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": doc}, opts)
	return err
}

func (r *BlockedRepository) Delete(ctx context.Context, id domainavailability.BlockedRangeID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": string(id)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domainavailability.ErrBlockNotFound
	}
	return nil
}

func (r *BlockedRepository) ListByProperty(ctx context.Context, propertyID *domainbooking.PropertyID) ([]*domainavailability.BlockedRange, error) {
	filter := bson.M{}
	if propertyID != nil {
		filter["property_id"] = string(*propertyID)
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*domainavailability.BlockedRange
	for cursor.Next(ctx) {
		var doc blockedDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toAggregate())
	}
	return out, cursor.Err()
}

type blockedDocument struct {
	ID         string `bson:"_id"`
	PropertyID string `bson:"property_id"`
	StartDate  int64  `bson:"start_date"`
	EndDate    int64  `bson:"end_date"`
	Reason     string `bson:"reason"`
	CreatedAt  int64  `bson:"created_at"`
}

func newBlockedDocument(br *domainavailability.BlockedRange) blockedDocument {
	return blockedDocument{
		ID:         string(br.ID),
		PropertyID: string(br.PropertyID),
		StartDate:  br.Span.Start.UnixMilli(),
		EndDate:    br.Span.End.UnixMilli(),
		Reason:     br.Reason,
		CreatedAt:  br.CreatedAt.UnixMilli(),
	}
}

func (d blockedDocument) toAggregate() *domainavailability.BlockedRange {
	return &domainavailability.BlockedRange{
		ID:         domainavailability.BlockedRangeID(d.ID),
		PropertyID: domainbooking.PropertyID(d.PropertyID),
		Span:       daterange.Span{Start: millisToTime(d.StartDate), End: millisToTime(d.EndDate)},
		Reason:     d.Reason,
		CreatedAt:  millisToTime(d.CreatedAt),
	}
}

var _ domainavailability.BlockedRepository = (*BlockedRepository)(nil)
