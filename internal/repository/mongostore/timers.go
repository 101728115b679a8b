package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"timers/internal/model"
	"timers/internal/repository"
)

type timerDocument struct {
	ID          string     `bson:"_id"`
	UserID      string     `bson:"userId"`
	Description string     `bson:"description"`
	Start       time.Time  `bson:"start"`
	End         *time.Time `bson:"end"`
	IsActive    bool       `bson:"isActive"`
}

func (d timerDocument) toModel() model.Timer {
	timer := model.Timer{
		ID:          d.ID,
		UserID:      d.UserID,
		Description: d.Description,
		Start:       d.Start.UTC(),
		IsActive:    d.IsActive,
	}
	if d.End != nil {
		end := d.End.UTC()
		timer.End = &end
	}
	return timer
}

type TimerRepository struct {
	timers *mongo.Collection
}

func (r *TimerRepository) Create(ctx context.Context, timer *model.Timer) error {
	doc := timerDocument{
		ID:          timer.ID,
		UserID:      timer.UserID,
		Description: timer.Description,
		Start:       timer.Start.UTC(),
		End:         timer.End,
		IsActive:    timer.End == nil,
	}
	if _, err := r.timers.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create timer: %w", err)
	}
	return nil
}

func (r *TimerRepository) ListByUser(ctx context.Context, userID string, filter model.TimerFilter) ([]model.Timer, error) {
	query := bson.M{"userId": userID}
	if filter.Active != nil {
		query["isActive"] = *filter.Active
	}

	cursor, err := r.timers.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "start", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list timers: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []timerDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode timers: %w", err)
	}

	timers := make([]model.Timer, 0, len(docs))
	for _, doc := range docs {
		timers = append(timers, doc.toModel())
	}
	return timers, nil
}

// Stop relies on UpdateOne being atomic per document; the end:null filter
// makes a second stop match nothing.
func (r *TimerRepository) Stop(ctx context.Context, timerID, userID string, end time.Time) error {
	result, err := r.timers.UpdateOne(
		ctx,
		bson.M{"_id": timerID, "userId": userID, "end": nil},
		bson.M{"$set": bson.M{"end": end.UTC(), "isActive": false}},
	)
	if err != nil {
		return fmt.Errorf("stop timer: %w", err)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	err = r.timers.FindOne(ctx, bson.M{"_id": timerID, "userId": userID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("check stopped timer: %w", err)
	}
	return repository.ErrAlreadyStopped
}
