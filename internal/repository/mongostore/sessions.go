package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"timers/internal/model"
	"timers/internal/repository"
)

type sessionDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"userId"`
	CreatedAt time.Time `bson:"createdAt"`
}

type SessionRepository struct {
	sessions *mongo.Collection
	users    *mongo.Collection
	now      func() time.Time
}

func newSessionRepository(sessions, users *mongo.Collection) *SessionRepository {
	return &SessionRepository{sessions: sessions, users: users, now: time.Now}
}

func (r *SessionRepository) CreateSession(ctx context.Context, userID string) (string, error) {
	doc := sessionDocument{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: r.now().UTC(),
	}
	if _, err := r.sessions.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return doc.ID, nil
}

func (r *SessionRepository) FindSessionUser(ctx context.Context, sessionID string) (*model.User, error) {
	var session sessionDocument
	err := r.sessions.FindOne(
		ctx,
		bson.M{"_id": sessionID},
		options.FindOne().SetProjection(bson.M{"userId": 1}),
	).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	return findUser(ctx, r.users, bson.M{"_id": session.UserID})
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := r.sessions.DeleteOne(ctx, bson.M{"_id": sessionID}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
