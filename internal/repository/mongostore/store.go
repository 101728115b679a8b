// Package mongostore keeps users, sessions and timers in MongoDB collections.
// It satisfies the same store contracts as the sqlite repositories and
// reports the same sentinel errors from package repository.
package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	sessionsCollection = "sessions"
	timersCollection   = "timers"
)

type Store struct {
	db *mongo.Database
}

func New(client *mongo.Client, database string) *Store {
	return &Store{db: client.Database(database)}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{users: s.db.Collection(usersCollection)}
}

func (s *Store) Sessions() *SessionRepository {
	return newSessionRepository(s.db.Collection(sessionsCollection), s.db.Collection(usersCollection))
}

func (s *Store) Timers() *TimerRepository {
	return &TimerRepository{timers: s.db.Collection(timersCollection)}
}

// EnsureIndexes creates the unique username index and the lookup indexes.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}

	_, err = s.db.Collection(sessionsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create sessions index: %w", err)
	}

	_, err = s.db.Collection(timersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "start", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create timers index: %w", err)
	}
	return nil
}
