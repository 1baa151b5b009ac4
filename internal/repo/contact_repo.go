package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tazhibayda/contact-service/internal/domain"
)

func (s *Store) InsertContact(ctx context.Context, c *domain.Contact) error {
	c.CreatedAt = time.Now().UTC()
	res, err := s.colContacts.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}

// ListContacts returns every stored submission, newest first.
func (s *Store) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	cur, err := s.colContacts.Find(ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Contact{}
	for cur.Next(ctx) {
		var c domain.Contact
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}
