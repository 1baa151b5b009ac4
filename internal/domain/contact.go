package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a single contact-form submission. Immutable once inserted:
// there is no update or delete path anywhere in the service.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name"       json:"name"`
	Email     string             `bson:"email"      json:"email"`
	Subject   string             `bson:"subject"    json:"subject"`
	Message   string             `bson:"message"    json:"message"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
