package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
)

// parseID converts a path id into an ObjectID. A string that is not a valid
// 24-char hex id maps to domain.ErrInvalidID, never to a store round-trip.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

// isDuplicateKey verifies whether an error is a unique-index violation (E11000).
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
