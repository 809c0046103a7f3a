package mongostore

import (
	"context"

	"loan-reconciliation-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type settledDoc struct {
	Document     bson.RawValue `bson:"DOCUMENTO"`
	MovementDate bson.RawValue `bson:"DATA_MOVIMENTO"`
}

func (d settledDoc) candidate() domain.SettledCandidate {
	return domain.SettledCandidate{
		Document:     documentKey(d.Document),
		MovementDate: movementDate(d.MovementDate),
	}
}

type settledCursor struct {
	cur     *mongo.Cursor
	current domain.SettledCandidate
}

// Next decodes the next document. A document that does not decode becomes
// an empty candidate, which validation then skips.
func (c *settledCursor) Next(ctx context.Context) bool {
	if !c.cur.Next(ctx) {
		return false
	}
	var doc settledDoc
	if err := c.cur.Decode(&doc); err != nil {
		c.current = domain.SettledCandidate{}
		return true
	}
	c.current = doc.candidate()
	return true
}

func (c *settledCursor) Candidate() domain.SettledCandidate {
	return c.current
}

func (c *settledCursor) Err() error {
	return c.cur.Err()
}

func (c *settledCursor) Close(ctx context.Context) error {
	return c.cur.Close(ctx)
}
