package transactor

import (
	"context"
	"errors"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoTransactor struct {
	client  *mongo.Client
	enabled bool
}

// NewMongoTransactor runs units of work in a session transaction when enabled.
// Standalone servers have no transactions, so disabled means fn runs directly
// and callers keep their own compensation logic.
func NewMongoTransactor(client *mongo.Client, enabled bool) contracts.Transactor {
	return &mongoTransactor{client: client, enabled: enabled}
}

func (t *mongoTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.enabled {
		return fn(ctx)
	}

	session, err := t.client.StartSession()
	if err != nil {
		return exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return err
		}
		return exceptions.ErrMongoDBTransaction(err)
	}
	return nil
}
