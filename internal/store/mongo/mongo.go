// Package mongo implements the document-store ports on a MongoDB
// "transactions" collection. Change-stream watches back the Subscriber
// port, so remote writes by any client surface as change signals here.
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tracker/internal/core"
	"tracker/internal/store"
)

const TransactionsCollection = "transactions"

// document is the wire form of a transaction. No server-side schema
// validation is assumed; this client is the sole enforcer.
type document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Amount      int64              `bson:"amount"`
	Category    string             `bson:"category"`
	Type        string             `bson:"type"`
	Date        string             `bson:"date"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

type Store struct {
	collection *mongo.Collection
}

var _ store.Store = (*Store)(nil)

// Connect establishes a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, nil
}

func New(client *mongo.Client, database string) *Store {
	return &Store{collection: client.Database(database).Collection(TransactionsCollection)}
}

func (s *Store) FetchAll(ctx context.Context) ([]core.Transaction, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	var docs []document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}

	out := make([]core.Transaction, 0, len(docs))
	for _, d := range docs {
		t, err := d.transaction()
		if err != nil {
			// A malformed document would poison every reload, so skip it
			// rather than fail the whole fetch.
			slog.WarnContext(ctx, "Skipping malformed transaction document",
				"id", d.ID.Hex(), "error", err)
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *Store) Insert(ctx context.Context, t core.Transaction) (string, error) {
	if err := t.Validate(); err != nil {
		return "", fmt.Errorf("validate transaction: %w", err)
	}
	res, err := s.collection.InsertOne(ctx, document{
		Amount:      t.Amount.Cents,
		Category:    t.Category,
		Type:        string(t.Type),
		Date:        t.Date.String(),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	slog.InfoContext(ctx, "Transaction saved to MongoDB",
		"id", oid.Hex(),
		"type", t.Type,
		"category", t.Category,
		"amount_cents", t.Amount.Cents)

	return oid.Hex(), nil
}

func (s *Store) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: bad id %q", store.ErrNotFound, id)
	}
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}

	slog.InfoContext(ctx, "Transaction deleted from MongoDB", "id", id)
	return nil
}

// Subscribe watches the collection's change stream and invokes onChange on
// every event, whichever client caused it. The payload is discarded: the
// consumer always reacts by reloading the full set.
func (s *Store) Subscribe(ctx context.Context, onChange func()) error {
	stream, err := s.collection.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return fmt.Errorf("watch transactions: %w", err)
	}
	defer stream.Close(context.Background())

	slog.InfoContext(ctx, "Watching transactions collection for changes")

	for stream.Next(ctx) {
		onChange()
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("change stream: %w", err)
	}
	return ctx.Err()
}

func (d document) transaction() (core.Transaction, error) {
	date, err := core.ParseDate(d.Date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse date %q: %w", d.Date, err)
	}
	return core.Transaction{
		ID:          d.ID.Hex(),
		Amount:      core.Money{Cents: d.Amount},
		Type:        core.TxType(d.Type),
		Category:    d.Category,
		Date:        date,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}, nil
}
