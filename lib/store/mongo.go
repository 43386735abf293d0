package store

import (
	"context"

	"go-wiktionary-wsd/lib/dataset"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore writes a dataset into three collections named
// <prefix>_senses, <prefix>_examples and <prefix>_quotations.
type MongoStore struct {
	client     *mongo.Client
	senses     *mongo.Collection
	examples   *mongo.Collection
	quotations *mongo.Collection
}

var _ Sink = (*MongoStore)(nil)

func ConnectMongo(ctx context.Context, uri, database, prefix string) (*MongoStore, error) {
	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	db := c.Database(database)
	return &MongoStore{
		client:     c,
		senses:     db.Collection(prefix + "_senses"),
		examples:   db.Collection(prefix + "_examples"),
		quotations: db.Collection(prefix + "_quotations"),
	}, nil
}

func (m *MongoStore) Store(ctx context.Context, d dataset.Dataset) error {
	if err := insertMany(ctx, m.senses, d.Senses); err != nil {
		return err
	}
	if err := insertMany(ctx, m.examples, d.Examples); err != nil {
		return err
	}
	return insertMany(ctx, m.quotations, d.Quotations)
}

func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func insertMany[T any](ctx context.Context, collection *mongo.Collection, records []T) error {
	// InsertMany rejects an empty batch
	if len(records) == 0 {
		return nil
	}

	documents := make([]interface{}, len(records))
	for i := range records {
		documents[i] = records[i]
	}

	r, err := collection.InsertMany(ctx, documents)
	if err != nil {
		return err
	}

	Logger.Info("mongo> Inserted %d records into %s\n", len(r.InsertedIDs), collection.Name())
	return nil
}
