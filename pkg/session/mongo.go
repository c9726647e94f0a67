package session

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peircelab/peirce/pkg/errors"
)

// MongoStore persists sessions in a MongoDB collection, keyed by session ID.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

// NewMongoStore connects to the given URI and pings the server. Sessions are
// stored in the "sessions" collection of the named database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to ping mongodb")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection("sessions"),
	}, nil
}

// Get implements Store.
func (m *MongoStore) Get(ctx context.Context, id string) (*Session, error) {
	var s Session
	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session not found: %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to load session")
	}
	return &s, nil
}

// Put implements Store.
func (m *MongoStore) Put(ctx context.Context, s *Session) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := m.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, s, opts); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to store session")
	}
	return nil
}

// Delete implements Store.
func (m *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to delete session")
	}
	return nil
}

// List implements Store.
func (m *MongoStore) List(ctx context.Context) ([]*Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := m.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to list sessions")
	}
	defer cur.Close(ctx)

	var out []*Session
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to decode sessions")
	}
	return out, nil
}

// Close implements Store.
func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
