package universe

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoCollection is the collection holding universe documents.
const mongoCollection = "universes"

// MongoConfig configures a MongoStore.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	URI string

	// Database is the database name. Required.
	Database string

	// Key selects which universe document to load. Multi-tenant
	// deployments store one document per key.
	Key string
}

// MongoStore loads the content tree from MongoDB. Used by server
// deployments where several instances share one content source.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	key    string

	mu   sync.Mutex
	memo *Universe
}

// mongoDoc wraps a universe with its lookup key.
type mongoDoc struct {
	Key      string   `bson:"key"`
	Universe Universe `bson:"universe"`
}

// NewMongoStore connects to MongoDB and returns a store for the universe
// under cfg.Key. The connection is verified with a ping before returning.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		return nil, errors.New("mongo store: database is required")
	}
	if cfg.Key == "" {
		cfg.Key = "default"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(mongoCollection),
		key:    cfg.Key,
	}, nil
}

// Load returns the memoized universe, fetching and normalizing the
// document on first use.
func (s *MongoStore) Load(ctx context.Context) (*Universe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.memo != nil {
		return s.memo, nil
	}

	var doc mongoDoc
	err := s.coll.FindOne(ctx, bson.M{"key": s.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("universe %q: %w", s.key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load universe %q: %w", s.key, err)
	}

	s.memo = Normalize(&doc.Universe)
	return s.memo, nil
}

// Invalidate drops the memoized tree; the next Load hits the database.
func (s *MongoStore) Invalidate() {
	s.mu.Lock()
	s.memo = nil
	s.mu.Unlock()
}

// Save upserts the universe document under the store's key and drops the
// memo so the next Load observes the write.
func (s *MongoStore) Save(ctx context.Context, u *Universe) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"key": s.key},
		mongoDoc{Key: s.key, Universe: *u},
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save universe %q: %w", s.key, err)
	}
	s.Invalidate()
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
