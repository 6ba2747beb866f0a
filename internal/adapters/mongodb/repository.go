// Package mongodb implements the quote repository port on top of the
// official MongoDB driver. All driver errors are mapped to domain errors
// before they leave this package.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// ServiceName identifies this adapter in domain errors and health checks.
const ServiceName = "mongodb"

// quoteDocument is the write model for a quote record. The bson/json dual
// shape follows the stored layout the API exposes; template is always
// present, null when absent.
type quoteDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Text      string             `bson:"text"`
	Author    string             `bson:"author"`
	Tags      []string           `bson:"tags"`
	Template  *string            `bson:"template"`
	CreatedAt time.Time          `bson:"created_at"`
}

// Config contains settings for the MongoDB repository.
type Config struct {
	// URI is the connection string (mongodb:// or mongodb+srv://).
	URI string

	// Database is the database name.
	Database string

	// Collection is the quote collection name.
	Collection string

	// ConnectTimeout bounds the initial connect and every ping.
	ConnectTimeout time.Duration

	// Logger is the structured logger.
	Logger *slog.Logger
}

// Repository is the MongoDB-backed quote repository. It also implements
// ports.HealthChecker via Name/Check.
type Repository struct {
	client  *mongo.Client
	db      *mongo.Database
	coll    *mongo.Collection
	timeout time.Duration
	logger  *slog.Logger
}

// Connect establishes a client session and verifies connectivity with a
// ping before returning the repository.
func Connect(ctx context.Context, cfg Config) (*Repository, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		// Ping failure leaves a half-open client behind; disconnect it.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	db := client.Database(cfg.Database)

	return &Repository{
		client:  client,
		db:      db,
		coll:    db.Collection(cfg.Collection),
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Close disconnects the underlying client.
func (r *Repository) Close(ctx context.Context) error {
	if err := r.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb disconnect: %w", err)
	}

	return nil
}

// Insert persists a new quote, stamping created_at, and returns the
// hex form of the assigned ObjectID.
func (r *Repository) Insert(ctx context.Context, q domain.Quote) (string, error) {
	doc := quoteDocument{
		Text:      q.Text,
		Author:    q.Author,
		Tags:      q.Tags,
		Template:  q.Template,
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", unavailable("insert", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", unavailable("insert", fmt.Errorf("unexpected id type %T", res.InsertedID))
	}

	return oid.Hex(), nil
}

// Find returns up to limit records matching the tag filter in natural
// retrieval order.
func (r *Repository) Find(ctx context.Context, tag string, limit int64) ([]domain.Document, error) {
	cursor, err := r.coll.Find(ctx, tagFilter(tag), options.Find().SetLimit(limit))
	if err != nil {
		return nil, unavailable("find", err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, unavailable("find", err)
	}

	docs := make([]domain.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, decodeDocument(m))
	}

	return docs, nil
}

// Count reports how many records match the tag filter.
func (r *Repository) Count(ctx context.Context, tag string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, tagFilter(tag))
	if err != nil {
		return 0, unavailable("count", err)
	}

	return n, nil
}

// SampleOne returns one uniformly-sampled record matching the tag filter,
// using the server-side $sample stage. Uniformity is whatever the server
// provides.
func (r *Repository) SampleOne(ctx context.Context, tag string) (*domain.Document, error) {
	pipeline := mongo.Pipeline{}
	if tag != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: tagFilter(tag)}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}})

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, unavailable("sample", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, unavailable("sample", err)
		}

		return nil, domain.NewNotFoundError("quotes", tag)
	}

	var m bson.M
	if err := cursor.Decode(&m); err != nil {
		return nil, unavailable("sample", err)
	}

	doc := decodeDocument(m)

	return &doc, nil
}

// CollectionNames enumerates visible collections in the database.
func (r *Repository) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, unavailable("list collections", err)
	}

	return names, nil
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string { return ServiceName }

// Check implements ports.HealthChecker with a bounded ping.
func (r *Repository) Check(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping: %w", err)
	}

	return nil
}

// tagFilter builds the find/count filter for an optional tag. The $in
// shape matches records whose tags array contains the tag exactly.
func tagFilter(tag string) bson.M {
	if tag == "" {
		return bson.M{}
	}

	return bson.M{"tags": bson.M{"$in": bson.A{tag}}}
}

// unavailable wraps a driver error as a domain unavailable error, except
// for context cancellation which passes through untouched.
func unavailable(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return domain.NewUnavailableError(ServiceName, fmt.Sprintf("%s: %v", op, err))
}
