package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const collectionName = "payment_events"

type inserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// MongoJournal keeps an append-only audit trail of provider events.
type MongoJournal struct {
	client *mongo.Client
	events inserter
}

func Connect(ctx context.Context, uri, database string, connectTimeout time.Duration) (*MongoJournal, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	events := client.Database(database).Collection(collectionName)
	_, err = events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "event_id", Value: 1}, {Key: "received_at", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create journal index: %w", err)
	}

	return &MongoJournal{client: client, events: events}, nil
}

func (j *MongoJournal) Record(ctx context.Context, rec domain.PaymentRecord) error {
	if rec.ReceivedAt.IsZero() {
		rec.ReceivedAt = time.Now().UTC()
	}
	if _, err := j.events.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert payment record %s: %w", rec.EventID, err)
	}
	return nil
}

func (j *MongoJournal) Close(ctx context.Context) error {
	if j.client == nil {
		return nil
	}
	return j.client.Disconnect(ctx)
}

// LogJournal writes records to the application log. Used when mongo is not configured.
type LogJournal struct {
	logger logger.Logger
}

func NewLogJournal(logger logger.Logger) *LogJournal {
	return &LogJournal{logger: logger}
}

func (j *LogJournal) Record(ctx context.Context, rec domain.PaymentRecord) error {
	j.logger.LogAttrs(ctx, logger.InfoLevel, "payment event",
		logger.String("event_id", rec.EventID),
		logger.String("kind", rec.Kind),
		logger.String("booking_id", rec.BookingID),
		logger.String("outcome", string(rec.Outcome)),
		logger.String("error", rec.Error),
	)
	return nil
}
