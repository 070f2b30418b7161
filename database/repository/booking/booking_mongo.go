package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"bizschool/config"
	"bizschool/database"
	"bizschool/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookings *mongo.Collection
	sessions *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &MongoBookingRepo{
		bookings: db.Collection("bookings"),
		sessions: db.Collection("client_sessions"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	bookingIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "event_date", Value: 1}}},
		{Keys: bson.D{{Key: "session_id", Value: 1}}},
	}
	if _, err := r.bookings.Indexes().CreateMany(ctx, bookingIndexes); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	sessionIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "fingerprint", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.sessions.Indexes().CreateMany(ctx, sessionIndexes); err != nil {
		return fmt.Errorf("failed to create session indexes: %w", err)
	}
	return nil
}

// FindOrCreateSession upserts a session record keyed by fingerprint. A repeat
// visitor gets their existing session id back with a refreshed IP address.
func (r *MongoBookingRepo) FindOrCreateSession(session models.ClientSession) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"fingerprint": session.Fingerprint}
	update := bson.M{
		"$set": bson.M{
			"ip_address": session.IPAddress,
			"user_agent": session.UserAgent,
		},
		"$setOnInsert": bson.M{
			"id":          uuid.New().String(),
			"fingerprint": session.Fingerprint,
			"created_at":  time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.ClientSession
	if err := r.sessions.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return "", fmt.Errorf("failed to upsert client session: %w", err)
	}
	return stored.ID, nil
}

// Create inserts a new booking record.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.bookings.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookings.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

// ListByEventDateRange retrieves bookings with event dates in [from, to).
func (r *MongoBookingRepo) ListByEventDateRange(from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"event_date": bson.M{"$gte": from, "$lt": to}}
	opts := options.Find().SetSort(bson.D{{Key: "event_date", Value: 1}})

	cursor, err := r.bookings.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Booking
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return results, nil
}
