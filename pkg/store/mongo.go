package store

import (
	"context"
	"fmt"

	"podcast-metrics/pkg/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	rawCollection      = "raw_episodes"
	enrichedCollection = "episodes"
	reportCollection   = "missing_episodes"
)

// MongoStore upserts episode rows by video id, so re-running a month's
// extraction refreshes counters instead of duplicating rows. The report
// collection is replaced wholesale each run.
type MongoStore struct {
	mongoClient *mongo.Client
	database    *mongo.Database
}

// NewMongoStore creates a new MongoDB-backed store.
func NewMongoStore(connectionString, databaseName string) *MongoStore {
	clientOptions := options.Client().ApplyURI(connectionString)
	mongoClient, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		// Return store with nil - error will be caught during Connect()
		return &MongoStore{}
	}

	return &MongoStore{
		mongoClient: mongoClient,
		database:    mongoClient.Database(databaseName),
	}
}

// Connect establishes connection to MongoDB
func (s *MongoStore) Connect(ctx context.Context) error {
	if s.mongoClient == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	return s.mongoClient.Ping(ctx, nil)
}

// Close closes the MongoDB connection
func (s *MongoStore) Close(ctx context.Context) error {
	if s.mongoClient == nil {
		return nil
	}
	return s.mongoClient.Disconnect(ctx)
}

// SaveRaw upserts the raw table by video id.
func (s *MongoStore) SaveRaw(ctx context.Context, rows []domain.RawEpisode) error {
	if s.database == nil {
		return fmt.Errorf("mongo database not initialized")
	}

	collection := s.database.Collection(rawCollection)
	for _, row := range rows {
		filter := bson.M{"video_id": row.VideoID}
		update := bson.M{"$set": row}
		opts := options.Update().SetUpsert(true)

		if _, err := collection.UpdateOne(ctx, filter, update, opts); err != nil {
			return fmt.Errorf("upsert raw episode %s: %w", row.VideoID, err)
		}
	}
	return nil
}

// SaveEnriched upserts the enriched table by video id.
func (s *MongoStore) SaveEnriched(ctx context.Context, rows []domain.EnrichedEpisode) error {
	if s.database == nil {
		return fmt.Errorf("mongo database not initialized")
	}

	collection := s.database.Collection(enrichedCollection)
	for _, row := range rows {
		filter := bson.M{"video_id": row.VideoID}
		update := bson.M{"$set": row}
		opts := options.Update().SetUpsert(true)

		if _, err := collection.UpdateOne(ctx, filter, update, opts); err != nil {
			return fmt.Errorf("upsert episode %s: %w", row.VideoID, err)
		}
	}
	return nil
}

// SaveMissingReport replaces the report collection with this run's rows.
func (s *MongoStore) SaveMissingReport(ctx context.Context, rows []domain.MissingEpisode) error {
	if s.database == nil {
		return fmt.Errorf("mongo database not initialized")
	}

	collection := s.database.Collection(reportCollection)
	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear missing-episode report: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	documents := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		documents = append(documents, row)
	}
	if _, err := collection.InsertMany(ctx, documents); err != nil {
		return fmt.Errorf("insert missing-episode report: %w", err)
	}
	return nil
}
