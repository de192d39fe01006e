package masterRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/pros100kyiv/HUBbase-sub001/database"
	"github.com/pros100kyiv/HUBbase-sub001/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMasterRepo implements MasterRepository using MongoDB.
type MongoMasterRepo struct {
	coll *mongo.Collection
}

// NewMongoMasterRepo creates a new instance of MasterRepository using MongoDB.
func NewMongoMasterRepo() MasterRepository {
	repo := &MongoMasterRepo{coll: database.Collection("masters")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMasterRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "createdAt", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoMasterRepo) GetByID(id string) (*models.Master, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var master models.Master
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&master); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch master with id %s: %w", id, err)
	}
	return &master, nil
}

func (r *MongoMasterRepo) GetAll() ([]models.Master, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch masters: %w", err)
	}
	defer cursor.Close(ctx)

	var masters []models.Master
	if err := cursor.All(ctx, &masters); err != nil {
		return nil, fmt.Errorf("failed to decode masters: %w", err)
	}
	return masters, nil
}

func (r *MongoMasterRepo) GetAllActive() ([]models.Master, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active masters: %w", err)
	}
	defer cursor.Close(ctx)

	var masters []models.Master
	if err := cursor.All(ctx, &masters); err != nil {
		return nil, fmt.Errorf("failed to decode masters: %w", err)
	}
	return masters, nil
}

// Create inserts a new master document.
func (r *MongoMasterRepo) Create(master *models.Master) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	master.CreatedAt = now
	master.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, master)
	if err != nil {
		return fmt.Errorf("failed to create master: %w", err)
	}
	return nil
}

// Update modifies an existing master document.
func (r *MongoMasterRepo) Update(master *models.Master) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	master.UpdatedAt = time.Now()
	filter := bson.M{"id": master.ID}
	update := bson.M{"$set": master}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update master with id %s: %w", master.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("master with id %s not found", master.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial update wrapped in $set.
func (r *MongoMasterRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	update := bson.M{"$set": updateDoc}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update master with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("master with id %s not found", id)
	}
	return nil
}

// Delete removes a master document by its ID.
func (r *MongoMasterRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete master with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("master with id %s not found", id)
	}
	return nil
}
