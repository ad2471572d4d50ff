package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/profilecard/backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type MongoProfileService struct {
	client      *mongo.Client
	db          *mongo.Database
	profilesCol *mongo.Collection
}

func NewMongoProfileService(ctx context.Context, mongoURI, dbName string) (*MongoProfileService, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	col := db.Collection("profiles")

	// Best-effort unique index; the application assumes a single profile,
	// the index guards email uniqueness regardless.
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoProfileService{
		client:      client,
		db:          db,
		profilesCol: col,
	}, nil
}

func (s *MongoProfileService) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// GetProfile fetches the singleton profile document.
func (s *MongoProfileService) GetProfile(ctx context.Context) (*models.Profile, error) {
	var prof models.Profile
	err := s.profilesCol.FindOne(ctx, bson.M{"_id": models.ProfileKey}).Decode(&prof)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &prof, nil
}

// CountProfiles reports how many profile documents exist. The seed routine
// uses it to decide whether a default profile is needed.
func (s *MongoProfileService) CountProfiles(ctx context.Context) (int64, error) {
	return s.profilesCol.CountDocuments(ctx, bson.M{})
}

// UpsertProfile writes the provided fields onto the singleton profile,
// creating the document when absent, and returns the resulting document.
func (s *MongoProfileService) UpsertProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error) {
	update.Normalize()
	if err := update.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	set := bson.M{
		"updatedAt": now,
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Interests != nil {
		set["interests"] = *update.Interests
	}
	if update.ProfilePicture != nil {
		set["profilePicture"] = *update.ProfilePicture
	}

	setOnInsert := bson.M{
		"createdAt": now,
	}
	if update.Interests == nil {
		setOnInsert["interests"] = []string{}
	}
	if update.ProfilePicture == nil {
		setOnInsert["profilePicture"] = ""
	}

	var prof models.Profile
	err := s.profilesCol.FindOneAndUpdate(
		ctx,
		bson.M{"_id": models.ProfileKey},
		bson.M{"$set": set, "$setOnInsert": setOnInsert},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&prof)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.NewAPIError(409, "Email is already in use")
		}
		return nil, err
	}
	return &prof, nil
}
