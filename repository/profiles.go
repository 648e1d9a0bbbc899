package repository

import (
	"context"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProfilesRepo stores the derived profile snapshot, one document per user.
type ProfilesRepo struct {
	MongoCollection *mongo.Collection
}

func GetProfilesRepo(client *mongo.Client) *ProfilesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("PROFILES_COLLECTION", "profiles")
	return &ProfilesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// GetProfile returns the stored profile, or nil when none exists yet.
func (r *ProfilesRepo) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	timer := utils.TrackDBOperation("find", "profiles")
	defer timer.ObserveDuration()

	var profile model.Profile
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "profile_lookup_failed")
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile replaces the whole derived snapshot in one write, so a
// reader never observes a partially updated profile.
func (r *ProfilesRepo) UpsertProfile(ctx context.Context, profile *model.Profile) error {
	timer := utils.TrackDBOperation("upsert", "profiles")
	defer timer.ObserveDuration()

	opts := options.Replace().SetUpsert(true)
	_, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": profile.UserID}, profile, opts)
	if err != nil {
		utils.TrackError("database", "profile_upsert_failed")
		return err
	}
	return nil
}

// UpdateNotificationSettings writes the one caller-editable profile field.
func (r *ProfilesRepo) UpdateNotificationSettings(ctx context.Context, userID string, settings model.NotificationSettings) error {
	timer := utils.TrackDBOperation("update", "profiles")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{"notification_settings": settings}}
	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		utils.TrackError("database", "profile_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
