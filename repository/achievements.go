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

// AchievementsRepo stores unlocked badges. A (user_id, badge_type) pair
// is unique; inserts of an already-earned badge are rejected by the index.
type AchievementsRepo struct {
	MongoCollection *mongo.Collection
}

func GetAchievementsRepo(client *mongo.Client) *AchievementsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("ACHIEVEMENTS_COLLECTION", "achievements")
	return &AchievementsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *AchievementsRepo) InsertAchievement(ctx context.Context, achievement *model.Achievement) error {
	timer := utils.TrackDBOperation("insert", "achievements")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, achievement)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Already earned; unlocking is idempotent.
			return nil
		}
		utils.TrackError("database", "achievement_creation_failed")
		return err
	}
	return nil
}

// GetUserAchievements lists a user's badges, oldest first.
func (r *AchievementsRepo) GetUserAchievements(ctx context.Context, userID string) ([]*model.Achievement, error) {
	timer := utils.TrackDBOperation("find", "achievements")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "earned_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "achievement_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var achievements []*model.Achievement
	if err = cursor.All(ctx, &achievements); err != nil {
		utils.TrackError("database", "achievement_decode_failed")
		return nil, err
	}
	return achievements, nil
}

// GetEarnedBadgeTypes returns the set of badge types a user has unlocked.
func (r *AchievementsRepo) GetEarnedBadgeTypes(ctx context.Context, userID string) (map[string]bool, error) {
	achievements, err := r.GetUserAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	earned := make(map[string]bool, len(achievements))
	for _, a := range achievements {
		earned[a.BadgeType] = true
	}
	return earned, nil
}

// CountUserAchievements counts a user's unlocked badges.
func (r *AchievementsRepo) CountUserAchievements(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "achievements")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "achievement_count_failed")
		return 0, err
	}
	return int(count), nil
}
