package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sessionsCollection := db.Collection(utils.GetEnvAsString("SESSIONS_COLLECTION", "pomodoro_sessions"))
	studyLogsCollection := db.Collection(utils.GetEnvAsString("STUDY_LOGS_COLLECTION", "study_stats"))
	tasksCollection := db.Collection(utils.GetEnvAsString("TASKS_COLLECTION", "tasks"))
	achievementsCollection := db.Collection(utils.GetEnvAsString("ACHIEVEMENTS_COLLECTION", "achievements"))
	usersCollection := db.Collection(utils.GetEnvAsString("USERS_COLLECTION", "users"))

	sessionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetName("user_sessions_date"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "session_type", Value: 1},
			},
			Options: options.Index().SetName("user_sessions_type"),
		},
	}

	studyLogIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetName("user_study_logs_date"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "subject", Value: 1},
			},
			Options: options.Index().SetName("user_study_logs_subject"),
		},
	}

	taskIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetName("user_tasks_date"),
		},
	}

	// Unique per-user badge type keeps achievement unlocks idempotent
	// even under racing derivation passes.
	achievementIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "badge_type", Value: 1},
			},
			Options: options.Index().
				SetName("user_badge_unique").
				SetUnique(true),
		},
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName("username_unique").
				SetUnique(true),
		},
	}

	type collectionIndexes struct {
		collection *mongo.Collection
		indexes    []mongo.IndexModel
	}

	for _, ci := range []collectionIndexes{
		{sessionsCollection, sessionIndexes},
		{studyLogsCollection, studyLogIndexes},
		{tasksCollection, taskIndexes},
		{achievementsCollection, achievementIndexes},
		{usersCollection, userIndexes},
	} {
		if _, err := ci.collection.Indexes().CreateMany(ctx, ci.indexes); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", ci.collection.Name(), err)
		}
		log.Printf("Indexes ready for collection %s", ci.collection.Name())
	}

	return nil
}
