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

// StudyLogsRepo is the append-only store of practice logs.
type StudyLogsRepo struct {
	MongoCollection *mongo.Collection
}

func GetStudyLogsRepo(client *mongo.Client) *StudyLogsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("STUDY_LOGS_COLLECTION", "study_stats")
	return &StudyLogsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateStudyLog appends a practice log record.
func (r *StudyLogsRepo) CreateStudyLog(ctx context.Context, log *model.StudyLog) error {
	timer := utils.TrackDBOperation("insert", "study_stats")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, log)
	if err != nil {
		utils.TrackError("database", "study_log_creation_failed")
		return err
	}
	return nil
}

// GetUserStudyLogs returns every practice log for a user, oldest first.
func (r *StudyLogsRepo) GetUserStudyLogs(ctx context.Context, userID string) ([]*model.StudyLog, error) {
	timer := utils.TrackDBOperation("find", "study_stats")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "study_log_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*model.StudyLog
	if err = cursor.All(ctx, &logs); err != nil {
		utils.TrackError("database", "study_log_decode_failed")
		return nil, err
	}
	return logs, nil
}

// ListStudyLogs filters a user's logs by optional date and subject.
func (r *StudyLogsRepo) ListStudyLogs(ctx context.Context, userID, date, subject string) ([]*model.StudyLog, error) {
	timer := utils.TrackDBOperation("find", "study_stats")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if date != "" {
		filter["date"] = date
	}
	if subject != "" {
		filter["subject"] = subject
	}

	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "study_log_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*model.StudyLog
	if err = cursor.All(ctx, &logs); err != nil {
		utils.TrackError("database", "study_log_decode_failed")
		return nil, err
	}
	return logs, nil
}

// GetStudyLogsInRange returns a user's logs with from <= date <= to.
func (r *StudyLogsRepo) GetStudyLogsInRange(ctx context.Context, userID, from, to string) ([]*model.StudyLog, error) {
	timer := utils.TrackDBOperation("find", "study_stats")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "study_log_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*model.StudyLog
	if err = cursor.All(ctx, &logs); err != nil {
		utils.TrackError("database", "study_log_decode_failed")
		return nil, err
	}
	return logs, nil
}
