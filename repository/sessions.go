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

// SessionsRepo is the append-only store of completed pomodoro sessions.
// There are deliberately no update or delete methods.
type SessionsRepo struct {
	MongoCollection *mongo.Collection
}

func GetSessionsRepo(client *mongo.Client) *SessionsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("SESSIONS_COLLECTION", "pomodoro_sessions")
	return &SessionsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateSession appends a completed session record.
func (r *SessionsRepo) CreateSession(ctx context.Context, session *model.FocusSession) error {
	timer := utils.TrackDBOperation("insert", "pomodoro_sessions")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, session)
	if err != nil {
		utils.TrackError("database", "session_creation_failed")
		return err
	}
	return nil
}

// GetUserSessions returns every session record for a user, oldest first.
func (r *SessionsRepo) GetUserSessions(ctx context.Context, userID string) ([]*model.FocusSession, error) {
	timer := utils.TrackDBOperation("find", "pomodoro_sessions")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "session_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.FocusSession
	if err = cursor.All(ctx, &sessions); err != nil {
		utils.TrackError("database", "session_decode_failed")
		return nil, err
	}
	return sessions, nil
}

// GetSessionsByDate returns a user's sessions for one calendar day.
func (r *SessionsRepo) GetSessionsByDate(ctx context.Context, userID, date string) ([]*model.FocusSession, error) {
	timer := utils.TrackDBOperation("find", "pomodoro_sessions")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID, "date": date})
	if err != nil {
		utils.TrackError("database", "session_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.FocusSession
	if err = cursor.All(ctx, &sessions); err != nil {
		utils.TrackError("database", "session_decode_failed")
		return nil, err
	}
	return sessions, nil
}

// GetSessionsInRange returns a user's sessions with from <= date <= to.
// Dates are YYYY-MM-DD strings, so lexicographic range matches calendar order.
func (r *SessionsRepo) GetSessionsInRange(ctx context.Context, userID, from, to string) ([]*model.FocusSession, error) {
	timer := utils.TrackDBOperation("find", "pomodoro_sessions")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "session_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.FocusSession
	if err = cursor.All(ctx, &sessions); err != nil {
		utils.TrackError("database", "session_decode_failed")
		return nil, err
	}
	return sessions, nil
}

// CountWorkSessions counts a user's completed work sessions.
func (r *SessionsRepo) CountWorkSessions(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "pomodoro_sessions")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx,
		bson.M{"user_id": userID, "session_type": model.SessionWork})
	if err != nil {
		utils.TrackError("database", "session_count_failed")
		return 0, err
	}
	return int(count), nil
}
