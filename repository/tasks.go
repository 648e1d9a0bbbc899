package repository

import (
	"context"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TasksRepo holds the one mutable collection: tasks support partial
// updates and deletion, unlike the ledger records.
type TasksRepo struct {
	MongoCollection *mongo.Collection
}

func GetTasksRepo(client *mongo.Client) *TasksRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("TASKS_COLLECTION", "tasks")
	return &TasksRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *TasksRepo) CreateTask(ctx context.Context, task *model.Task) error {
	timer := utils.TrackDBOperation("insert", "tasks")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, task)
	if err != nil {
		utils.TrackError("database", "task_creation_failed")
		return err
	}
	return nil
}

// GetUserTasks lists a user's tasks, optionally filtered by date.
func (r *TasksRepo) GetUserTasks(ctx context.Context, userID, date string) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if date != "" {
		filter["date"] = date
	}

	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		utils.TrackError("database", "task_decode_failed")
		return nil, err
	}
	return tasks, nil
}

func (r *TasksRepo) GetTaskByID(ctx context.Context, taskID, userID string) (*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	var task model.Task
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": taskID, "user_id": userID}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.ErrTaskNotFound
		}
		utils.TrackError("database", "task_lookup_failed")
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update and returns the updated task.
func (r *TasksRepo) UpdateTask(ctx context.Context, taskID, userID string, updates *model.TaskUpdate) (*model.Task, error) {
	timer := utils.TrackDBOperation("update", "tasks")
	defer timer.ObserveDuration()

	set := bson.M{"updated_at": time.Now()}
	if updates.Title != nil {
		set["title"] = *updates.Title
	}
	if updates.Subject != nil {
		set["subject"] = *updates.Subject
	}
	if updates.Description != nil {
		set["description"] = *updates.Description
	}
	if updates.Completed != nil {
		set["completed"] = *updates.Completed
	}
	if updates.Priority != nil {
		set["priority"] = *updates.Priority
	}
	if updates.Date != nil {
		set["date"] = *updates.Date
	}
	if updates.DurationMinutes != nil {
		set["duration_minutes"] = *updates.DurationMinutes
	}

	filter := bson.M{"_id": taskID, "user_id": userID}
	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		utils.TrackError("database", "task_update_failed")
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, model.ErrTaskNotFound
	}

	return r.GetTaskByID(ctx, taskID, userID)
}

func (r *TasksRepo) DeleteTask(ctx context.Context, taskID, userID string) error {
	timer := utils.TrackDBOperation("delete", "tasks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": taskID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "task_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return model.ErrTaskNotFound
	}
	return nil
}

// GetTasksByDate returns a user's tasks for one calendar day.
func (r *TasksRepo) GetTasksByDate(ctx context.Context, userID, date string) ([]*model.Task, error) {
	return r.GetUserTasks(ctx, userID, date)
}

// GetTasksInRange returns a user's tasks with from <= date <= to.
func (r *TasksRepo) GetTasksInRange(ctx context.Context, userID, from, to string) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		utils.TrackError("database", "task_decode_failed")
		return nil, err
	}
	return tasks, nil
}
