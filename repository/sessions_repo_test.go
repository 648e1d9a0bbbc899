package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"main/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Needs a live MongoDB; set MONGO_TEST_URI to run.
func testCollection(t *testing.T, name string) (*mongo.Collection, func()) {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	coll := client.Database("studyfocus_test").Collection(name)
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		coll.Drop(ctx)
		client.Disconnect(ctx)
	}
	return coll, cleanup
}

func TestSessionsRepoAppendAndQuery(t *testing.T) {
	coll, cleanup := testCollection(t, "pomodoro_sessions")
	defer cleanup()

	repo := SessionsRepo{MongoCollection: coll}
	userID := uuid.New().String()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sessions := []*model.FocusSession{
		{SessionID: uuid.New().String(), UserID: userID, SessionType: model.SessionWork, DurationMinutes: 25, Subject: "Math", Date: "2026-03-09", Timestamp: time.Now().Add(-time.Hour)},
		{SessionID: uuid.New().String(), UserID: userID, SessionType: model.SessionWork, DurationMinutes: 25, Subject: "Physics", Date: "2026-03-10", Timestamp: time.Now()},
		{SessionID: uuid.New().String(), UserID: userID, SessionType: model.SessionBreak, DurationMinutes: 5, Date: "2026-03-10", Timestamp: time.Now()},
	}
	for _, s := range sessions {
		if err := repo.CreateSession(ctx, s); err != nil {
			t.Fatalf("failed to create session: %v", err)
		}
	}

	t.Run("GetUserSessions", func(t *testing.T) {
		got, err := repo.GetUserSessions(ctx, userID)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 sessions, got %d", len(got))
		}
		if got[0].Subject != "Math" {
			t.Fatalf("expected timestamp ordering, first subject %q", got[0].Subject)
		}
	})

	t.Run("GetSessionsByDate", func(t *testing.T) {
		got, err := repo.GetSessionsByDate(ctx, userID, "2026-03-10")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 sessions on the day, got %d", len(got))
		}
	})

	t.Run("GetSessionsInRange", func(t *testing.T) {
		got, err := repo.GetSessionsInRange(ctx, userID, "2026-03-09", "2026-03-09")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 session in range, got %d", len(got))
		}
	})

	t.Run("CountWorkSessions", func(t *testing.T) {
		count, err := repo.CountWorkSessions(ctx, userID)
		if err != nil {
			t.Fatal(err)
		}
		if count != 2 {
			t.Fatalf("expected 2 work sessions, got %d", count)
		}
	})

	t.Run("OtherUserIsolated", func(t *testing.T) {
		got, err := repo.GetUserSessions(ctx, uuid.New().String())
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no sessions for other user, got %d", len(got))
		}
	})
}
