package model

import "time"

// StudyLog records a practice block for a single subject. Append-only.
type StudyLog struct {
	LogID            string    `bson:"_id" json:"id"`
	UserID           string    `bson:"user_id" json:"user_id"`
	Subject          string    `bson:"subject" json:"subject"`
	QuestionsSolved  int       `bson:"questions_solved" json:"questions_solved"`
	CorrectAnswers   int       `bson:"correct_answers" json:"correct_answers"`
	TimeSpentMinutes int       `bson:"time_spent_minutes" json:"time_spent_minutes"`
	Date             string    `bson:"date" json:"date"` // YYYY-MM-DD
	Timestamp        time.Time `bson:"timestamp" json:"timestamp"`
}
