package model

import "time"

// FeedbackKind classifies a feedback event from the client app
type FeedbackKind string

const (
	FeedbackHelpful    FeedbackKind = "helpful"
	FeedbackNotHelpful FeedbackKind = "not_helpful"
	FeedbackDismissed  FeedbackKind = "dismissed"
)

// Feedback is a client feedback event about an intervention
type Feedback struct {
	ID         string       `json:"id" bson:"_id,omitempty"`
	ClientID   string       `json:"clientId" bson:"clientId"`
	ContentURL string       `json:"contentUrl" bson:"contentUrl"`
	Kind       FeedbackKind `json:"kind" bson:"kind"`
	Comment    string       `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt  time.Time    `json:"createdAt" bson:"createdAt"`
}

// RecallGrade records the client's grading of a recall question attempt
type RecallGrade struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	ClientID     string       `json:"clientId" bson:"clientId"`
	ContentURL   string       `json:"contentUrl" bson:"contentUrl"`
	QuestionType QuestionType `json:"questionType" bson:"questionType"`
	Question     string       `json:"question" bson:"question"`
	Answer       string       `json:"answer,omitempty" bson:"answer,omitempty"`
	Correct      bool         `json:"correct" bson:"correct"`
	GradedAt     time.Time    `json:"gradedAt" bson:"gradedAt"`
}
