package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a topical grouping questions belong to. Categories are
// created once by the seed operation and read-only afterwards.
type Category struct {
	ID   primitive.ObjectID `json:"id"   bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}

// Question is a post in a category. The Author field is not stored; list
// operations resolve it from the users collection before responding.
type Question struct {
	ID         primitive.ObjectID `json:"id"         bson:"_id,omitempty"`
	Text       string             `json:"text"       bson:"text"`
	CategoryID primitive.ObjectID `json:"categoryId" bson:"category"`
	UserID     primitive.ObjectID `json:"userId"     bson:"user"`
	Author     string             `json:"author,omitempty" bson:"-"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}

// Answer is a reply to a question. Same lifecycle and author handling
// as Question.
type Answer struct {
	ID         primitive.ObjectID `json:"id"         bson:"_id,omitempty"`
	Text       string             `json:"text"       bson:"text"`
	QuestionID primitive.ObjectID `json:"questionId" bson:"question"`
	UserID     primitive.ObjectID `json:"userId"     bson:"user"`
	Author     string             `json:"author,omitempty" bson:"-"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}

// CreateQuestionRequest is the JSON body for POST /api/questions.
type CreateQuestionRequest struct {
	Text       string `json:"text"`
	CategoryID string `json:"categoryId"`
}

// CreateAnswerRequest is the JSON body for POST /api/answers.
type CreateAnswerRequest struct {
	Text       string `json:"text"`
	QuestionID string `json:"questionId"`
}
