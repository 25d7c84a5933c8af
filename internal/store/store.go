// Package store defines the persistence interface over the four record
// collections and its MongoDB and in-memory implementations.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ayush/pet-qa-forum/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("already exists")
)

// Store is the persistence boundary. Single-record inserts are atomic;
// no operation spans more than one write.
type Store interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// UsernamesByID resolves author usernames for a batch of user ids.
	// Unknown ids are simply absent from the result.
	UsernamesByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)

	InsertCategories(ctx context.Context, names []string) ([]models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	CountCategories(ctx context.Context) (int64, error)
	CategoryByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)

	InsertQuestion(ctx context.Context, q *models.Question) (*models.Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Question, error)
	CountQuestions(ctx context.Context) (int64, error)
	QuestionByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error)

	InsertAnswer(ctx context.Context, a *models.Answer) (*models.Answer, error)
	ListAnswersByQuestion(ctx context.Context, questionID primitive.ObjectID) ([]models.Answer, error)

	DeleteAllQuestions(ctx context.Context) error
	DeleteAllAnswers(ctx context.Context) error
}
