// Package content implements categories, questions and answers: seeding,
// listing with author resolution, and token-gated creation.
package content

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/ayush/pet-qa-forum/internal/apperr"
	"github.com/ayush/pet-qa-forum/internal/models"
	"github.com/ayush/pet-qa-forum/internal/store"
)

// Service implements the content operations over the store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// SeedCategories inserts the starter category set. It is idempotent: if
// any category already exists it does nothing.
func (s *Service) SeedCategories(ctx context.Context) (string, error) {
	n, err := s.store.CountCategories(ctx)
	if err != nil {
		return "", apperr.Storage("Seeding categories failed", err)
	}
	if n > 0 {
		return "Categories already exist", nil
	}
	if _, err := s.store.InsertCategories(ctx, seedCategoryNames); err != nil {
		return "", apperr.Storage("Seeding categories failed", err)
	}
	return "Categories seeded", nil
}

// SeedDemoData populates demo users, questions and answers. It is a no-op
// if any question exists, and requires categories to be seeded first.
func (s *Service) SeedDemoData(ctx context.Context) (string, error) {
	n, err := s.store.CountQuestions(ctx)
	if err != nil {
		return "", apperr.Storage("Seeding demo data failed", err)
	}
	if n > 0 {
		return "Demo data already exists", nil
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return "", apperr.Storage("Seeding demo data failed", err)
	}
	if len(categories) == 0 {
		return "", apperr.Precondition("Seed categories first")
	}

	var users [2]*models.User
	for i, name := range seedUsernames {
		u, err := s.findOrCreateUser(ctx, name)
		if err != nil {
			return "", apperr.Storage("Seeding demo data failed", err)
		}
		users[i] = u
	}

	questionCount, answerCount := 0, 0
	for _, cat := range categories {
		for _, sq := range seedQuestions[cat.Name] {
			q, err := s.store.InsertQuestion(ctx, &models.Question{
				Text:       sq.text,
				CategoryID: cat.ID,
				UserID:     users[sq.author].ID,
			})
			if err != nil {
				return "", apperr.Storage("Seeding demo data failed", err)
			}
			questionCount++

			// Answers alternate authors, starting opposite the asker.
			_, err = s.store.InsertAnswer(ctx, &models.Answer{
				Text:       fmt.Sprintf("This is a helpful answer for: %q", q.Text),
				QuestionID: q.ID,
				UserID:     users[1-sq.author].ID,
			})
			if err != nil {
				return "", apperr.Storage("Seeding demo data failed", err)
			}
			answerCount++
		}
	}

	return fmt.Sprintf("%d questions and %d answers seeded successfully", questionCount, answerCount), nil
}

func (s *Service) findOrCreateUser(ctx context.Context, username string) (*models.User, error) {
	u, err := s.store.UserByUsername(ctx, username)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.store.CreateUser(ctx, username, string(hashed))
}

// ListCategories returns all categories, name ascending.
func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	cats, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, apperr.Storage("Failed to load categories", err)
	}
	return cats, nil
}

// ListQuestions returns the questions of a category, creation time
// ascending, with author usernames resolved.
func (s *Service) ListQuestions(ctx context.Context, categoryID string) ([]models.Question, error) {
	id, err := parseID(categoryID, "categoryId")
	if err != nil {
		return nil, err
	}
	qs, err := s.store.ListQuestionsByCategory(ctx, id)
	if err != nil {
		return nil, apperr.Storage("Failed to load questions", err)
	}
	ids := make([]primitive.ObjectID, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.UserID)
	}
	names, err := s.store.UsernamesByID(ctx, ids)
	if err != nil {
		return nil, apperr.Storage("Failed to load questions", err)
	}
	for i := range qs {
		qs[i].Author = names[qs[i].UserID]
	}
	return qs, nil
}

// ListAnswers returns the answers of a question, creation time ascending,
// with author usernames resolved.
func (s *Service) ListAnswers(ctx context.Context, questionID string) ([]models.Answer, error) {
	id, err := parseID(questionID, "questionId")
	if err != nil {
		return nil, err
	}
	as, err := s.store.ListAnswersByQuestion(ctx, id)
	if err != nil {
		return nil, apperr.Storage("Failed to load answers", err)
	}
	ids := make([]primitive.ObjectID, 0, len(as))
	for _, a := range as {
		ids = append(ids, a.UserID)
	}
	names, err := s.store.UsernamesByID(ctx, ids)
	if err != nil {
		return nil, apperr.Storage("Failed to load answers", err)
	}
	for i := range as {
		as[i].Author = names[as[i].UserID]
	}
	return as, nil
}

// CreateQuestion persists a new question for an authenticated user. The
// category reference is checked before the write.
func (s *Service) CreateQuestion(ctx context.Context, userID primitive.ObjectID, req models.CreateQuestionRequest) (*models.Question, error) {
	if req.Text == "" || req.CategoryID == "" {
		return nil, apperr.Validation("", "Text and categoryId are required")
	}
	catID, err := parseID(req.CategoryID, "categoryId")
	if err != nil {
		return nil, err
	}
	if _, err := s.store.CategoryByID(ctx, catID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Validation("categoryId", "Category does not exist")
		}
		return nil, apperr.Storage("Failed to create question", err)
	}
	q, err := s.store.InsertQuestion(ctx, &models.Question{
		Text:       req.Text,
		CategoryID: catID,
		UserID:     userID,
	})
	if err != nil {
		return nil, apperr.Storage("Failed to create question", err)
	}
	return q, nil
}

// CreateAnswer persists a new answer for an authenticated user. The
// question reference is checked before the write.
func (s *Service) CreateAnswer(ctx context.Context, userID primitive.ObjectID, req models.CreateAnswerRequest) (*models.Answer, error) {
	if req.Text == "" || req.QuestionID == "" {
		return nil, apperr.Validation("", "Text and questionId are required")
	}
	qID, err := parseID(req.QuestionID, "questionId")
	if err != nil {
		return nil, err
	}
	if _, err := s.store.QuestionByID(ctx, qID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Validation("questionId", "Question does not exist")
		}
		return nil, apperr.Storage("Failed to create answer", err)
	}
	a, err := s.store.InsertAnswer(ctx, &models.Answer{
		Text:       req.Text,
		QuestionID: qID,
		UserID:     userID,
	})
	if err != nil {
		return nil, apperr.Storage("Failed to create answer", err)
	}
	return a, nil
}

// WipeDemoData deletes all answers and questions. Development only; the
// router mounts it only when dev endpoints are enabled.
func (s *Service) WipeDemoData(ctx context.Context) (string, error) {
	if err := s.store.DeleteAllAnswers(ctx); err != nil {
		return "", apperr.Storage("Wipe failed", err)
	}
	if err := s.store.DeleteAllQuestions(ctx); err != nil {
		return "", apperr.Storage("Wipe failed", err)
	}
	return "All questions and answers wiped", nil
}

func parseID(raw, field string) (primitive.ObjectID, error) {
	if raw == "" {
		return primitive.NilObjectID, apperr.Validation(field, field+" is required")
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperr.Validation(field, "invalid "+field)
	}
	return id, nil
}
