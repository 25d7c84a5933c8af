package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ayush/pet-qa-forum/internal/models"
)

// MemoryStore is an in-memory Store used by tests and local development.
// It mirrors the Mongo implementation's ordering: creation time ascending
// with insertion order breaking ties.
type MemoryStore struct {
	mu         sync.RWMutex
	users      []models.User
	categories []models.Category
	questions  []memQuestion
	answers    []memAnswer
	seq        int
}

type memQuestion struct {
	models.Question
	seq int
}

type memAnswer struct {
	models.Answer
	seq int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) CreateUser(_ context.Context, username, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return nil, ErrDuplicate
		}
	}
	u := models.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.users = append(s.users, u)
	return &u, nil
}

func (s *MemoryStore) UserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UsernamesByID(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	want := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make(map[primitive.ObjectID]string, len(ids))
	for _, u := range s.users {
		if want[u.ID] {
			out[u.ID] = u.Username
		}
	}
	return out, nil
}

func (s *MemoryStore) InsertCategories(_ context.Context, names []string) ([]models.Category, error) {
	s.mu.Lock()
	for _, name := range names {
		s.categories = append(s.categories, models.Category{ID: primitive.NewObjectID(), Name: name})
	}
	s.mu.Unlock()
	return s.ListCategories(context.Background())
}

func (s *MemoryStore) ListCategories(_ context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) CountCategories(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.categories)), nil
}

func (s *MemoryStore) CategoryByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) InsertQuestion(_ context.Context, q *models.Question) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.ID = primitive.NewObjectID()
	q.CreatedAt = time.Now().UTC()
	s.seq++
	s.questions = append(s.questions, memQuestion{Question: *q, seq: s.seq})
	return q, nil
}

func (s *MemoryStore) ListQuestionsByCategory(_ context.Context, categoryID primitive.ObjectID) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []memQuestion
	for _, q := range s.questions {
		if q.CategoryID == categoryID {
			matched = append(matched, q)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].seq < matched[j].seq
	})
	out := make([]models.Question, 0, len(matched))
	for _, q := range matched {
		out = append(out, q.Question)
	}
	return out, nil
}

func (s *MemoryStore) CountQuestions(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.questions)), nil
}

func (s *MemoryStore) QuestionByID(_ context.Context, id primitive.ObjectID) (*models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.questions {
		if q.Question.ID == id {
			out := q.Question
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) InsertAnswer(_ context.Context, a *models.Answer) (*models.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now().UTC()
	s.seq++
	s.answers = append(s.answers, memAnswer{Answer: *a, seq: s.seq})
	return a, nil
}

func (s *MemoryStore) ListAnswersByQuestion(_ context.Context, questionID primitive.ObjectID) ([]models.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []memAnswer
	for _, a := range s.answers {
		if a.QuestionID == questionID {
			matched = append(matched, a)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].seq < matched[j].seq
	})
	out := make([]models.Answer, 0, len(matched))
	for _, a := range matched {
		out = append(out, a.Answer)
	}
	return out, nil
}

func (s *MemoryStore) DeleteAllQuestions(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = nil
	return nil
}

func (s *MemoryStore) DeleteAllAnswers(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = nil
	return nil
}
