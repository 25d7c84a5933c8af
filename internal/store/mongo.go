package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ayush/pet-qa-forum/internal/models"
)

// MongoStore handles all record CRUD in MongoDB, one collection per kind.
type MongoStore struct {
	users      *mongo.Collection
	categories *mongo.Collection
	questions  *mongo.Collection
	answers    *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		users:      db.Collection("users"),
		categories: db.Collection("categories"),
		questions:  db.Collection("questions"),
		answers:    db.Collection("answers"),
	}
}

// EnsureIndexes creates the unique username index and the listing indexes.
// Safe to call on every startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users index: %w", err)
	}
	_, err = s.questions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("questions index: %w", err)
	}
	_, err = s.answers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "question", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("answers index: %w", err)
	}
	return nil
}

func (s *MongoStore) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	u := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	res, err := s.users.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

func (s *MongoStore) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.users.FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *MongoStore) UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *MongoStore) UsernamesByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	out := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u.Username
	}
	return out, nil
}

func (s *MongoStore) InsertCategories(ctx context.Context, names []string) ([]models.Category, error) {
	docs := make([]any, 0, len(names))
	for _, name := range names {
		docs = append(docs, models.Category{ID: primitive.NewObjectID(), Name: name})
	}
	if _, err := s.categories.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("insert categories: %w", err)
	}
	return s.ListCategories(ctx)
}

func (s *MongoStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := s.categories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *MongoStore) CountCategories(ctx context.Context) (int64, error) {
	return s.categories.CountDocuments(ctx, bson.M{})
}

func (s *MongoStore) CategoryByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var c models.Category
	if err := s.categories.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *MongoStore) InsertQuestion(ctx context.Context, q *models.Question) (*models.Question, error) {
	q.CreatedAt = time.Now().UTC()
	res, err := s.questions.InsertOne(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("insert question: %w", err)
	}
	q.ID = res.InsertedID.(primitive.ObjectID)
	return q, nil
}

func (s *MongoStore) ListQuestionsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Question, error) {
	// _id breaks created_at ties: BSON timestamps have millisecond
	// resolution and seeded records can share one.
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.questions.Find(ctx, bson.M{"category": categoryID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var qs []models.Question
	if err := cur.All(ctx, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

func (s *MongoStore) CountQuestions(ctx context.Context) (int64, error) {
	return s.questions.CountDocuments(ctx, bson.M{})
}

func (s *MongoStore) QuestionByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error) {
	var q models.Question
	if err := s.questions.FindOne(ctx, bson.M{"_id": id}).Decode(&q); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (s *MongoStore) InsertAnswer(ctx context.Context, a *models.Answer) (*models.Answer, error) {
	a.CreatedAt = time.Now().UTC()
	res, err := s.answers.InsertOne(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("insert answer: %w", err)
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return a, nil
}

func (s *MongoStore) ListAnswersByQuestion(ctx context.Context, questionID primitive.ObjectID) ([]models.Answer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.answers.Find(ctx, bson.M{"question": questionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var as []models.Answer
	if err := cur.All(ctx, &as); err != nil {
		return nil, err
	}
	return as, nil
}

func (s *MongoStore) DeleteAllQuestions(ctx context.Context) error {
	_, err := s.questions.DeleteMany(ctx, bson.M{})
	return err
}

func (s *MongoStore) DeleteAllAnswers(ctx context.Context) error {
	_, err := s.answers.DeleteMany(ctx, bson.M{})
	return err
}
