package client

import (
	"context"
	"errors"

	"github.com/ayush/pet-qa-forum/internal/models"
)

// ErrNoCategorySelected is returned when a question is submitted before a
// category has been chosen.
var ErrNoCategorySelected = errors.New("no category selected")

// State mirrors the view state of the browser client: the selected
// category, its question list and the answer lists loaded so far. Every
// navigation re-fetches from the server; nothing else is cached.
type State struct {
	client *Client

	SelectedCategory *models.Category
	Questions        []models.Question
	Answers          map[string][]models.Answer
}

func NewState(c *Client) *State {
	return &State{client: c, Answers: map[string][]models.Answer{}}
}

// SelectCategory loads the category's questions and drops any previously
// loaded answers.
func (s *State) SelectCategory(ctx context.Context, cat models.Category) error {
	qs, err := s.client.Questions(ctx, cat.ID.Hex())
	if err != nil {
		return err
	}
	s.SelectedCategory = &cat
	s.Questions = qs
	s.Answers = map[string][]models.Answer{}
	return nil
}

// SelectQuestion loads the answers for one question.
func (s *State) SelectQuestion(ctx context.Context, questionID string) error {
	as, err := s.client.Answers(ctx, questionID)
	if err != nil {
		return err
	}
	s.Answers[questionID] = as
	return nil
}

// SubmitQuestion posts a question to the selected category and appends
// the server-confirmed record to the local list.
func (s *State) SubmitQuestion(ctx context.Context, text string) (*models.Question, error) {
	if s.SelectedCategory == nil {
		return nil, ErrNoCategorySelected
	}
	q, err := s.client.CreateQuestion(ctx, text, s.SelectedCategory.ID.Hex())
	if err != nil {
		return nil, err
	}
	s.Questions = append(s.Questions, *q)
	return q, nil
}

// SubmitAnswer posts an answer and appends the server-confirmed record to
// the question's local list.
func (s *State) SubmitAnswer(ctx context.Context, questionID, text string) (*models.Answer, error) {
	a, err := s.client.CreateAnswer(ctx, text, questionID)
	if err != nil {
		return nil, err
	}
	s.Answers[questionID] = append(s.Answers[questionID], *a)
	return a, nil
}
