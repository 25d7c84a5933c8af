// Package client provides a Go client for the forum API. It holds the
// logged-in session and persists it to disk so it survives restarts,
// the way the browser client keeps it in local storage.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/ayush/pet-qa-forum/internal/models"
)

// Session is the persisted login state.
type Session struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (field: %s)", e.Message, e.Field)
	}
	return e.Message
}

// Client is a forum API client.
type Client struct {
	BaseURL     string
	HTTPClient  *http.Client
	session     *Session
	sessionPath string
}

// New creates a client and restores any session previously saved at
// sessionPath. An unreadable or corrupt session file is treated as
// logged out.
func New(baseURL, sessionPath string) *Client {
	c := &Client{
		BaseURL:     baseURL,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		sessionPath: sessionPath,
	}
	if data, err := os.ReadFile(sessionPath); err == nil {
		var s Session
		if json.Unmarshal(data, &s) == nil && s.Token != "" {
			c.session = &s
		}
	}
	return c
}

// Session returns the current session, or nil when logged out.
func (c *Client) Session() *Session { return c.session }

// Register creates a new account. It does not log in.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var out struct {
		Username string `json:"username"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &out); err != nil {
		return "", err
	}
	return out.Username, nil
}

// Login authenticates and persists the returned session.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var out models.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", models.LoginRequest{
		Username: username,
		Password: password,
	}, &out)
	if err != nil {
		return err
	}
	c.session = &Session{Username: out.Username, Token: out.Token}
	return c.saveSession()
}

// Logout forgets the session in memory and on disk.
func (c *Client) Logout() error {
	c.session = nil
	if err := os.Remove(c.sessionPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out)
	return out, err
}

func (c *Client) Questions(ctx context.Context, categoryID string) ([]models.Question, error) {
	var out []models.Question
	err := c.do(ctx, http.MethodGet, "/api/questions?categoryId="+url.QueryEscape(categoryID), nil, &out)
	return out, err
}

func (c *Client) Answers(ctx context.Context, questionID string) ([]models.Answer, error) {
	var out []models.Answer
	err := c.do(ctx, http.MethodGet, "/api/answers?questionId="+url.QueryEscape(questionID), nil, &out)
	return out, err
}

// CreateQuestion posts a new question. Requires a logged-in session.
func (c *Client) CreateQuestion(ctx context.Context, text, categoryID string) (*models.Question, error) {
	var out models.Question
	err := c.do(ctx, http.MethodPost, "/api/questions", models.CreateQuestionRequest{
		Text:       text,
		CategoryID: categoryID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAnswer posts a new answer. Requires a logged-in session.
func (c *Client) CreateAnswer(ctx context.Context, text, questionID string) (*models.Answer, error) {
	var out models.Answer
	err := c.do(ctx, http.MethodPost, "/api/answers", models.CreateAnswerRequest{
		Text:       text,
		QuestionID: questionID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: "request failed"}
		var errBody struct {
			Message string `json:"message"`
			Field   string `json:"field"`
		}
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil && errBody.Message != "" {
			apiErr.Message = errBody.Message
			apiErr.Field = errBody.Field
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) saveSession() error {
	data, err := json.Marshal(c.session)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(c.sessionPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(c.sessionPath, data, 0o600)
}
