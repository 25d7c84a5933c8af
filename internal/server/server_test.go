package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ayush/pet-qa-forum/internal/config"
	"github.com/ayush/pet-qa-forum/internal/server"
	"github.com/ayush/pet-qa-forum/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		AllowedOrigins: []string{"http://localhost:3000"},
		DevEndpoints:   true,
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(server.New(testConfig(), store.NewMemoryStore()).Router())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func postJSON(t *testing.T, url, token string, body, out any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestEndToEndAliceFlow(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	// Seed base data.
	resp := getJSON(t, ts.URL+"/api/seed-categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Register alice.
	var registered struct {
		Username string `json:"username"`
	}
	resp = postJSON(t, ts.URL+"/api/auth/register", "", map[string]any{
		"username":        "alice",
		"password":        "password1",
		"confirmPassword": "password1",
		"acceptedTerms":   true,
	}, &registered)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "alice", registered.Username)

	// Log in.
	var login struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	resp = postJSON(t, ts.URL+"/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "password1",
	}, &login)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, login.Token)

	// Find the Cats category.
	var categories []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	resp = getJSON(t, ts.URL+"/api/categories", &categories)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, categories, 3)
	require.Equal(t, []string{"Cats", "Dogs", "Rabbits"}, []string{categories[0].Name, categories[1].Name, categories[2].Name})
	catsID := categories[0].ID

	// Creating without a token fails.
	resp = postJSON(t, ts.URL+"/api/questions", "", map[string]string{
		"text":       "Why do cats purr?",
		"categoryId": catsID,
	}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Creating with the token succeeds and echoes the input.
	var created struct {
		ID         string `json:"id"`
		Text       string `json:"text"`
		CategoryID string `json:"categoryId"`
		Author     string `json:"author"`
	}
	resp = postJSON(t, ts.URL+"/api/questions", login.Token, map[string]string{
		"text":       "Why do cats purr?",
		"categoryId": catsID,
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "Why do cats purr?", created.Text)
	require.Equal(t, catsID, created.CategoryID)
	require.Equal(t, "alice", created.Author)

	// The question shows up in the category listing with its author.
	var questions []struct {
		ID     string `json:"id"`
		Text   string `json:"text"`
		Author string `json:"author"`
	}
	resp = getJSON(t, ts.URL+"/api/questions?categoryId="+catsID, &questions)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, questions)
	last := questions[len(questions)-1]
	require.Equal(t, created.ID, last.ID)
	require.Equal(t, "alice", last.Author)

	// Answer it and read the answer back.
	var answer struct {
		ID string `json:"id"`
	}
	resp = postJSON(t, ts.URL+"/api/answers", login.Token, map[string]string{
		"text":       "To show contentment.",
		"questionId": created.ID,
	}, &answer)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var answers []struct {
		ID     string `json:"id"`
		Text   string `json:"text"`
		Author string `json:"author"`
	}
	resp = getJSON(t, ts.URL+"/api/answers?questionId="+created.ID, &answers)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, answers, 1)
	require.Equal(t, "To show contentment.", answers[0].Text)
	require.Equal(t, "alice", answers[0].Author)
}

func TestRegisterErrorsAreFieldTagged(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	var errBody struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	resp := postJSON(t, ts.URL+"/api/auth/register", "", map[string]any{
		"username":        "bob",
		"password":        "short1",
		"confirmPassword": "short1",
		"acceptedTerms":   true,
	}, &errBody)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "password", errBody.Field)
	require.NotEmpty(t, errBody.Message)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	var errBody struct {
		Message string `json:"message"`
	}
	resp := postJSON(t, ts.URL+"/api/auth/login", "", map[string]string{
		"username": "ghost",
		"password": "whatever1",
	}, &errBody)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Invalid username or password", errBody.Message)
}

func TestSeedEndpointsIdempotentOverHTTP(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	for i := 0; i < 2; i++ {
		resp := getJSON(t, ts.URL+"/api/seed-categories", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	for i := 0; i < 2; i++ {
		resp := getJSON(t, ts.URL+"/api/seed-demo-data", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var categories []any
	getJSON(t, ts.URL+"/api/categories", &categories)
	require.Len(t, categories, 3)
}

func TestSeedDemoDataBeforeCategoriesFails(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	var errBody struct {
		Message string `json:"message"`
	}
	resp := getJSON(t, ts.URL+"/api/seed-demo-data", &errBody)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Seed categories first", errBody.Message)
}

func TestListQuestionsWithoutCategoryID(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	var errBody struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	resp := getJSON(t, ts.URL+"/api/questions", &errBody)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "categoryId", errBody.Field)
}

func TestDevEndpointsDisabledByDefault(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.DevEndpoints = false
	ts := httptest.NewServer(server.New(cfg, store.NewMemoryStore()).Router())
	t.Cleanup(ts.Close)

	for _, path := range []string{"/api/seed-categories", "/api/seed-demo-data", "/api/wipe-demo-data"} {
		resp := getJSON(t, ts.URL+path, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode, fmt.Sprintf("path %s", path))
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	var body struct {
		Status string `json:"status"`
	}
	resp := getJSON(t, ts.URL+"/health", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", body.Status)
}
