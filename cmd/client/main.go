// Command client is a terminal client for the forum API. It keeps the
// logged-in session in a file under the user config dir so it survives
// restarts, and mirrors the browser client's browse/ask/answer flow.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/ayush/pet-qa-forum/internal/client"
	"github.com/ayush/pet-qa-forum/internal/models"
)

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	sessionPath := os.Getenv("SESSION_FILE")
	if sessionPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			log.Fatalf("config dir: %v", err)
		}
		sessionPath = filepath.Join(dir, "pet-qa-forum", "session.json")
	}

	app := &app{
		client: client.New(baseURL, sessionPath),
		in:     bufio.NewScanner(os.Stdin),
	}
	app.state = client.NewState(app.client)

	if s := app.client.Session(); s != nil {
		fmt.Printf("Logged in as %s\n", s.Username)
	}
	fmt.Println("Type 'help' for commands.")
	app.run()
}

type app struct {
	client *client.Client
	state  *client.State
	in     *bufio.Scanner
}

func (a *app) run() {
	ctx := context.Background()
	for {
		fmt.Print("> ")
		if !a.in.Scan() {
			return
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")

		var err error
		switch cmd {
		case "help":
			a.help()
		case "categories":
			err = a.categories(ctx)
		case "select":
			err = a.selectCategory(ctx, rest)
		case "answers":
			err = a.answers(ctx, rest)
		case "ask":
			err = a.ask(ctx, rest)
		case "answer":
			err = a.answer(ctx, rest)
		case "register":
			err = a.register(ctx)
		case "login":
			err = a.login(ctx)
		case "logout":
			err = a.client.Logout()
		case "whoami":
			if s := a.client.Session(); s != nil {
				fmt.Println(s.Username)
			} else {
				fmt.Println("not logged in")
			}
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command, type 'help'")
		}
		if err != nil {
			fmt.Println("error:", err)
		}
	}
}

func (a *app) help() {
	fmt.Print(`commands:
  categories          list categories
  select <n>          select category n and list its questions
  answers <n>         show answers for question n
  ask <text>          post a question to the selected category
  answer <n> <text>   post an answer to question n
  register            create an account
  login               log in
  logout              log out
  whoami              show the logged-in user
  quit                exit
`)
}

func (a *app) categories(ctx context.Context) error {
	cats, err := a.client.Categories(ctx)
	if err != nil {
		return err
	}
	for i, c := range cats {
		fmt.Printf("%d. %s\n", i+1, c.Name)
	}
	return nil
}

func (a *app) selectCategory(ctx context.Context, arg string) error {
	cats, err := a.client.Categories(ctx)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(cats) {
		return fmt.Errorf("pick a category number between 1 and %d", len(cats))
	}
	if err := a.state.SelectCategory(ctx, cats[n-1]); err != nil {
		return err
	}
	fmt.Printf("%s:\n", cats[n-1].Name)
	a.printQuestions()
	return nil
}

func (a *app) printQuestions() {
	if len(a.state.Questions) == 0 {
		fmt.Println("  (no questions yet)")
		return
	}
	for i, q := range a.state.Questions {
		fmt.Printf("%d. %s  — %s\n", i+1, q.Text, q.Author)
	}
}

func (a *app) question(arg string) (*models.Question, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(a.state.Questions) {
		return nil, fmt.Errorf("pick a question number between 1 and %d", len(a.state.Questions))
	}
	q := a.state.Questions[n-1]
	return &q, nil
}

func (a *app) answers(ctx context.Context, arg string) error {
	q, err := a.question(arg)
	if err != nil {
		return err
	}
	id := q.ID.Hex()
	if err := a.state.SelectQuestion(ctx, id); err != nil {
		return err
	}
	as := a.state.Answers[id]
	if len(as) == 0 {
		fmt.Println("  (no answers yet)")
	}
	for _, ans := range as {
		fmt.Printf("  %s  — %s\n", ans.Text, ans.Author)
	}
	return nil
}

func (a *app) ask(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("usage: ask <text>")
	}
	q, err := a.state.SubmitQuestion(ctx, strings.TrimSpace(text))
	if err != nil {
		return err
	}
	fmt.Printf("posted: %s\n", q.Text)
	return nil
}

func (a *app) answer(ctx context.Context, rest string) error {
	num, text, _ := strings.Cut(strings.TrimSpace(rest), " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("usage: answer <n> <text>")
	}
	q, err := a.question(num)
	if err != nil {
		return err
	}
	ans, err := a.state.SubmitAnswer(ctx, q.ID.Hex(), strings.TrimSpace(text))
	if err != nil {
		return err
	}
	fmt.Printf("posted: %s\n", ans.Text)
	return nil
}

func (a *app) register(ctx context.Context) error {
	username := a.prompt("username: ")
	password, err := a.promptPassword("password: ")
	if err != nil {
		return err
	}
	confirm, err := a.promptPassword("confirm password: ")
	if err != nil {
		return err
	}
	accepted := strings.EqualFold(a.prompt("accept the terms? (y/n): "), "y")

	name, err := a.client.Register(ctx, models.RegisterRequest{
		Username:        username,
		Password:        password,
		ConfirmPassword: confirm,
		AcceptedTerms:   accepted,
	})
	if err != nil {
		return err
	}
	fmt.Printf("registered %s, you can log in now\n", name)
	return nil
}

func (a *app) login(ctx context.Context) error {
	username := a.prompt("username: ")
	password, err := a.promptPassword("password: ")
	if err != nil {
		return err
	}
	if err := a.client.Login(ctx, username, password); err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", username)
	return nil
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) promptPassword(label string) (string, error) {
	fmt.Print(label)
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
