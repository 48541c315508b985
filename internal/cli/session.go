package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/prodcalc/tracker/internal/services"
	"github.com/prodcalc/tracker/types"
	"go.uber.org/zap"
)

// AuthService authenticates the session's user.
type AuthService interface {
	Login(ctx context.Context, username, password string) (types.User, error)
}

// TaskService provides the task operations the menu dispatches to.
type TaskService interface {
	List(ctx context.Context, userID int) []types.Task
	Add(ctx context.Context, task types.Task) (types.Task, error)
	Update(ctx context.Context, task types.Task) error
	Delete(ctx context.Context, id int) error
}

// Session runs the interactive menu over the given streams. It holds
// the authenticated user for the lifetime of the loop; there is no
// logout or re-authentication.
type Session struct {
	auth   AuthService
	tasks  TaskService
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
	logger *zap.Logger
	user   types.User
}

func NewSession(auth AuthService, tasks TaskService, in io.Reader, out, errOut io.Writer, logger *zap.Logger) *Session {
	return &Session{
		auth:   auth,
		tasks:  tasks,
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
		logger: logger,
	}
}

// Run prompts for credentials and then serves the menu until the user
// exits or input ends. A rejected login ends the session gracefully.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "=== Welcome to Productivity Calculator ===")

	user, ok := s.login(ctx)
	if !ok {
		fmt.Fprintln(s.out, "Exiting.")
		return nil
	}
	s.user = user

	for {
		s.printMenu()
		line, ok := s.readLine("Choice: ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(line) {
		case "1":
			s.viewTasks(ctx)
		case "2":
			s.addTask(ctx)
		case "3":
			s.updateTask(ctx)
		case "4":
			s.deleteTask(ctx)
		case "5":
			s.showReport(ctx)
		case "0":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice.")
		}
	}
}

func (s *Session) login(ctx context.Context) (types.User, bool) {
	username, ok := s.readLine("Username: ")
	if !ok {
		return types.User{}, false
	}
	password, ok := s.readLine("Password: ")
	if !ok {
		return types.User{}, false
	}

	user, err := s.auth.Login(ctx, strings.TrimSpace(username), strings.TrimSpace(password))
	switch {
	case err == nil:
		return user, true
	case errors.Is(err, services.ErrInvalidCredentials):
		fmt.Fprintln(s.out, "Invalid credentials.")
	default:
		s.logger.Error("login lookup failed", zap.Error(err))
		fmt.Fprintf(s.errOut, "DB error: %s\n", err)
	}
	return types.User{}, false
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "--- Menu ---")
	fmt.Fprintln(s.out, "1) View Tasks")
	fmt.Fprintln(s.out, "2) Add Task")
	fmt.Fprintln(s.out, "3) Update Task")
	fmt.Fprintln(s.out, "4) Delete Task")
	fmt.Fprintln(s.out, "5) Show Productive Hours Left")
	fmt.Fprintln(s.out, "0) Exit")
}

func (s *Session) viewTasks(ctx context.Context) {
	tasks := s.tasks.List(ctx, s.user.ID)
	if len(tasks) == 0 {
		fmt.Fprintln(s.out, "No tasks found.")
		return
	}

	fmt.Fprintf(s.out, "%-4s %-20s %-12s %5s\n", "ID", "Description", "Category", "Hours")
	for _, t := range tasks {
		fmt.Fprintf(s.out, "%-4d %-20s %-12s %5.2f\n", t.ID, t.Description, t.Category, t.Hours)
	}
}

func (s *Session) addTask(ctx context.Context) {
	description, ok := s.readLine("Description: ")
	if !ok {
		return
	}
	category, ok := s.readLine("Category [Productive/Non-Productive]: ")
	if !ok {
		return
	}
	hours, ok := s.readFloat("Hours: ")
	if !ok {
		return
	}

	task := types.Task{
		UserID:      s.user.ID,
		Description: description,
		Category:    category,
		Hours:       hours,
	}
	if _, err := s.tasks.Add(ctx, task); err != nil {
		fmt.Fprintf(s.errOut, "Error: %s\n", err)
		return
	}
	fmt.Fprintln(s.out, "Added.")
}

func (s *Session) updateTask(ctx context.Context) {
	id, ok := s.readInt("Task ID to update: ")
	if !ok {
		return
	}
	description, ok := s.readLine("New Description: ")
	if !ok {
		return
	}
	category, ok := s.readLine("New Category: ")
	if !ok {
		return
	}
	hours, ok := s.readFloat("New Hours: ")
	if !ok {
		return
	}

	task := types.Task{
		ID:          id,
		UserID:      s.user.ID,
		Description: description,
		Category:    category,
		Hours:       hours,
	}
	if err := s.tasks.Update(ctx, task); err != nil {
		fmt.Fprintf(s.errOut, "Error: %s\n", err)
		return
	}
	fmt.Fprintln(s.out, "Updated.")
}

func (s *Session) deleteTask(ctx context.Context) {
	id, ok := s.readInt("Task ID to delete: ")
	if !ok {
		return
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		fmt.Fprintf(s.errOut, "Error: %s\n", err)
		return
	}
	fmt.Fprintln(s.out, "Deleted.")
}

func (s *Session) showReport(ctx context.Context) {
	tasks := s.tasks.List(ctx, s.user.ID)
	left := services.RemainingProductiveHours(tasks)
	fmt.Fprintf(s.out, "You have %.2f productive hours left today.\n", left)
}

// readLine prints the prompt and reads one raw line. ok is false when
// input has ended.
func (s *Session) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// readFloat reads one line and parses it as a number. A malformed
// value abandons the current command instead of ending the process.
func (s *Session) readFloat(prompt string) (float64, bool) {
	line, ok := s.readLine(prompt)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		fmt.Fprintln(s.errOut, "Invalid number.")
		return 0, false
	}
	return value, true
}

func (s *Session) readInt(prompt string) (int, bool) {
	line, ok := s.readLine(prompt)
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(s.errOut, "Invalid number.")
		return 0, false
	}
	return value, true
}
