// Package shell runs the numbered-menu console loop over a roster store.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/roster/internal/roster"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// Menu choices.
const (
	choiceAdd = iota + 1
	choiceRemove
	choiceSearch
	choiceList
	choiceEdit
	choiceExit
)

var menuItems = []string{
	"Add Student",
	"Remove Student",
	"Search Student",
	"Display All Students",
	"Edit Student",
	"Exit",
}

// Output lines shared with the scripted CLI commands.
const (
	MsgAdded       = "✅ Student added successfully."
	MsgRemoved     = "✅ Student removed (if exists)."
	MsgFoundPrefix = "✅ Student found: "
	MsgUpdated     = "✅ Student updated successfully."
	MsgNotFound    = "❌ Student not found."
	MsgEmptyFields = "❌ Fields cannot be empty!"
	MsgNoStudents  = "No students found."
	MsgNotANumber  = "❌ Invalid input! Enter a number."
	MsgBadChoice   = "❌ Invalid choice! Try again."
	MsgExiting     = "👋 Exiting Student Management System..."
)

// Shell reads menu choices and field values from in and writes results to out.
type Shell struct {
	store  *roster.Store
	in     *bufio.Reader
	out    io.Writer
	styles Styles
	logger *slog.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithStyles replaces the default colored styles.
func WithStyles(styles Styles) Option {
	return func(s *Shell) { s.styles = styles }
}

// WithLogger sets the logger for shell events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns a shell driving store.
func New(store *roster.Store, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		store:  store,
		in:     bufio.NewReader(in),
		out:    out,
		styles: DefaultStyles(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the user picks Exit or input ends. It returns nil in both
// cases and an error only when reading input fails.
func (s *Shell) Run() error {
	for {
		s.printMenu()
		choice, err := s.readChoice()
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case choiceAdd:
			err = s.add()
		case choiceRemove:
			err = s.remove()
		case choiceSearch:
			err = s.search()
		case choiceList:
			s.list()
		case choiceEdit:
			err = s.edit()
		case choiceExit:
			s.println(s.styles.Title, MsgExiting)
			return nil
		default:
			s.println(s.styles.Failure, MsgBadChoice)
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput treats EOF as a normal end of the session.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	s.println(s.styles.Title, "--- Student Management System ---")
	for i, item := range menuItems {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, item)
	}
}

// readChoice prompts until the user enters an integer. Range is checked by
// the caller.
func (s *Shell) readChoice() (int, error) {
	for {
		line, err := s.prompt("Enter your choice: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		s.logger.Debug("non-numeric menu input", "input", line)
		s.println(s.styles.Failure, MsgNotANumber)
	}
}

func (s *Shell) add() error {
	name, err := s.prompt("Enter Name: ")
	if err != nil {
		return err
	}
	roll, err := s.prompt("Enter Roll Number: ")
	if err != nil {
		return err
	}
	grade, err := s.prompt("Enter Grade: ")
	if err != nil {
		return err
	}

	rec := types.Record{Name: name, RollNumber: roll, Grade: grade}
	if err := rec.Validate(); err != nil {
		s.println(s.styles.Failure, MsgEmptyFields)
		return nil
	}
	if err := s.store.Add(rec); err != nil {
		s.reportStoreError(err)
		return nil
	}
	s.println(s.styles.Success, MsgAdded)
	return nil
}

func (s *Shell) remove() error {
	roll, err := s.prompt("Enter Roll Number to remove: ")
	if err != nil {
		return err
	}
	n, err := s.store.Remove(roll)
	s.logger.Debug("remove", "roll", roll, "removed", n)
	if err != nil {
		s.reportStoreError(err)
		return nil
	}
	s.println(s.styles.Success, MsgRemoved)
	return nil
}

func (s *Shell) search() error {
	roll, err := s.prompt("Enter Roll Number to search: ")
	if err != nil {
		return err
	}
	rec, err := s.store.Search(roll)
	if err != nil {
		s.reportStoreError(err)
		return nil
	}
	s.println(s.styles.Success, MsgFoundPrefix+rec.String())
	return nil
}

func (s *Shell) list() {
	records := s.store.List()
	if len(records) == 0 {
		fmt.Fprintln(s.out, MsgNoStudents)
		return
	}
	for _, rec := range records {
		fmt.Fprintln(s.out, rec.String())
	}
}

// edit asks for new values only once the roll number is known to exist.
func (s *Shell) edit() error {
	roll, err := s.prompt("Enter Roll Number to edit: ")
	if err != nil {
		return err
	}
	if _, err := s.store.Search(roll); err != nil {
		s.reportStoreError(err)
		return nil
	}

	newName, err := s.prompt("Enter new Name (leave blank to keep same): ")
	if err != nil {
		return err
	}
	newGrade, err := s.prompt("Enter new Grade (leave blank to keep same): ")
	if err != nil {
		return err
	}

	if err := s.store.Edit(roll, newName, newGrade); err != nil {
		s.reportStoreError(err)
		return nil
	}
	s.println(s.styles.Success, MsgUpdated)
	return nil
}

// reportStoreError prints a store failure; none of them end the loop.
func (s *Shell) reportStoreError(err error) {
	if errors.Is(err, types.ErrNotFound) {
		s.println(s.styles.Failure, MsgNotFound)
		return
	}
	s.logger.Warn("store operation failed", "err", err)
	s.println(s.styles.Warning, "❌ "+err.Error())
}

// prompt writes label and returns the next input line without surrounding
// whitespace. A final line without a newline is still returned.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, s.styles.Prompt.Render(label))
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) println(style lipgloss.Style, msg string) {
	fmt.Fprintln(s.out, style.Render(msg))
}
