// Tests for the interactive menu loop.
package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/roster/internal/roster"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// fakeBackend records the last snapshot and can be told to fail writes.
type fakeBackend struct {
	snapshot []types.Record
	failErr  error
}

func (f *fakeBackend) Load() ([]types.Record, error) {
	return nil, fmt.Errorf("fake: %w", fs.ErrNotExist)
}

func (f *fakeBackend) Persist(records []types.Record) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.snapshot = append([]types.Record(nil), records...)
	return nil
}

func (f *fakeBackend) Location() string { return "fake" }

// run feeds input lines to a fresh shell and returns the store and output.
func run(t *testing.T, b *fakeBackend, lines ...string) (*roster.Store, string) {
	t.Helper()
	store := roster.New(b)
	require.NoError(t, store.Load())
	return store, runOn(t, store, lines...)
}

func runOn(t *testing.T, store *roster.Store, lines ...string) string {
	t.Helper()
	var out strings.Builder
	sh := New(store, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, WithStyles(PlainStyles()))
	require.NoError(t, sh.Run())
	return out.String()
}

func TestExitChoiceEndsLoop(t *testing.T) {
	_, out := run(t, &fakeBackend{}, "6", "1")

	assert.Contains(t, out, "--- Student Management System ---")
	assert.Contains(t, out, "1. Add Student")
	assert.Contains(t, out, "6. Exit")
	assert.Contains(t, out, MsgExiting)
	assert.Equal(t, 1, strings.Count(out, "--- Student Management System ---"))
}

func TestEOFEndsLoopWithoutError(t *testing.T) {
	store := roster.New(&fakeBackend{})
	var out strings.Builder
	sh := New(store, strings.NewReader(""), &out, WithStyles(PlainStyles()))

	assert.NoError(t, sh.Run())
	assert.NotContains(t, out.String(), MsgExiting)
}

func TestEOFMidPromptEndsLoop(t *testing.T) {
	store := roster.New(&fakeBackend{})
	var out strings.Builder
	sh := New(store, strings.NewReader("1\nAlice\n"), &out, WithStyles(PlainStyles()))

	assert.NoError(t, sh.Run())
	assert.Zero(t, store.Len())
}

func TestReadErrorIsReturned(t *testing.T) {
	store := roster.New(&fakeBackend{})
	var out strings.Builder
	readErr := errors.New("tty gone")
	sh := New(store, iotest.ErrReader(readErr), &out, WithStyles(PlainStyles()))

	err := sh.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
}

func TestNonNumericChoiceReprompts(t *testing.T) {
	_, out := run(t, &fakeBackend{}, "abc", "", "6")

	assert.Equal(t, 2, strings.Count(out, MsgNotANumber))
	assert.Contains(t, out, MsgExiting)
}

func TestOutOfRangeChoiceReported(t *testing.T) {
	_, out := run(t, &fakeBackend{}, "0", "7", "-1", "6")

	assert.Equal(t, 3, strings.Count(out, MsgBadChoice))
	assert.Contains(t, out, MsgExiting)
}

func TestAddStudent(t *testing.T) {
	b := &fakeBackend{}
	store, out := run(t, b, "1", "Alice", "1", "A", "6")

	assert.Contains(t, out, MsgAdded)
	want := []types.Record{{Name: "Alice", RollNumber: "1", Grade: "A"}}
	assert.Equal(t, want, store.List())
	assert.Equal(t, want, b.snapshot)
}

func TestAddRejectsEmptyFields(t *testing.T) {
	store, out := run(t, &fakeBackend{}, "1", "Alice", "", "A", "6")

	assert.Contains(t, out, MsgEmptyFields)
	assert.NotContains(t, out, MsgAdded)
	assert.Zero(t, store.Len())
}

func TestAddTrimsWhitespace(t *testing.T) {
	store, _ := run(t, &fakeBackend{}, "1", "  Alice  \r", "1", "A", "6")

	assert.Equal(t, []types.Record{{Name: "Alice", RollNumber: "1", Grade: "A"}}, store.List())
}

func TestRemoveStudent(t *testing.T) {
	store, out := run(t, &fakeBackend{},
		"1", "Alice", "1", "A",
		"1", "Bob", "2", "B",
		"1", "Alice Two", "1", "C",
		"2", "1",
		"6",
	)

	assert.Contains(t, out, MsgRemoved)
	assert.Equal(t, []types.Record{{Name: "Bob", RollNumber: "2", Grade: "B"}}, store.List())
}

func TestRemoveMissingStillReportsSuccess(t *testing.T) {
	_, out := run(t, &fakeBackend{}, "2", "404", "6")
	assert.Contains(t, out, MsgRemoved)
}

func TestSearchFoundAndNotFound(t *testing.T) {
	_, out := run(t, &fakeBackend{},
		"1", "Alice", "5", "A",
		"1", "Bob", "5", "B",
		"3", "5",
		"3", "404",
		"6",
	)

	assert.Contains(t, out, MsgFoundPrefix+"Name: Alice | Roll No: 5 | Grade: A")
	assert.NotContains(t, out, "Name: Bob | Roll No: 5")
	assert.Contains(t, out, MsgNotFound)
}

func TestListEmptyAndPopulated(t *testing.T) {
	_, out := run(t, &fakeBackend{}, "4", "6")
	assert.Contains(t, out, MsgNoStudents)

	_, out = run(t, &fakeBackend{},
		"1", "Alice", "1", "A",
		"1", "Bob", "2", "B",
		"4",
		"6",
	)
	assert.NotContains(t, out, MsgNoStudents)
	first := strings.Index(out, "Name: Alice | Roll No: 1 | Grade: A")
	second := strings.Index(out, "Name: Bob | Roll No: 2 | Grade: B")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestEditKeepsBlankFields(t *testing.T) {
	b := &fakeBackend{}
	store, out := run(t, b,
		"1", "Alice", "9", "B",
		"5", "9", "", "A",
		"5", "9", "Bob", "",
		"6",
	)

	assert.Equal(t, 2, strings.Count(out, MsgUpdated))
	want := []types.Record{{Name: "Bob", RollNumber: "9", Grade: "A"}}
	assert.Equal(t, want, store.List())
	assert.Equal(t, want, b.snapshot)
}

func TestEditMissingSkipsFieldPrompts(t *testing.T) {
	_, out := run(t, &fakeBackend{}, "5", "404", "6")

	assert.Contains(t, out, MsgNotFound)
	assert.NotContains(t, out, "Enter new Name")
	assert.Contains(t, out, MsgExiting)
}

func TestStorageWriteFailureIsReportedAndLoopContinues(t *testing.T) {
	b := &fakeBackend{failErr: errors.New("disk full")}
	store, out := run(t, b, "1", "Alice", "1", "A", "4", "6")

	assert.Contains(t, out, "disk full")
	assert.NotContains(t, out, MsgAdded)
	// The record stays in memory even though it was not saved.
	assert.Contains(t, out, "Name: Alice | Roll No: 1 | Grade: A")
	assert.Equal(t, 1, store.Len())
	assert.Contains(t, out, MsgExiting)
}

func TestDefaultStylesStillContainText(t *testing.T) {
	store := roster.New(&fakeBackend{})
	var out strings.Builder
	sh := New(store, strings.NewReader("6\n"), &out)

	require.NoError(t, sh.Run())
	assert.Contains(t, out.String(), "Exiting Student Management System")
}
