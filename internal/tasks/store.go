package tasks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultFile is the backing file used when no path is given
const DefaultFile = "tasks.json"

// Store holds the task list in memory and mirrors it to a file
type Store struct {
	path    string
	codec   Codec
	now     func() time.Time
	log     logrus.FieldLogger
	tasks   []Task
	loadErr error
}

// Option configures a Store
type Option func(*Store)

// WithCodec overrides the codec inferred from the file extension
func WithCodec(c Codec) Option {
	return func(s *Store) {
		if c != nil {
			s.codec = c
		}
	}
}

// WithClock sets the time source used for createdAt
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger; the default discards everything
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a store backed by path and loads whatever the file holds.
// It never fails: a missing or undecodable file yields an empty list.
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultFile
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	s := &Store{
		path: path,
		now:  time.Now,
		log:  quiet,
	}
	s.codec, _ = CodecFor(FormatFromPath(path))

	for _, opt := range opts {
		opt(s)
	}

	s.tasks, s.loadErr = s.load()
	if s.loadErr != nil {
		s.log.WithFields(logrus.Fields{
			"path":  s.path,
			"error": s.loadErr,
		}).Warn("task file unreadable, starting with an empty list")
		s.tasks = []Task{}
	}

	return s
}

// load reads and decodes the backing file. A missing file is not an error.
func (s *Store) load() ([]Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Task{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []Task{}, nil
	}

	tasks, err := s.codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s as %s: %w", s.path, s.codec.Name(), err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

// save rewrites the backing file with the current list
func (s *Store) save() error {
	data, err := s.codec.Marshal(s.tasks)
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create task directory: %w", err)
		}
	}

	// Write via temp file so a failed write leaves the old file in place
	tmpPath := s.path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write tasks: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename tasks file: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"path":  s.path,
		"count": len(s.tasks),
	}).Debug("saved tasks")
	return nil
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Format returns the name of the codec in use
func (s *Store) Format() string {
	return s.codec.Name()
}

// LoadErr reports why the initial load fell back to an empty list, if it did
func (s *Store) LoadErr() error {
	return s.loadErr
}

// Len returns the number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the task list in display order
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Stats returns task counts
func (s *Store) Stats() (total, done, pending int) {
	for _, t := range s.tasks {
		total++
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Create appends a task with the trimmed description.
// Returns false without writing if the description is blank.
func (s *Store) Create(description string) (bool, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return false, nil
	}

	s.tasks = append(s.tasks, Task{
		ID:          len(s.tasks) + 1,
		Description: description,
		Done:        false,
		CreatedAt:   stamp(s.now()),
	})

	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// MarkDone marks the task with the given id as done.
// Marking a done task again still succeeds and still writes.
func (s *Store) MarkDone(id int) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Done = true
			if err := s.save(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Remove deletes the task with the given id and re-numbers the remaining
// tasks to 1..N in their current order.
func (s *Store) Remove(id int) (bool, error) {
	kept := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	if len(kept) == len(s.tasks) {
		return false, nil
	}

	for i := range kept {
		kept[i].ID = i + 1
	}
	s.tasks = kept

	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveAll empties the list. It succeeds even when the list is already empty.
func (s *Store) RemoveAll() (bool, error) {
	s.tasks = []Task{}
	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}
