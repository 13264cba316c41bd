package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"cyberstudy/portal/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrEmailTaken      = errors.New("email already registered")
	// ErrCorrupt means the users file exists but is not valid JSON.
	ErrCorrupt = errors.New("users file corrupt")
)

// UserStore persists the full user set in one JSON file. Every mutation is a
// read-modify-write over the whole file; a process-local mutex serializes
// those cycles. There is no cross-process locking.
type UserStore struct {
	path string
	mu   sync.Mutex
}

func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// LoadAll reads the users file. A missing file is an empty set, not an error.
func (s *UserStore) LoadAll() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *UserStore) loadLocked() ([]models.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("read users file: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return users, nil
}

// SaveAll overwrites the users file with the given set, via a temp file and
// rename so a crash mid-write leaves the old contents intact.
func (s *UserStore) SaveAll(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(users)
}

func (s *UserStore) saveLocked(users []models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write users file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace users file: %w", err)
	}
	return nil
}

// FindByEmail matches case-insensitively; email is the sign-in key.
func (s *UserStore) FindByEmail(email string) (models.User, error) {
	users, err := s.LoadAll()
	if err != nil {
		return models.User{}, err
	}

	needle := strings.ToLower(strings.TrimSpace(email))
	for _, user := range users {
		if strings.ToLower(user.Email) == needle {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *UserStore) FindByID(id string) (models.User, error) {
	users, err := s.LoadAll()
	if err != nil {
		return models.User{}, err
	}

	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// CreateUser appends a record after checking the unique-email invariant.
func (s *UserStore) CreateUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadLocked()
	if err != nil {
		return err
	}

	needle := strings.ToLower(strings.TrimSpace(user.Email))
	for _, existing := range users {
		if strings.ToLower(existing.Email) == needle {
			return ErrEmailTaken
		}
	}

	return s.saveLocked(append(users, user))
}

// UpsertStudentProgress locates the student across all parent records, merges
// the patch into its progress and persists the whole set. Fields the patch
// does not name keep their prior value.
func (s *UserStore) UpsertStudentProgress(studentID string, patch models.ProgressPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadLocked()
	if err != nil {
		return err
	}

	for ui := range users {
		if users[ui].IsAdmin() {
			continue
		}
		for si := range users[ui].Students {
			student := &users[ui].Students[si]
			if student.ID != studentID {
				continue
			}
			if student.Progress == nil {
				student.Progress = &models.Progress{}
			}
			student.Progress.Apply(patch, time.Now().UTC())
			return s.saveLocked(users)
		}
	}
	return ErrStudentNotFound
}

// DeleteUser removes the matching record. Deleting an unknown id is a no-op
// that still persists; callers needing a not-found signal must check first.
func (s *UserStore) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadLocked()
	if err != nil {
		return err
	}

	kept := users[:0]
	for _, user := range users {
		if user.ID != id {
			kept = append(kept, user)
		}
	}
	return s.saveLocked(kept)
}

// UserFieldsPatch updates the admin-editable parent fields; nil means keep.
type UserFieldsPatch struct {
	ParentName *string
	Email      *string
}

// UpdateUserFields edits parent_name/email on a non-admin record.
// The unique-email invariant is enforced against the rest of the set.
func (s *UserStore) UpdateUserFields(id string, patch UserFieldsPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadLocked()
	if err != nil {
		return err
	}

	if patch.Email != nil {
		needle := strings.ToLower(strings.TrimSpace(*patch.Email))
		for _, existing := range users {
			if existing.ID != id && strings.ToLower(existing.Email) == needle {
				return ErrEmailTaken
			}
		}
	}

	for i := range users {
		if users[i].ID != id || users[i].IsAdmin() {
			continue
		}
		if patch.ParentName != nil {
			users[i].ParentName = *patch.ParentName
		}
		if patch.Email != nil {
			users[i].Email = strings.TrimSpace(*patch.Email)
		}
		return s.saveLocked(users)
	}
	return ErrUserNotFound
}
