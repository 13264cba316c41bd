package store

import (
	"errors"
	"fmt"
	"time"

	"cyberstudy/portal/internal/ids"
	"cyberstudy/portal/internal/models"
	"cyberstudy/portal/internal/security"
)

// Demo credentials provisioned on cold start when demo seeding is enabled.
// These are deliberately well-known; a non-demo deployment must disable
// seeding in config.
const (
	DemoParentEmail    = "demo@cyberstudy.com"
	DemoParentPassword = "demo123"
	DemoParentName     = "Demo Parent"

	AdminEmail    = "admin@cyberstudy.com"
	AdminPassword = "admin123"
	AdminName     = "CyberStudy Admin"
)

// SeedDemoAccounts provisions the demo parent and the admin account if they
// are absent. Safe to run on every startup: the unique-email check makes it
// a no-op once the accounts exist.
func (s *UserStore) SeedDemoAccounts() error {
	if err := s.seedAccount(DemoParentEmail, DemoParentPassword, DemoParentName, models.RoleParent, demoStudents()); err != nil {
		return fmt.Errorf("seed demo parent: %w", err)
	}
	if err := s.seedAccount(AdminEmail, AdminPassword, AdminName, models.RoleAdmin, nil); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func (s *UserStore) seedAccount(email, password, name string, role models.Role, students []models.Student) error {
	hash, salt, err := security.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		ID:           ids.New(),
		Email:        email,
		PasswordHash: hash,
		Salt:         salt,
		ParentName:   name,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
		Students:     students,
	}

	if err := s.CreateUser(user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil
		}
		return err
	}
	return nil
}

func demoStudents() []models.Student {
	return []models.Student{
		{
			ID:           ids.New(),
			Name:         "Alex Demo",
			Age:          9,
			Grade:        "4th",
			Level:        "Beginner",
			EnrolledDate: "2025-09-01",
			Progress: &models.Progress{
				LastUpdated:       time.Now().UTC(),
				CurrentLevel:      "Beginner",
				CompletedProjects: 3,
				TotalHours:        12.5,
				Achievements:      []string{"First Program", "Loop Master"},
				NextClassDate:     "2026-09-05",
				Notes:             "Great progress with Scratch basics.",
			},
		},
		{
			ID:           ids.New(),
			Name:         "Jamie Demo",
			Age:          12,
			Grade:        "7th",
			Level:        "Intermediate",
			EnrolledDate: "2025-02-15",
			Progress: &models.Progress{
				LastUpdated:       time.Now().UTC(),
				CurrentLevel:      "Intermediate",
				CompletedProjects: 8,
				TotalHours:        41,
				Achievements:      []string{"Python Starter", "Game Builder"},
				NextClassDate:     "2026-09-03",
				Notes:             "Started the Python game project.",
			},
		},
	}
}
