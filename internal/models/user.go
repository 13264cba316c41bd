package models

import "time"

type Role string

const (
	RoleParent Role = "parent"
	RoleAdmin  Role = "admin"
)

// User is one persisted account. The users file holds the full set of these
// records; the file is the single source of truth for credentials and roles.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Salt         string    `json:"salt"`
	ParentName   string    `json:"parent_name"`
	Role         Role      `json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Students     []Student `json:"students"`
}

// EffectiveRole treats a missing role as parent, which is how older records
// written before the role field existed are read.
func (u User) EffectiveRole() Role {
	if u.Role == "" {
		return RoleParent
	}
	return u.Role
}

func (u User) IsAdmin() bool {
	return u.EffectiveRole() == RoleAdmin
}

type Student struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Grade        string    `json:"grade"`
	Level        string    `json:"level"`
	EnrolledDate string    `json:"enrolled_date"`
	Progress     *Progress `json:"progress,omitempty"`
}

// Progress is created on the first admin update and merged on later ones.
type Progress struct {
	LastUpdated       time.Time `json:"last_updated"`
	CurrentLevel      string    `json:"current_level"`
	CompletedProjects int       `json:"completed_projects"`
	TotalHours        float64   `json:"total_hours"`
	Achievements      []string  `json:"achievements"`
	NextClassDate     string    `json:"next_class_date"`
	Notes             string    `json:"notes"`
}

// ProgressPatch carries only the fields an update names; nil fields keep the
// prior value.
type ProgressPatch struct {
	CurrentLevel      *string   `json:"current_level"`
	CompletedProjects *int      `json:"completed_projects"`
	TotalHours        *float64  `json:"total_hours"`
	Achievements      *[]string `json:"achievements"`
	NextClassDate     *string   `json:"next_class_date"`
	Notes             *string   `json:"notes"`
}

// Apply merges the patch into p and stamps last_updated.
func (p *Progress) Apply(patch ProgressPatch, now time.Time) {
	if patch.CurrentLevel != nil {
		p.CurrentLevel = *patch.CurrentLevel
	}
	if patch.CompletedProjects != nil {
		p.CompletedProjects = *patch.CompletedProjects
	}
	if patch.TotalHours != nil {
		p.TotalHours = *patch.TotalHours
	}
	if patch.Achievements != nil {
		p.Achievements = *patch.Achievements
	}
	if patch.NextClassDate != nil {
		p.NextClassDate = *patch.NextClassDate
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	p.LastUpdated = now
}
