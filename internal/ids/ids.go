package ids

import "github.com/segmentio/ksuid"

// New returns a sortable opaque identifier for users and students.
func New() string {
	return ksuid.New().String()
}
