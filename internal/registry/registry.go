// Package registry defines the ordered set of QEMU source revisions the
// generator tracks, one per plugin API epoch.
//
// Ordinals are 1-based, dense, and stable: generated artifact filenames
// embed them, so an ordinal is never reused or reordered once published.
// Higher ordinals correspond to later plugin API epochs.
package registry

import "fmt"

// Revision pins one plugin API epoch to an exact upstream snapshot.
type Revision struct {
	// Ordinal is the 1-based epoch number embedded in artifact filenames.
	Ordinal int `json:"ordinal" yaml:"ordinal"`

	// Commit is the QEMU git commit hash the epoch was published in.
	Commit string `json:"commit" yaml:"commit"`
}

// Registry is an immutable, ordered set of revisions.
type Registry struct {
	revisions []Revision
}

// OutOfRangeError reports a Get with an ordinal outside [1, Size].
type OutOfRangeError struct {
	Ordinal int
	Size    int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("revision ordinal %d out of range [1, %d]", e.Ordinal, e.Size)
}

// New builds a registry from revisions already in ordinal order.
// The slice is copied; callers cannot mutate the registry afterwards.
func New(revisions []Revision) *Registry {
	rs := make([]Revision, len(revisions))
	copy(rs, revisions)
	return &Registry{revisions: rs}
}

// Get returns the commit hash for the given ordinal.
// Returns *OutOfRangeError for ordinals outside [1, Size]. Pure: the same
// ordinal always yields the same commit.
func (r *Registry) Get(ordinal int) (string, error) {
	if ordinal < 1 || ordinal > len(r.revisions) {
		return "", &OutOfRangeError{Ordinal: ordinal, Size: len(r.revisions)}
	}
	return r.revisions[ordinal-1].Commit, nil
}

// Size returns the number of tracked revisions.
func (r *Registry) Size() int {
	return len(r.revisions)
}

// Revisions returns a copy of the tracked revisions in ordinal order.
func (r *Registry) Revisions() []Revision {
	rs := make([]Revision, len(r.revisions))
	copy(rs, r.revisions)
	return rs
}
