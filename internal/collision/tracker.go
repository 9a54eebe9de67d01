package collision

import (
	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/internal/hash"
)

// Tracker detects repeated record filenames while a container is split into
// gcda files. Two records with the same filename would overwrite each other on
// disk, so a repeat is an error.
//
// Filenames are keyed by their xxHash64 path ID. A hash collision between two
// different filenames is not an error; the colliding names are kept in a
// separate exact-match set.
type Tracker struct {
	paths        map[uint64]string   // path ID → first filename seen with that ID
	collided     map[string]struct{} // filenames whose ID was already taken
	pathList     []string            // filenames in tracking order
	hasCollision bool
}

// NewTracker creates a new filename tracker.
func NewTracker() *Tracker {
	return &Tracker{
		paths:    make(map[uint64]string),
		pathList: make([]string, 0),
	}
}

// Track records filename.
//
// Returns:
//   - error: ErrInvalidFilename for an empty name, ErrDuplicateFilename if the
//     name was tracked before
func (t *Tracker) Track(filename string) error {
	return t.track(filename, hash.PathID(filename))
}

func (t *Tracker) track(filename string, id uint64) error {
	if filename == "" {
		return errs.ErrInvalidFilename
	}

	if existing, exists := t.paths[id]; exists {
		if existing == filename {
			return errs.ErrDuplicateFilename
		}
		if _, dup := t.collided[filename]; dup {
			return errs.ErrDuplicateFilename
		}
		if t.collided == nil {
			t.collided = make(map[string]struct{})
		}
		t.collided[filename] = struct{}{}
		t.hasCollision = true
	} else {
		t.paths[id] = filename
	}

	t.pathList = append(t.pathList, filename)

	return nil
}

// HasCollision returns true if two different filenames shared a path ID.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Paths returns the tracked filenames in tracking order.
func (t *Tracker) Paths() []string {
	return t.pathList
}

// Count returns the number of tracked filenames.
func (t *Tracker) Count() int {
	return len(t.pathList)
}
