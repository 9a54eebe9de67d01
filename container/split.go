package container

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arloliu/gcovblob/internal/collision"
)

// Split writes every record of data to its own file and returns the paths written.
//
// With an empty dir each record goes to its recorded filename, which is where
// gcov looks for it when run in the build tree. Otherwise filenames are rooted
// under dir: "/build/obj/a.gcda" becomes dir/build/obj/a.gcda, and ".." elements
// cannot escape dir.
//
// Nothing is written unless the whole container parses and no filename repeats.
func Split(data []byte, dir string) ([]string, error) {
	entries, err := Parse(data)
	if err != nil {
		return nil, err
	}

	tracker := collision.NewTracker()
	for _, e := range entries {
		if err := tracker.Track(e.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		path := OutputPath(dir, e.Name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return paths, fmt.Errorf("create directory for %s: %w", e.Name, err)
		}
		if err := os.WriteFile(path, e.Payload, 0o644); err != nil { //nolint: gosec
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// OutputPath returns where Split writes the record named name.
func OutputPath(dir, name string) string {
	if dir == "" {
		return filepath.Clean(name)
	}

	return filepath.Join(dir, filepath.Clean(string(filepath.Separator)+name))
}
