// Package history provides the implementation for tracking and persisting past audit summaries.
package history

import (
	"time"

	"github.com/metafates/gache"
	"github.com/oklint-cli/oklint/filesystem"
	"github.com/oklint-cli/oklint/report"
	"github.com/oklint-cli/oklint/where"
)

// SavedRun is a condensed audit outcome for a single token file.
type SavedRun struct {
	Source    string    `json:"source"`
	Passed    int       `json:"passed"`
	Failed    int       `json:"failed"`
	CheckedAt time.Time `json:"checked_at"`
}

// cacher provides an abstracted, disk-backed registry for audit summaries keyed by token file path.
var cacher = gache.New[map[string]*SavedRun](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of saved audit summaries from the persistent store.
func Get() (map[string]*SavedRun, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedRun), nil
	}
	return cached, nil
}

// Save persists the summary of a completed audit run to the history registry.
// Re-checking the same token file overwrites its previous summary.
func Save(r *report.Report) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	saved[r.Source] = &SavedRun{
		Source:    r.Source,
		Passed:    r.Passed,
		Failed:    r.Failed,
		CheckedAt: time.Now(),
	}

	return cacher.Set(saved)
}

// Remove permanently deletes the summary for a specific token file from the history registry.
func Remove(source string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, source)
	return cacher.Set(saved)
}
