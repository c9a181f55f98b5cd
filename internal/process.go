package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

// RunStats tracks what happened over one directory pass.
type RunStats struct {
	Scanned  int
	Renamed  int
	Skipped  int
	Failures map[FailureKind]int
}

func (s RunStats) FailureCount() int {
	var n int
	for _, c := range s.Failures {
		n += c
	}
	return n
}

// Renamer wires the classifier, resolver, formatter and failure log into the
// per-file pipeline.
type Renamer struct {
	Classifier *Classifier
	Resolver   *Resolver
	Formatter  Formatter
	Failures   *FailureLog
	Stats      RunStats
}

// NewRenamer builds a Renamer from config; failure records go to the
// process working directory.
func NewRenamer(cfg *Config) *Renamer {
	return &Renamer{
		Classifier: NewClassifier(cfg),
		Resolver:   NewResolver(cfg.UseExifTool),
		Formatter:  NewFormatter(cfg),
		Failures:   NewFailureLog("."),
		Stats:      RunStats{Failures: make(map[FailureKind]int)},
	}
}

func (r *Renamer) Close() {
	r.Resolver.Close()
}

// ProcessDir renames every supported file in dir, strictly in sequence.
// Resolution failures are recorded and the file still gets a name from file
// times; a failed rename aborts the run so a half-renamed directory is
// surfaced instead of silently skipped.
func (r *Renamer) ProcessDir(dir string) error {
	files, err := ListMediaFiles(dir, r.Classifier)
	if err != nil {
		return err
	}

	for _, mf := range files {
		if err := r.processFile(dir, mf); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renamer) processFile(dir string, mf MediaFile) error {
	r.Stats.Scanned++
	src := filepath.Join(dir, mf.Name)

	out, err := r.Resolver.Resolve(src, mf.Kind)
	if err != nil {
		return fmt.Errorf("failed to get file date for %s: %w", src, err)
	}

	if out.Failure != FailureNone {
		r.Stats.Failures[out.Failure]++
		fmt.Printf("No capture date in %s (%s), using file times\n", mf.Name, out.Failure)
		if err := r.Failures.Record(out.Failure, mf.Name); err != nil {
			return fmt.Errorf("failed to record %s: %w", mf.Name, err)
		}
	}

	newName := r.Formatter.FileName(out.Time, mf.Kind, mf.Ext)
	if newName == mf.Name {
		r.Stats.Skipped++
		fmt.Printf("Skipping rename: %s\n", mf.Name)
		return nil
	}

	if err := os.Rename(src, filepath.Join(dir, newName)); err != nil {
		return err
	}

	r.Stats.Renamed++
	fmt.Printf("Renamed %s → %s\n", mf.Name, newName)
	return nil
}
