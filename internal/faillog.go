package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

var failureLogNames = map[FailureKind]string{
	FailureMetadataAbsent:  "meta_not_found.txt",
	FailureDateFieldAbsent: "date_not_found.txt",
	FailureUnreadableFile:  "invalid_image_files.txt",
}

// FailureLog keeps one append-only record per failure category, created on
// demand in dir. Each append opens the file, writes a single bare file name
// and closes again; nothing is batched.
type FailureLog struct {
	dir string
}

func NewFailureLog(dir string) *FailureLog {
	return &FailureLog{dir: dir}
}

func (l *FailureLog) Record(kind FailureKind, name string) error {
	logName, ok := failureLogNames[kind]
	if !ok {
		return fmt.Errorf("no failure log for category %q", kind)
	}

	f, err := os.OpenFile(filepath.Join(l.dir, logName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintln(f, name)
	return err
}
