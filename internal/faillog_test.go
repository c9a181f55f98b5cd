package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFailureLog_Record(t *testing.T) {
	dir := t.TempDir()
	flog := NewFailureLog(dir)

	if err := flog.Record(FailureMetadataAbsent, "a.heic"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := flog.Record(FailureMetadataAbsent, "b.heic"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := flog.Record(FailureDateFieldAbsent, "c.jpg"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "meta_not_found.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a.heic\nb.heic\n" {
		t.Errorf("Unexpected meta_not_found.txt contents: %q", data)
	}

	data, err = os.ReadFile(filepath.Join(dir, "date_not_found.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "c.jpg\n" {
		t.Errorf("Unexpected date_not_found.txt contents: %q", data)
	}

	// Categories with no events leave no file behind.
	if _, err := os.Stat(filepath.Join(dir, "invalid_image_files.txt")); !os.IsNotExist(err) {
		t.Error("invalid_image_files.txt should not exist without events")
	}
}

func TestFailureLog_UnknownKind(t *testing.T) {
	flog := NewFailureLog(t.TempDir())
	if err := flog.Record(FailureNone, "x.jpg"); err == nil {
		t.Error("Expected error for unmapped failure kind")
	}
}
