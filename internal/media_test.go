package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func testConfig() *Config {
	return &Config{
		ImageExt:    []string{".jpg", ".jpeg", ".png", ".heic"},
		VideoExt:    []string{".mov", ".mp4", ".mkv"},
		ImagePrefix: "IMG_",
		VideoPrefix: "VID_",
	}
}

func TestClassify(t *testing.T) {
	c := NewClassifier(testConfig())

	testCases := []struct {
		name string
		kind Kind
		ext  string
	}{
		{"photo.jpg", KindImage, ".jpg"},
		{"photo.JPEG", KindImage, ".JPEG"},
		{"shot.HEIC", KindImage, ".HEIC"},
		{"clip.mov", KindVideo, ".mov"},
		{"clip.MP4", KindVideo, ".MP4"},
		{"notes.txt", KindUnsupported, ".txt"},
		{"noextension", KindUnsupported, ""},
		{"archive.tar.gz", KindUnsupported, ".gz"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mf := c.Classify(tc.name)
			if mf.Kind != tc.kind {
				t.Errorf("Expected kind %s, got %s", tc.kind, mf.Kind)
			}
			if mf.Ext != tc.ext {
				t.Errorf("Expected ext %q, got %q", tc.ext, mf.Ext)
			}
			if mf.Name != tc.name {
				t.Errorf("Expected name %s, got %s", tc.name, mf.Name)
			}
		})
	}
}

func TestListMediaFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a.jpg", "b.MOV", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	// Subdirectories are ignored, even with a media-looking name.
	if err := os.Mkdir(filepath.Join(dir, "sub.jpg"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := ListMediaFiles(dir, NewClassifier(testConfig()))
	if err != nil {
		t.Fatalf("ListMediaFiles failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Expected 2 media files, got %d", len(files))
	}
	for _, mf := range files {
		if mf.Kind == KindUnsupported {
			t.Errorf("Unsupported entry in listing: %s", mf.Name)
		}
	}
}

func TestListMediaFiles_MissingDir(t *testing.T) {
	if _, err := ListMediaFiles(filepath.Join(t.TempDir(), "nope"), NewClassifier(testConfig())); err == nil {
		t.Error("Expected error for missing directory")
	}
}
