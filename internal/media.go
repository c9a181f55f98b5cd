package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind is the classified media type of a directory entry.
type Kind string

const (
	KindImage       Kind = "image"
	KindVideo       Kind = "video"
	KindUnsupported Kind = "unsupported"
)

// MediaFile is a single directory entry after classification. The extension
// keeps its original case so it can be carried verbatim into the new name.
type MediaFile struct {
	Name string // base name within the directory
	Ext  string // extension including the leading dot, case preserved
	Kind Kind
}

// Classifier matches file extensions against fixed image and video sets.
// The sets are established at construction time and not mutated afterwards.
type Classifier struct {
	imageExt map[string]bool
	videoExt map[string]bool
}

func NewClassifier(cfg *Config) *Classifier {
	c := &Classifier{
		imageExt: make(map[string]bool, len(cfg.ImageExt)),
		videoExt: make(map[string]bool, len(cfg.VideoExt)),
	}
	for _, e := range cfg.ImageExt {
		c.imageExt[strings.ToLower(e)] = true
	}
	for _, e := range cfg.VideoExt {
		c.videoExt[strings.ToLower(e)] = true
	}
	return c
}

// Classify builds a MediaFile from a base name. Extension matching is
// case-insensitive; anything outside the two sets is KindUnsupported.
func (c *Classifier) Classify(name string) MediaFile {
	ext := filepath.Ext(name)
	mf := MediaFile{Name: name, Ext: ext, Kind: KindUnsupported}

	switch lower := strings.ToLower(ext); {
	case c.imageExt[lower]:
		mf.Kind = KindImage
	case c.videoExt[lower]:
		mf.Kind = KindVideo
	}
	return mf
}

// ListMediaFiles lists a single directory (no recursion) and returns the
// entries that classify as image or video, in directory order.
func ListMediaFiles(dir string, c *Classifier) ([]MediaFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error scanning files: %w", err)
	}

	var files []MediaFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		mf := c.Classify(entry.Name())
		if mf.Kind == KindUnsupported {
			continue
		}
		files = append(files, mf)
	}
	return files, nil
}
