package internal

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/barasher/go-exiftool"

	_ "image/jpeg"
	_ "image/png"
)

// Source tags where a resolved capture timestamp came from.
type Source string

const (
	SourceExifPrimary  Source = "exif_primary"
	SourceExifFallback Source = "exif_fallback_reader"
	SourceFilesystem   Source = "filesystem"
)

// FailureKind classifies why metadata resolution produced no timestamp.
type FailureKind string

const (
	FailureNone            FailureKind = ""
	FailureMetadataAbsent  FailureKind = "metadata_absent"
	FailureDateFieldAbsent FailureKind = "date_field_absent"
	FailureUnreadableFile  FailureKind = "unreadable_file"
)

// ResolutionOutcome is the result of resolving one file. When Failure is set
// the timestamp holds the filesystem fallback, so every file that reaches
// rename time still carries exactly one usable timestamp.
type ResolutionOutcome struct {
	Time    time.Time
	Source  Source
	Failure FailureKind
}

// Resolver derives a single best-effort capture timestamp per file from a
// prioritized chain of metadata readers with a filesystem fallback.
type Resolver struct {
	useExifTool bool
	et          *exiftool.Exiftool
}

func NewResolver(useExifTool bool) *Resolver {
	return &Resolver{useExifTool: useExifTool}
}

// Close shuts down the exiftool process if one was started.
func (r *Resolver) Close() {
	if r.et != nil {
		r.et.Close()
		r.et = nil
	}
}

// Resolve returns the capture timestamp for path. The error return is
// reserved for stat failures, which the caller treats as fatal; metadata
// problems come back as a failure classification instead.
func (r *Resolver) Resolve(path string, kind Kind) (ResolutionOutcome, error) {
	fsTime, err := earliestFileTime(path)
	if err != nil {
		return ResolutionOutcome{}, err
	}

	if kind != KindImage {
		// No portable embedded metadata for video; file times only.
		return ResolutionOutcome{Time: fsTime, Source: SourceFilesystem}, nil
	}

	metaTime, src, fail := r.metadataTime(path)
	if fail != FailureNone {
		return ResolutionOutcome{Time: fsTime, Source: SourceFilesystem, Failure: fail}, nil
	}

	// Camera clocks can be reset to the epoch or drift into the future, but
	// the earliest filesystem timestamp is an upper bound on when the file
	// could have appeared. The earlier of the two wins.
	if fsTime.Before(metaTime) {
		return ResolutionOutcome{Time: fsTime, Source: SourceFilesystem}, nil
	}
	return ResolutionOutcome{Time: metaTime, Source: src}, nil
}

// metadataTime runs the reader chain: goexif, then the independent go-exif
// scanner, then (when enabled) the exiftool binary.
func (r *Resolver) metadataTime(path string) (time.Time, Source, FailureKind) {
	data, err := os.ReadFile(path)
	if err != nil {
		return time.Time{}, "", FailureUnreadableFile
	}

	// Formats the standard library can decode are verified up front; a file
	// that is not decodable as an image gets no metadata attempt at all.
	// HEIC has no registered decoder and goes straight to the readers.
	if hasStdDecoder(filepath.Ext(path)) {
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			return time.Time{}, "", FailureUnreadableFile
		}
	}

	t, containerSeen, ok := primaryExifTime(data)
	if ok {
		return t, SourceExifPrimary, FailureNone
	}

	var seen bool
	t, seen, ok = fallbackExifTime(data)
	containerSeen = containerSeen || seen
	if ok {
		return t, SourceExifFallback, FailureNone
	}

	if r.useExifTool {
		if t, ok := r.exiftoolTime(path); ok {
			return t, SourceExifFallback, FailureNone
		}
	}

	if containerSeen {
		return time.Time{}, "", FailureDateFieldAbsent
	}
	return time.Time{}, "", FailureMetadataAbsent
}

func hasStdDecoder(ext string) bool {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}
