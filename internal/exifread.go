package internal

import (
	"bytes"
	"strings"
	"time"

	"github.com/barasher/go-exiftool"
	dexif "github.com/dsoprea/go-exif/v3"
	"github.com/rwcarlsen/goexif/exif"
)

const exifTimeLayout = "2006:01:02 15:04:05"

// EXIF timestamps carry no timezone; they are interpreted as local wall
// clock and never converted.
func parseExifTime(s string) (time.Time, error) {
	return time.ParseInLocation(exifTimeLayout, strings.TrimSpace(s), time.Local)
}

// primaryExifTime reads DateTimeOriginal, then the generic DateTime tag,
// with goexif. The second return reports whether a metadata container was
// decoded at all, which separates "no metadata" from "no date field".
func primaryExifTime(data []byte) (time.Time, bool, bool) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return time.Time{}, false, false
	}

	for _, field := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		s, err := tag.StringVal()
		if err != nil {
			continue
		}
		if t, err := parseExifTime(s); err == nil {
			return t, true, true
		}
	}
	return time.Time{}, true, false
}

// fallbackExifTime scans for DateTimeOriginal with the dsoprea decoder.
// It locates the raw TIFF block by byte signature rather than by container
// structure, so it reads vendor formats goexif cannot open.
func fallbackExifTime(data []byte) (time.Time, bool, bool) {
	raw, err := dexif.SearchAndExtractExif(data)
	if err != nil {
		return time.Time{}, false, false
	}

	tags, _, err := dexif.GetFlatExifData(raw, nil)
	if err != nil {
		return time.Time{}, true, false
	}

	for _, tag := range tags {
		if tag.TagName != "DateTimeOriginal" {
			continue
		}
		s, ok := tag.Value.(string)
		if !ok {
			s = tag.Formatted
		}
		if t, err := parseExifTime(s); err == nil {
			return t, true, true
		}
	}
	return time.Time{}, true, false
}

// exiftoolTime asks the external exiftool binary for a capture date. The
// process is started lazily on first use and kept for the rest of the run.
func (r *Resolver) exiftoolTime(path string) (time.Time, bool) {
	if r.et == nil {
		et, err := exiftool.NewExiftool()
		if err != nil {
			// exiftool not installed; the chain falls through to file times.
			return time.Time{}, false
		}
		r.et = et
	}

	for _, fm := range r.et.ExtractMetadata(path) {
		if fm.Err != nil {
			continue
		}
		for _, key := range []string{"DateTimeOriginal", "CreateDate"} {
			if s, ok := fm.Fields[key].(string); ok {
				if t, err := parseExifTime(s); err == nil {
					return t, true
				}
			}
		}
	}
	return time.Time{}, false
}
