package internal

import "time"

// Formatter builds canonical filenames from a resolved capture timestamp.
type Formatter struct {
	ImagePrefix string
	VideoPrefix string
}

func NewFormatter(cfg *Config) Formatter {
	return Formatter{ImagePrefix: cfg.ImagePrefix, VideoPrefix: cfg.VideoPrefix}
}

// FileName returns prefix + YYYYMMDD_HHMMSS + extension. The timestamp is
// written as stored, local wall clock, and the extension is carried verbatim
// from the source file.
func (f Formatter) FileName(ts time.Time, kind Kind, ext string) string {
	prefix := f.ImagePrefix
	if kind == KindVideo {
		prefix = f.VideoPrefix
	}
	return prefix + ts.Format("20060102_150405") + ext
}
