package internal

import (
	"time"

	"github.com/djherbis/times"
)

// earliestFileTime returns the minimum of the file's modification time,
// status-change time and birth time. Any of the three can be advanced by a
// copy or a metadata edit, so the minimum is the most conservative estimate
// of when the file was actually created. On filesystems without a birth
// time, the status-change time stands in for it.
func earliestFileTime(path string) (time.Time, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, err
	}

	earliest := ts.ModTime()

	ctime := earliest
	if ts.HasChangeTime() {
		ctime = ts.ChangeTime()
	}
	birth := ctime
	if ts.HasBirthTime() {
		birth = ts.BirthTime()
	}

	for _, t := range []time.Time{ctime, birth} {
		if t.Before(earliest) {
			earliest = t
		}
	}
	return earliest.Truncate(time.Second), nil
}
