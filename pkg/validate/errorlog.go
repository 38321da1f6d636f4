package validate

import (
	"fmt"
	"sort"
)

// ErrorLog accumulates violation messages across checks. It is owned by
// the runner and handed to each check in turn; execution is strictly
// sequential, so no locking is involved.
type ErrorLog struct {
	messages []string
}

// Addf records one formatted violation.
func (l *ErrorLog) Addf(format string, args ...any) {
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

// AddErr records an internal failure (such as a membership set that could
// not be resolved) as a violation in its own right.
func (l *ErrorLog) AddErr(err error) {
	l.messages = append(l.messages, err.Error())
}

// Len returns the number of recorded messages, duplicates included.
func (l *ErrorLog) Len() int {
	return len(l.messages)
}

// Messages returns the recorded violations deduplicated and sorted.
// Several checks can detect the same root cause, and emission order must
// not depend on map iteration, so the report is normalized here.
func (l *ErrorLog) Messages() []string {
	out := make([]string, len(l.messages))
	copy(out, l.messages)
	sort.Strings(out)

	deduped := out[:0]
	var prev string
	for i, msg := range out {
		if i == 0 || msg != prev {
			deduped = append(deduped, msg)
		}
		prev = msg
	}
	return deduped
}
