package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// New records a stack at the call site.
func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark tags err with a taxonomy sentinel. A nil err yields the sentinel itself.
func Mark(err, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

// Is reports whether err carries reference, either through the wrap chain or a Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines renders err with its stack and keeps the first maxLines non-blank lines.
// maxLines <= 0 keeps everything.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	var out []string
	for _, line := range strings.Split(fmt.Sprintf("%+v", err), "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}
		out = append(out, line)
		if maxLines > 0 && len(out) == maxLines {
			break
		}
	}
	return out
}
