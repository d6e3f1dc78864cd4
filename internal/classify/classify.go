// Package classify decides whether a launched terminal window should pause
// before closing, based on what kind of program is being run.
package classify

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ViewerPauseMaxLines is the size bound for pausing after a viewer: files
// with fewer lines fit on screen and would vanish with the window.
const ViewerPauseMaxLines = 30

// Kind is the behavior class of an app command.
type Kind int

const (
	KindUnknown Kind = iota
	KindEditor
	KindViewer
	KindAlwaysPause
)

func (k Kind) String() string {
	switch k {
	case KindEditor:
		return "editor"
	case KindViewer:
		return "viewer"
	case KindAlwaysPause:
		return "always-pause"
	default:
		return "unknown"
	}
}

// Classifier matches app commands against the configured name lists.
type Classifier struct {
	editors     []string
	viewers     []string
	alwaysPause []string
}

func New(editors, viewers, alwaysPause []string) *Classifier {
	return &Classifier{
		editors:     editors,
		viewers:     viewers,
		alwaysPause: alwaysPause,
	}
}

// Kind classifies the first word of the command. A list entry matches when
// the word equals or contains it, so "python3" matches the entry "python".
// Editors win over always-pause entries, which win over viewers.
func (c *Classifier) Kind(command string) Kind {
	word := FirstWord(command)
	switch {
	case matches(word, c.editors):
		return KindEditor
	case matches(word, c.alwaysPause):
		return KindAlwaysPause
	case matches(word, c.viewers):
		return KindViewer
	default:
		return KindUnknown
	}
}

// NeedsPause reports whether the window should pause before closing:
// editors never, always-pause apps always, viewers only when the target
// file exists and is small enough to vanish unread, anything unknown
// pauses to be safe. file may be empty.
func (c *Classifier) NeedsPause(command, file string) bool {
	switch c.Kind(command) {
	case KindEditor:
		return false
	case KindAlwaysPause:
		return true
	case KindViewer:
		if file == "" {
			return false
		}
		lines, err := CountLines(file)
		if err != nil {
			return false
		}
		return lines < ViewerPauseMaxLines
	default:
		return true
	}
}

// FirstWord returns the first whitespace separated token of a command,
// lowercased.
func FirstWord(command string) string {
	fields := strings.Fields(strings.ToLower(command))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// CountLines counts lines the way a pager shows them: a trailing newline
// does not start another line.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	count := 0
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			count++
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func matches(word string, list []string) bool {
	for _, entry := range list {
		entry = strings.ToLower(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(word, entry) {
			return true
		}
	}
	return false
}
