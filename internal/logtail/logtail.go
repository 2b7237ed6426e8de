package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Field is one key=value pair from a log line.
type Field struct {
	Key   string
	Value string
}

// Entry is a log line split into its well-known parts.
type Entry struct {
	Time    string
	Level   string
	Message string
	Fields  []Field
	// Raw is the original line, kept for lines that are not key=value.
	Raw string
}

// Parse splits a log/slog text-handler line. Lines that do not start with a
// key=value pair come back with only Raw set.
func Parse(line string) Entry {
	entry := Entry{Raw: line}
	rest := strings.TrimSpace(line)
	for rest != "" {
		key, value, remaining, ok := nextPair(rest)
		if !ok {
			if entry.Level == "" && entry.Message == "" && len(entry.Fields) == 0 {
				return Entry{Raw: line}
			}
			break
		}
		switch key {
		case "time":
			entry.Time = value
		case "level":
			entry.Level = strings.ToUpper(value)
		case "msg":
			entry.Message = value
		default:
			entry.Fields = append(entry.Fields, Field{Key: key, Value: value})
		}
		rest = strings.TrimLeft(remaining, " ")
	}
	return entry
}

// nextPair reads `key=value` or `key="quoted value"` from the front of s.
func nextPair(s string) (key, value, rest string, ok bool) {
	eq := strings.IndexByte(s, '=')
	if eq <= 0 || strings.ContainsAny(s[:eq], " \t\"") {
		return "", "", "", false
	}
	key = s[:eq]
	s = s[eq+1:]
	if strings.HasPrefix(s, `"`) {
		end := closingQuote(s)
		if end < 0 {
			return "", "", "", false
		}
		unquoted, err := strconv.Unquote(s[:end+1])
		if err != nil {
			return "", "", "", false
		}
		return key, unquoted, s[end+1:], true
	}
	if sp := strings.IndexByte(s, ' '); sp >= 0 {
		return key, s[:sp], s[sp:], true
	}
	return key, s, "", true
}

func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
