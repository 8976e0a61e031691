package catches

import "strings"

// SplitCommaNotes splits comma separated notes, trimming each one and
// dropping the empty ones.
func SplitCommaNotes(s string) []string {
	return CleanNotes(strings.Split(s, ","))
}

// CleanNotes trims each note and drops the empty ones. Commas inside a note
// are kept.
func CleanNotes(list []string) []string {
	notes := []string{}
	for _, note := range list {
		if note = strings.TrimSpace(note); note != "" {
			notes = append(notes, note)
		}
	}
	return notes
}

// SplitLineNotes splits one note per line and drops blank lines. Kept lines
// are not trimmed.
func SplitLineNotes(s string) []string {
	notes := []string{}
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			notes = append(notes, line)
		}
	}
	return notes
}

// JoinLineNotes is the textarea form of notes, one per line.
func JoinLineNotes(notes []string) string {
	return strings.Join(notes, "\n")
}
