package token

import "strings"

// commentStart returns the index of the first '#' in line which is not part
// of a "##" pair, or -1.
func commentStart(line string) int {
	n := len(line)
	i := 0
	for i < n {
		if line[i] != '#' {
			i++
			continue
		}
		if i+1 < n && line[i+1] == '#' {
			i += 2
			continue
		}
		return i
	}
	return -1
}

// SplitComment splits line into the text before its comment and the
// comment. The comment keeps the whitespace that precedes the '#' so that
// alignment survives a round trip; without a comment it holds the trailing
// whitespace of line. The text is returned as written, with "##" escapes
// intact.
func SplitComment(line string) (text, comment string) {
	c := commentStart(line)
	if c == -1 {
		c = len(line)
	}
	text = strings.TrimRight(line[:c], " \t")
	return text, line[len(text):]
}

// UnescapeHashes turns "##" into '#'.
func UnescapeHashes(s string) string {
	return strings.ReplaceAll(s, "##", "#")
}

// EscapeHashes turns '#' into "##" so that s is not read back as a comment.
func EscapeHashes(s string) string {
	return strings.ReplaceAll(s, "#", "##")
}

// IsBlockComment reports whether the line opens or closes a block comment.
func IsBlockComment(line string) bool {
	return strings.TrimSpace(line) == "###"
}

// isCommentLine reports whether line holds only a comment. A line starting
// with the "##" escape is text unless it is made of hashes alone, like a
// "#####" banner.
func isCommentLine(line string) bool {
	rest := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(rest, "#") {
		return false
	}
	text, _ := SplitComment(rest)
	return strings.Trim(text, "#") == ""
}

func splitIndent(s string) (indent, rest string) {
	rest = strings.TrimLeft(s, " \t")
	return s[:len(s)-len(rest)], rest
}
