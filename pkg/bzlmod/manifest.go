// SPDX-License-Identifier: MPL-2.0

package bzlmod

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
)

var (
	// ErrNameNotFound is returned when a manifest contains no module() declaration
	// with a name attribute.
	ErrNameNotFound = errors.New("module name not found")

	// ErrAmbiguousName is returned when a manifest declares a module name more
	// than once. A manifest must have exactly one name declaration.
	ErrAmbiguousName = errors.New("multiple module name declarations")
)

// ParseError describes a failure to extract the module name from a manifest.
// It wraps ErrNameNotFound or ErrAmbiguousName so callers can classify it
// with errors.Is.
type ParseError struct {
	Path string
	Err  error
}

// Error returns a human-readable description of the parse failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing manifest %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error { return e.Err }

// ModuleName reads the manifest file at path and returns the identifier
// declared via module(name = "..."). The scan tolerates arbitrary surrounding
// content, newlines inside the call, comments, and other attributes.
func ModuleName(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading manifest: %w", err)
	}

	name, err := extractModuleName(string(data))
	if err != nil {
		return "", &ParseError{Path: path, Err: err}
	}
	return name, nil
}

// extractModuleName scans src for module() calls and returns the single name
// attribute found across them. The scanner tracks paren depth and skips
// string literals and # comments, so a "module(" inside either does not
// confuse it. This is deliberately a small dedicated scanner rather than a
// regular expression over the whole document.
func extractModuleName(src string) (string, error) {
	var names []string

	for off := 0; ; {
		call, next, ok := nextModuleCall(src, off)
		if !ok {
			break
		}
		if name, ok := attrString(call, "name"); ok {
			names = append(names, name)
		}
		off = next
	}

	switch len(names) {
	case 0:
		return "", ErrNameNotFound
	case 1:
		return names[0], nil
	default:
		return "", ErrAmbiguousName
	}
}

// nextModuleCall locates the next top-level module(...) call at or after off.
// It returns the text between the call's parentheses, the offset just past the
// closing paren, and whether a complete call was found.
func nextModuleCall(src string, off int) (body string, next int, ok bool) {
	for i := off; i < len(src); i++ {
		switch src[i] {
		case '#':
			i = skipLine(src, i)
		case '"', '\'':
			i = skipString(src, i)
		default:
			if !isIdentStart(src, i) || !strings.HasPrefix(src[i:], "module") {
				continue
			}
			j := skipSpace(src, i+len("module"))
			if j >= len(src) || src[j] != '(' {
				i = j - 1
				continue
			}
			end, balanced := matchParen(src, j)
			if !balanced {
				return "", len(src), false
			}
			return src[j+1 : end], end + 1, true
		}
	}
	return "", len(src), false
}

// matchParen returns the index of the parenthesis closing the one at open.
// Strings and comments inside the call are skipped.
func matchParen(src string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '#':
			i = skipLine(src, i)
		case '"', '\'':
			i = skipString(src, i)
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return len(src), false
}

// attrString finds attr = "value" inside a call body and returns the value.
func attrString(body, attr string) (string, bool) {
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '#':
			i = skipLine(body, i)
		case '"', '\'':
			i = skipString(body, i)
		default:
			if !isIdentStart(body, i) || !strings.HasPrefix(body[i:], attr) {
				continue
			}
			j := i + len(attr)
			if j < len(body) && isIdentChar(body[j]) {
				i = j - 1
				continue
			}
			j = skipSpace(body, j)
			if j >= len(body) || body[j] != '=' {
				i = j - 1
				continue
			}
			j = skipSpace(body, j+1)
			if j >= len(body) || (body[j] != '"' && body[j] != '\'') {
				return "", false
			}
			end := skipString(body, j)
			if end >= len(body) {
				return "", false
			}
			return body[j+1 : end], true
		}
	}
	return "", false
}

// skipLine advances past the end of the current line.
func skipLine(s string, i int) int {
	for ; i < len(s); i++ {
		if s[i] == '\n' {
			return i
		}
	}
	return i
}

// skipString advances from an opening quote at i to the matching closing
// quote, honoring backslash escapes. Returns the closing quote's index, or
// len(s) when the literal is unterminated.
func skipString(s string, i int) int {
	quote := s[i]
	for i++; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			return i
		}
	}
	return len(s)
}

// skipSpace advances past whitespace, including newlines.
func skipSpace(s string, i int) int {
	for i < len(s) && unicode.IsSpace(rune(s[i])) {
		i++
	}
	return i
}

// isIdentStart reports whether the identifier-like token at i starts here,
// i.e. the preceding byte cannot extend an identifier.
func isIdentStart(s string, i int) bool {
	return i == 0 || !isIdentChar(s[i-1])
}

func isIdentChar(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
