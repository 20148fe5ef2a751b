package translate

import (
	"strings"
)

// Matcher is a compiled multi-pattern matcher that replaces whole-token
// occurrences of a fixed key set inside a line of text. Keys match
// case-insensitively and the longest key always wins, so TBLRD*+ is never
// matched as TBLRD* followed by a stray +. A match must not touch an
// identifier character on either side, but * and + adjacency is legal since
// the table read/write mnemonics contain both.
type Matcher struct {
	root *matchNode
}

type matchNode struct {
	children    map[byte]*matchNode
	replacement string
	terminal    bool
}

// identByte reports whether b can appear inside an identifier. Bytes outside
// ASCII count as identifier bytes so a key never matches inside an identifier
// containing multi-byte characters.
func identByte(b byte) bool {
	return b == '_' || b >= 0x80 ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}

func foldByte(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}

	return b
}

// NewMatcher compiles a replacement table into a byte trie over the
// case-folded key set.
func NewMatcher(replacements map[string]string) *Matcher {
	root := &matchNode{}

	for key, replacement := range replacements {
		node := root

		for i := 0; i < len(key); i++ {
			b := foldByte(key[i])

			if node.children == nil {
				node.children = make(map[byte]*matchNode)
			}

			child, ok := node.children[b]
			if !ok {
				child = &matchNode{}
				node.children[b] = child
			}

			node = child
		}

		node.terminal = true
		node.replacement = replacement
	}

	return &Matcher{root: root}
}

// Rewrite replaces every whole-token match in text with its replacement,
// leaving all other bytes untouched.
func (m *Matcher) Rewrite(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	i := 0

	for i < len(text) {
		if i == 0 || !identByte(text[i-1]) {
			if end, replacement, ok := m.longestMatch(text, i); ok {
				out.WriteString(replacement)
				i = end
				continue
			}
		}

		out.WriteByte(text[i])
		i++
	}

	return out.String()
}

// longestMatch walks the trie from position start and returns the longest
// key ending on a token boundary.
func (m *Matcher) longestMatch(text string, start int) (end int, replacement string, ok bool) {
	node := m.root

	for j := start; j < len(text); j++ {
		node = node.children[foldByte(text[j])]
		if node == nil {
			break
		}

		if node.terminal && (j+1 == len(text) || !identByte(text[j+1])) {
			end, replacement, ok = j+1, node.replacement, true
		}
	}

	return end, replacement, ok
}
