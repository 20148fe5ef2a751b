package translate

import (
	"strings"
)

// Assembler directives and pseudo-ops that are never translated in either
// direction. Compared case-insensitively against the first non-label token
// of a line, with leading . or # stripped.
var directives = map[string]struct{}{}

func init() {
	for _, directive := range []string{
		"LIST", "INCLUDE", "CONFIG", "ORG", "EQU", "SET", "CONSTANT",
		"VARIABLE", "CBLOCK", "ENDC", "DB", "DW", "DE", "DT", "DATA", "RES",
		"FILL", "IF", "ELSE", "ENDIF", "IFDEF", "IFNDEF", "WHILE", "ENDW",
		"MACRO", "ENDM", "LOCAL", "EXITM", "EXPAND", "NOEXPAND", "MESSG",
		"ERROR", "ERRORLEVEL", "PAGE", "TITLE", "SUBTITLE", "SPACE", "NOLIST",
		"RADIX", "PROCESSOR", "END", "BANKSEL", "BANKISEL", "PAGESEL",
		"__CONFIG", "__IDLOCS", "__BADRAM", "__MAXRAM",
	} {
		directives[directive] = struct{}{}
	}
}

// splitLines normalizes line terminators and splits the source into lines.
// Joining the result with \n preserves line count and order exactly.
func splitLines(source string) []string {
	normalized := strings.ReplaceAll(source, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.Split(normalized, "\n")
}

// splitComment splits a line at the first ; into code and comment parts.
// The comment part, if any, starts at the ; and is preserved verbatim.
func splitComment(line string) (code string, comment string) {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i], line[i:]
	}

	return line, ""
}

// isBlankOrComment reports whether the line is empty or a pure comment line.
func isBlankOrComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, ";")
}

// isDirectiveLine reports whether the first non-label token of the line is an
// assembler directive or a preprocessor token. Such lines pass through
// untranslated.
func isDirectiveLine(line string) bool {
	code, _ := splitComment(line)

	for _, token := range strings.Fields(code) {
		if strings.HasSuffix(token, ":") {
			// Label, inspect the next token.
			continue
		}

		if strings.HasPrefix(token, "#") {
			return true
		}

		_, ok := directives[strings.ToUpper(strings.TrimLeft(token, "."))]
		return ok
	}

	return false
}
