package translate

import (
	"regexp"
	"strings"

	"github.com/picrasm/picrasm/pkg/isa"
	"github.com/picrasm/picrasm/pkg/utils"
)

// Matches a line whose instruction is one of the three move-class mnemonics,
// capturing indentation, an optional label, the operand list and an optional
// trailing comment.
var moveAssignPattern = regexp.MustCompile(
	`^(\s*)(?:(\w+):\s*)?((?i:MOVLW|MOVWF|MOVFF))\s+([^;]+?)(\s*;.*)?$`,
)

// Reverse translates standard Microchip assembly into readable assembly for
// one locale. MOVLW/MOVWF/MOVFF become assignment syntax, every other known
// mnemonic is replaced by its readable name, and everything else passes
// through unchanged.
func (e *Engine) Reverse(source string, locale isa.Locale) (string, error) {
	matcher, err := e.matcherFor(matcherKey{locale: locale, reverse: true})
	if err != nil {
		return "", err
	}

	return strings.Join(utils.Map(splitLines(source), func(line string) string {
		return reverseLine(line, matcher)
	}), "\n"), nil
}

func reverseLine(line string, matcher *Matcher) string {
	if isBlankOrComment(line) || isDirectiveLine(line) {
		return line
	}

	if rewritten, ok := rewriteAssignment(line); ok {
		return rewritten
	}

	code, comment := splitComment(line)
	return matcher.Rewrite(code) + comment
}

// rewriteAssignment converts a move-class instruction into assignment syntax:
//
//	MOVLW <literal>          ->  wreg = <literal>
//	MOVWF <dest>[, <qual>]   ->  <dest> = wreg[, <qual>]
//	MOVFF <src>, <dest>      ->  <dest> = <src>
//
// A leading label is re-emitted as "label: " and a trailing comment is kept
// verbatim. Lines that do not match one of the three shapes report ok=false
// and fall back to generic mnemonic substitution.
func rewriteAssignment(line string) (rewritten string, ok bool) {
	groups := moveAssignPattern.FindStringSubmatch(line)
	if groups == nil {
		return "", false
	}

	indent, label := groups[1], groups[2]
	mnemonic := strings.ToUpper(groups[3])
	operands := strings.TrimSpace(groups[4])
	comment := strings.TrimRight(groups[5], " \t")

	prefix := indent
	if label != "" {
		prefix += label + ": "
	}

	switch mnemonic {
	case "MOVLW":
		return prefix + "wreg = " + operands + comment, true

	case "MOVWF":
		dest, qualifier, hasQualifier := strings.Cut(operands, ",")
		assignment := strings.TrimSpace(dest) + " = wreg"
		if hasQualifier {
			assignment += ", " + strings.TrimSpace(qualifier)
		}
		return prefix + assignment + comment, true

	case "MOVFF":
		src, dest, hasDest := strings.Cut(operands, ",")
		if !hasDest {
			return "", false
		}
		return prefix + strings.TrimSpace(dest) + " = " + strings.TrimSpace(src) + comment, true
	}

	return "", false
}
