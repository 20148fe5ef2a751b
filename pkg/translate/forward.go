package translate

import (
	"strings"

	"github.com/picrasm/picrasm/pkg/isa"
	"github.com/picrasm/picrasm/pkg/utils"
)

// Forward translates readable assembly into standard Microchip assembly.
// locale selects which readable names are recognized (isa.AnyLocale merges
// English and Slovenian, so mixed-language sources are fine); arch narrows
// the instruction set (isa.AnyArchitecture merges PIC18 and PIC16).
func (e *Engine) Forward(source string, locale isa.Locale, arch isa.Architecture) (string, error) {
	matcher, err := e.matcherFor(matcherKey{locale: locale, arch: arch})
	if err != nil {
		return "", err
	}

	return strings.Join(utils.Map(splitLines(source), func(line string) string {
		return forwardLine(line, matcher)
	}), "\n"), nil
}

func forwardLine(line string, matcher *Matcher) string {
	if isBlankOrComment(line) || isDirectiveLine(line) {
		return line
	}

	code, comment := splitComment(line)
	return matcher.Rewrite(code) + comment
}
