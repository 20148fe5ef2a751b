package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jeandeaual/go-locale"
	"github.com/picrasm/picrasm/pkg/isa"
	"github.com/picrasm/picrasm/pkg/translate"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var reverseCmd = &cobra.Command{
	Use:   "reverse <input.asm>",
	Short: "Translate standard Microchip assembly to readable assembly",
	Long: `Translates a standard PIC16/PIC18 assembly file (.asm) back into readable
assembly (.rasm) with English or Slovenian instruction names.

The move-class instructions become assignment syntax:

  MOVLW 0x05          ->  wreg = 0x05
  MOVWF PORTB, ACCESS ->  PORTB = wreg, ACCESS
  MOVFF TEMP, PORTA   ->  PORTA = TEMP

Every other known mnemonic is replaced with its readable name; comments,
labels, directives and operands pass through untouched.

When --lang is not given, the language is picked from the system locale
(Slovenian locales get si, everything else en).`,
	Args: cobra.ExactArgs(1),
	Run:  runReverse,
}

func init() {
	RootCmd.AddCommand(reverseCmd)

	reverseCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the translation is dumped to stdout.")
	reverseCmd.Flags().String("lang", "", "Readable-name language to emit: en or si (default: system locale)")
}

func runReverse(cmd *cobra.Command, args []string) {
	inputPath := args[0]

	lang := stringFlag(cmd, "lang")
	if lang == "" {
		lang = string(systemLocale())
	}

	target, err := isa.ParseLocale(lang)
	if err != nil || target == isa.AnyLocale {
		fmt.Fprintf(os.Stderr, "Error: --lang must be en or si, got %q\n", lang)
		os.Exit(1)
	}

	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading input:", err)
		os.Exit(1)
	}

	engine, err := translate.Default()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	slog.Debug("reverse translation", "input", inputPath, "lang", target)

	result, err := engine.Reverse(string(source), target)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	writeResult(cmd, result, "Readable assembly written to:")
}

// systemLocale maps the host locale onto a readable-name language, defaulting
// to English for anything that is not Slovenian.
func systemLocale() isa.Locale {
	locales, err := locale.GetLocales()
	if err != nil {
		return isa.English
	}

	return matchLocale(locales)
}

func matchLocale(locales []string) isa.Locale {
	if len(locales) == 0 {
		return isa.English
	}

	matcher := language.NewMatcher([]language.Tag{language.English, language.Slovenian})

	if _, index := language.MatchStrings(matcher, locales...); index == 1 {
		return isa.Slovenian
	}

	return isa.English
}
