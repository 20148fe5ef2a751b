package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/picrasm/picrasm/pkg/isa"
	"github.com/picrasm/picrasm/pkg/translate"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <input.rasm>",
	Short: "Translate readable assembly to standard Microchip assembly",
	Long: `Translates a readable assembly source file (.rasm) into standard Microchip
assembly (.asm) that MPASM / pic-as / gpasm can consume.

By default both English and Slovenian readable names are recognized, so the
two languages can be mixed freely in one source file, and the instruction set
is the union of PIC18 and PIC16. Use --lang and --arch to narrow either.

Comment lines, inline comments, labels, assembler directives and operands are
passed through byte for byte; only readable instruction names are replaced.

Examples:
  # Translate to stdout
  picrasm build blink.rasm

  # Translate into a file, PIC16 names only
  picrasm build --arch pic16 -o blink.asm blink.rasm`,
	Args: cobra.ExactArgs(1),
	Run:  runBuild,
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the translation is dumped to stdout.")
	buildCmd.Flags().String("lang", "all", "Readable-name language to recognize: en, si or all")
	buildCmd.Flags().String("arch", "any", "Instruction set: pic16, pic18 or any")
}

func runBuild(cmd *cobra.Command, args []string) {
	inputPath := args[0]

	locale, err := isa.ParseLocale(stringFlag(cmd, "lang"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	arch, err := isa.ParseArchitecture(stringFlag(cmd, "arch"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
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

	slog.Debug("forward translation",
		"input", inputPath, "lang", locale, "arch", arch,
		"entries", engine.Tables().EntryCount())

	result, err := engine.Forward(string(source), locale, arch)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	writeResult(cmd, result, "Translated assembly written to:")
}

// writeResult dumps a translation either to the --output file or to stdout.
func writeResult(cmd *cobra.Command, result string, doneMessage string) {
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath == "" {
		fmt.Println(result)
		return
	}

	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}

	if err := os.WriteFile(outputPath, []byte(result), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing output:", err)
		os.Exit(1)
	}

	fmt.Println(doneMessage, outputPath)
}
