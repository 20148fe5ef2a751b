package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/picrasm/picrasm/pkg/isa"
	"github.com/picrasm/picrasm/pkg/translate"
	"github.com/picrasm/picrasm/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	colorSection  = color.New(color.FgWhite, color.Bold, color.Underline)
	colorCategory = color.New(color.FgCyan, color.Bold)
	colorHeading  = color.New(color.FgHiBlack)
	colorMnemonic = color.New(color.FgYellow)
)

var sectionTitles = map[isa.Architecture]map[isa.Locale]string{
	isa.PIC18: {
		isa.English:   "PIC18 READABLE ASSEMBLY - INSTRUCTION REFERENCE (ENGLISH)",
		isa.Slovenian: "PIC18 BERLJIV ZBIRNIK - SEZNAM UKAZOV (SLOVENSCINA)",
	},
	isa.PIC16: {
		isa.English:   "PIC16 READABLE ASSEMBLY - INSTRUCTION REFERENCE (ENGLISH)",
		isa.Slovenian: "PIC16 BERLJIV ZBIRNIK - SEZNAM UKAZOV (SLOVENSCINA)",
	},
}

var refCmd = &cobra.Command{
	Use:   "ref",
	Short: "Print the instruction reference tables",
	Long: `Prints the full readable-name reference, grouped by instruction category,
for every selected architecture and language.

This is a read-only report of the loaded instruction tables; it performs no
translation.`,
	Args: cobra.NoArgs,
	Run:  runRef,
}

func init() {
	RootCmd.AddCommand(refCmd)

	refCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the reference is dumped to stdout.")
	refCmd.Flags().String("lang", "all", "Languages to list: en, si or all")
	refCmd.Flags().String("arch", "any", "Architectures to list: pic16, pic18 or any")
}

func runRef(cmd *cobra.Command, args []string) {
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

	engine, err := translate.Default()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	out := io.Writer(os.Stdout)
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error creating file:", err)
			os.Exit(1)
		}
		defer file.Close()

		// No escape codes in files.
		color.NoColor = true
		out = file
	}

	tables := engine.Tables()

	for _, a := range tables.Architectures() {
		if arch != isa.AnyArchitecture && arch != a {
			continue
		}

		for _, l := range tables.Locales() {
			if locale != isa.AnyLocale && locale != l {
				continue
			}

			printSection(out, sectionTitles[a][l], tables.Categories(a, l))
		}
	}
}

func printSection(out io.Writer, title string, categories []isa.Category) {
	rule := strings.Repeat("=", 72)

	fmt.Fprintln(out, rule)
	colorSection.Fprintf(out, "  %s\n", title)
	fmt.Fprintln(out, rule)

	nameWidth := utils.MaxOf(categories, func(category isa.Category) int {
		return utils.MaxOf(category.Entries, func(entry isa.Entry) int {
			return len(entry.Name)
		})
	})

	for _, category := range categories {
		pad := max(55-len(category.Title), 4)

		fmt.Fprintln(out)
		colorCategory.Fprintf(out, "-- %s %s\n", category.Title, strings.Repeat("-", pad))
		colorHeading.Fprintf(out, "  %-*s %s\n", nameWidth, "Readable Name", "Mnemonic")
		colorHeading.Fprintf(out, "  %s %s\n", strings.Repeat("-", nameWidth), strings.Repeat("-", 8))

		for _, entry := range category.Entries {
			fmt.Fprintf(out, "  %-*s ", nameWidth, entry.Name)
			colorMnemonic.Fprintln(out, entry.Mnemonic)
		}
	}

	fmt.Fprintln(out)
}
