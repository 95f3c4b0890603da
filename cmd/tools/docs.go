package tools

import (
	"fmt"
	"os"
	"strings"

	"github.com/hdlkit/regmap/pkg/registers"
	"github.com/hdlkit/regmap/pkg/utils"
	"github.com/spf13/cobra"
)

func modesDocString() string {
	var builder strings.Builder

	builder.WriteString("Register modes:\n")

	for _, mode := range registers.AllModes() {
		descriptor := mode.Descriptor()

		builder.WriteString(fmt.Sprintf("  %-10s %s (readable: %v, writeable: %v)\n",
			descriptor.Key, descriptor.Description, mode.IsReadable(), mode.IsWriteable()))
	}

	return builder.String()
}

func fieldsDocString() string {
	return fmt.Sprintf(`Register fields:

Every register is %v bits wide and may be divided into named fields. Fields
are placed in declaration order, starting at bit 0.

  bit         A single bit. Properties: description, default_value ("0" or "1").
  bit_vector  A span of bits. Properties: width (required), description,
              default_value (a binary literal of exactly width characters).
  integer     A bounded integer. Properties: max_value (required), min_value,
              description and default_value. The field is automatically made
              as narrow as the value range allows.
`, registers.RegisterWidth)
}

func constantsDocString() string {
	return `Constants:

A constant has a value of one of four types, inferred from the TOML/YAML
value: integer, boolean, float or string. String constants may carry an
optional data_type property:

  path             The value is a filesystem path.
  unsigned_vector  The value is a binary (0b...) or hexadecimal (0x...)
                   literal of arbitrary width.
`
}

var supportedModules = map[string]func() string{
	"registers.modes":     modesDocString,
	"registers.fields":    fieldsDocString,
	"registers.constants": constantsDocString,
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show regmap documentation",
	Long: `Dumps the documentation of the specified regmap module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.

Supported modules:
` + strings.Join(utils.Map(utils.Keys(supportedModules), func(module string) string { return "  " + module }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.MaximumNArgs(1), cobra.MinimumNArgs(1)),
	ValidArgs: utils.Keys(supportedModules),
	Run: func(cmd *cobra.Command, args []string) {
		module := args[0]
		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			file, err := os.Create(outputFile)
			if err != nil {
				fmt.Println("Error creating file:", err)
				os.Exit(1)
			}
			defer file.Close()
			fmt.Fprintln(file, supportedModules[module]())
		} else {
			fmt.Println(supportedModules[module]())
		}
	},
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
