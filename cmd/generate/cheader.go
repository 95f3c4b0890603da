package generate

import (
	"fmt"
	"os"

	"github.com/hdlkit/regmap/pkg/generators/cheader"
	"github.com/spf13/cobra"
)

var cheaderCmd = &cobra.Command{
	Use:   "c <file>",
	Short: "Generate a C register header",
	Long: `Generates a C header with register indexes, field shifts and masks, and
constants of the module, for use by bare metal software.

The artifact is written to <output>/<module>_regs.h.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		list := loadList(args[0])
		generator, err := cheader.NewGenerator(moduleName, generatedInfo(args[0]))

		if err != nil {
			fmt.Fprintf(os.Stderr, "error initializing cheader.Generator: %v\n", err)
			os.Exit(1)
		}

		runGenerator(generator, list, fmt.Sprintf("%s_regs.h", moduleName))
	},
}

func init() {
	GenerateCmd.AddCommand(cheaderCmd)
}
