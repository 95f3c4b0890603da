package generate

import (
	"fmt"

	"github.com/hdlkit/regmap/pkg/generators/doc"
	"github.com/spf13/cobra"
)

var docCmd = &cobra.Command{
	Use:   "doc <file>",
	Short: "Generate plain text register documentation",
	Long: `Generates plain text documentation of the register map, with an ascii
drawing of the bit layout of every register.

The artifact is written to <output>/<module>_regs.txt.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		list := loadList(args[0])
		generator := doc.NewGenerator(moduleName, generatedInfo(args[0]))

		runGenerator(generator, list, fmt.Sprintf("%s_regs.txt", moduleName))
	},
}

func init() {
	GenerateCmd.AddCommand(docCmd)
}
