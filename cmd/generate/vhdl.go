package generate

import (
	"fmt"

	"github.com/hdlkit/regmap/pkg/generators/vhdl"
	"github.com/spf13/cobra"
)

var vhdlCmd = &cobra.Command{
	Use:   "vhdl <file>",
	Short: "Generate a VHDL register package",
	Long: `Generates a VHDL package with register indexes, modes, default values,
field slices and constants of the module, for use by the register file
implementation and the rest of the hardware design.

The artifact is written to <output>/<module>_regs_pkg.vhd.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		list := loadList(args[0])
		generator := vhdl.NewGenerator(moduleName, generatedInfo(args[0]))

		runGenerator(generator, list, fmt.Sprintf("%s_regs_pkg.vhd", moduleName))
	},
}

func init() {
	GenerateCmd.AddCommand(vhdlCmd)
}
