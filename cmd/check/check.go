package check

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/hdlkit/regmap/pkg/registers"
	"github.com/spf13/cobra"
)

var (
	moduleName   string
	defaultsFile string
	dump         bool
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse and validate a register definition file",
	Long: `Parses a register definition file (TOML or YAML) and validates it against
the register model rules. Exits with a non-zero status and a description of
the first problem found if the file is invalid.

Example:
  regmap check regs_caesar.toml
  regmap check --module caesar --dump caesar.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	CheckCmd.Flags().StringVarP(&moduleName, "module", "m", "", "Module name. If omitted, it is derived from the file name")
	CheckCmd.Flags().StringVar(&defaultsFile, "defaults", "", "Register definition file with default registers seeded into the module")
	CheckCmd.Flags().BoolVarP(&dump, "dump", "d", false, "Dump the parsed register list to stdout")
}

func runCheck(cmd *cobra.Command, args []string) {
	path := args[0]

	if moduleName == "" {
		moduleName = registers.DefaultModuleName(path)
	}

	slog.Debug("checking register definition file", "path", path, "module", moduleName)

	var defaultRegisters []*registers.Register

	if defaultsFile != "" {
		var err error
		defaultRegisters, err = registers.DefaultRegistersFromFile(defaultsFile)

		if err != nil {
			color.Red("%s: %v", defaultsFile, err)
			os.Exit(1)
		}
	}

	list, err := registers.FromFile(moduleName, path, defaultRegisters)

	if err != nil {
		color.Red("%s: %v", path, err)
		os.Exit(1)
	}

	totalRegisters := 0
	totalArrays := 0

	for _, item := range list.Items() {
		if _, isArray := item.(*registers.RegisterArray); isArray {
			totalArrays++
		} else {
			totalRegisters++
		}
	}

	color.Green("%s: ok", path)
	fmt.Printf("module %q: %v registers, %v register arrays, %v constants\n",
		moduleName, totalRegisters, totalArrays, len(list.Constants()))

	if dump {
		spew.Dump(list)
	}
}
