package generate

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hdlkit/regmap/pkg/generators"
	"github.com/hdlkit/regmap/pkg/registers"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	moduleName string
	toStdout   bool
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate register artifacts from a register definition file",
}

func init() {
	GenerateCmd.PersistentFlags().StringVarP(&moduleName, "module", "m", "", "Module name. If omitted, it is derived from the file name")
	GenerateCmd.PersistentFlags().StringP("output", "o", ".", "Output directory for the generated artifact")
	GenerateCmd.PersistentFlags().String("defaults", "", "Register definition file with default registers seeded into every module")
	GenerateCmd.PersistentFlags().BoolVar(&toStdout, "stdout", false, "Write the artifact to stdout instead of a file")

	// Both can also come from the config file or environment
	viper.BindPFlag("generate.output", GenerateCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("defaults", GenerateCmd.PersistentFlags().Lookup("defaults"))
}

// artifactGenerator is implemented by every artifact backend
type artifactGenerator interface {
	GenerateTo(writer io.Writer, list *registers.RegisterList) error
	Generate(outputFile string, list *registers.RegisterList) error
}

func loadList(path string) *registers.RegisterList {
	if moduleName == "" {
		moduleName = registers.DefaultModuleName(path)
	}

	var defaultRegisters []*registers.Register

	if defaultsFile := viper.GetString("defaults"); defaultsFile != "" {
		var err error
		defaultRegisters, err = registers.DefaultRegistersFromFile(defaultsFile)

		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading default registers: %v\n", err)
			os.Exit(1)
		}
	}

	list, err := registers.FromFile(moduleName, path, defaultRegisters)

	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing register definition file: %v\n", err)
		os.Exit(1)
	}

	return list
}

func runGenerator(generator artifactGenerator, list *registers.RegisterList, outputName string) {
	var err error

	if toStdout {
		err = generator.GenerateTo(os.Stdout, list)
	} else {
		outputFile := filepath.Join(viper.GetString("generate.output"), outputName)
		slog.Debug("generating artifact", "output", outputFile)
		err = generator.Generate(outputFile, list)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating artifact: %v\n", err)
		os.Exit(2)
	}
}

func generatedInfo(path string) []string {
	return generators.GeneratedInfo(filepath.Base(path))
}
