// Package doc generates plain text documentation of one register map,
// with an ascii drawing of the bit layout of each register.
package doc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hdlkit/regmap/pkg/generators"
	"github.com/hdlkit/regmap/pkg/registers"
	"github.com/hdlkit/regmap/pkg/utils"
)

// Generator emits the <module>_regs.txt documentation file
type Generator struct {
	moduleName    string
	generatedInfo []string
}

func NewGenerator(moduleName string, generatedInfo []string) *Generator {
	return &Generator{
		moduleName:    moduleName,
		generatedInfo: generatedInfo,
	}
}

func heading(text string, underline string) string {
	return fmt.Sprintf("%s\n%s\n", text, strings.Repeat(underline, len(text)))
}

func (g *Generator) header() string {
	var builder strings.Builder

	for _, line := range g.generatedInfo {
		builder.WriteString(fmt.Sprintf("// %s\n", line))
	}

	builder.WriteString("\n")
	builder.WriteString(heading(fmt.Sprintf("Register map of module %q", g.moduleName), "="))

	return builder.String()
}

func registerAddress(ref generators.RegisterRef) string {
	if ref.Array == nil {
		return fmt.Sprintf("address 0x%04X", 4*ref.Register.Index())
	}

	return fmt.Sprintf("addresses 0x%04X + i * 0x%04X, i < %v",
		4*(ref.Array.BaseIndex()+ref.Register.Index()),
		4*len(ref.Array.Registers()),
		ref.Array.Length())
}

func (g *Generator) register(ref generators.RegisterRef) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(heading(ref.QualifiedName(g.moduleName), "-"))
	builder.WriteString(fmt.Sprintf("Mode: %s (%s)\n", ref.Register.Mode().Key(), ref.Register.Mode().Descriptor().Description))
	builder.WriteString(fmt.Sprintf("Location: %s\n", registerAddress(ref)))
	builder.WriteString(fmt.Sprintf("Default value: 0x%08X (0b%s)\n",
		ref.Register.DefaultValue(),
		utils.FormatUintBinary(ref.Register.DefaultValue(), registers.RegisterWidth)))

	if description := ref.Register.Description(); description != "" {
		builder.WriteString("\n")
		builder.WriteString(description)
		builder.WriteString("\n")
	}

	if fields := ref.Register.Fields(); len(fields) > 0 {
		builder.WriteString("\n")
		builder.WriteString(drawBitFrame(fields, 2))

		for _, field := range fields {
			builder.WriteString(fmt.Sprintf("\n  %s [%s], default %s\n",
				field.Name(), field.RangeStr(), field.DefaultValueStr()))

			if description := field.Description(); description != "" {
				builder.WriteString(fmt.Sprintf("    %s\n", description))
			}
		}
	}

	return builder.String()
}

func constantValue(constant *registers.Constant) string {
	switch constant.Type() {
	case registers.ConstantType_Integer:
		return fmt.Sprint(constant.IntValue())

	case registers.ConstantType_Boolean:
		return fmt.Sprint(constant.BoolValue())

	case registers.ConstantType_Float:
		return fmt.Sprint(constant.FloatValue())

	case registers.ConstantType_String:
		return fmt.Sprintf("%q", constant.StringValue())
	}

	panic("unreachable")
}

func (g *Generator) constants(list *registers.RegisterList) string {
	constants := list.Constants()

	if len(constants) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(heading("Constants", "-"))

	for _, constant := range constants {
		builder.WriteString(fmt.Sprintf("\n  %s = %s\n", constant.Name(), constantValue(constant)))

		if description := constant.Description(); description != "" {
			builder.WriteString(fmt.Sprintf("    %s\n", description))
		}
	}

	return builder.String()
}

// GetDocument renders the complete documentation for the register list
func (g *Generator) GetDocument(list *registers.RegisterList) string {
	var builder strings.Builder

	builder.WriteString(g.header())

	for _, ref := range generators.IterateRegisters(list) {
		builder.WriteString(g.register(ref))
	}

	builder.WriteString(g.constants(list))

	return builder.String()
}

// GenerateTo writes the documentation to a writer
func (g *Generator) GenerateTo(writer io.Writer, list *registers.RegisterList) error {
	_, err := io.WriteString(writer, g.GetDocument(list))
	return err
}

// Generate writes the documentation to a file
func (g *Generator) Generate(outputFile string, list *registers.RegisterList) error {
	f, err := os.Create(outputFile)

	if err != nil {
		return err
	}

	defer f.Close()

	return g.GenerateTo(f, list)
}
