// Package vhdl generates a VHDL package with the register and constant
// information of one module, for use by the register file implementation and
// the rest of the hardware design.
package vhdl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hdlkit/regmap/pkg/generators"
	"github.com/hdlkit/regmap/pkg/registers"
	"github.com/hdlkit/regmap/pkg/utils"
)

// Generator emits the <module>_regs_pkg VHDL package
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

func comment(text string) string {
	return fmt.Sprintf("-- %s\n", text)
}

func (g *Generator) header() string {
	var builder strings.Builder

	for _, line := range g.generatedInfo {
		builder.WriteString(comment(line))
	}

	return builder.String()
}

func (g *Generator) registerName(ref generators.RegisterRef) string {
	return ref.QualifiedName(g.moduleName)
}

func (g *Generator) registerFunctionSignature(ref generators.RegisterRef) string {
	return fmt.Sprintf("function %s(array_index : natural) return natural", g.registerName(ref))
}

func (g *Generator) registerIndexes(list *registers.RegisterList) string {
	var builder strings.Builder

	for _, ref := range generators.IterateRegisters(list) {
		if ref.Array == nil {
			builder.WriteString(fmt.Sprintf("  constant %s : natural := %v;\n",
				g.registerName(ref), ref.Register.Index()))
		} else {
			builder.WriteString(fmt.Sprintf("  %s;\n", g.registerFunctionSignature(ref)))
		}
	}

	if builder.Len() > 0 {
		builder.WriteString("\n")
	}

	return builder.String()
}

func (g *Generator) arrayLengthConstantName(array *registers.RegisterArray) string {
	return fmt.Sprintf("%s_%s_array_length", g.moduleName, array.Name())
}

func (g *Generator) arrayConstants(list *registers.RegisterList) string {
	var builder strings.Builder

	for _, item := range list.Items() {
		if array, isArray := item.(*registers.RegisterArray); isArray {
			builder.WriteString(fmt.Sprintf("  constant %s : natural := %v;\n",
				g.arrayLengthConstantName(array), array.Length()))
		}
	}

	if builder.Len() > 0 {
		builder.WriteString("\n")
	}

	return builder.String()
}

func (g *Generator) registerMap(list *registers.RegisterList) string {
	items := list.Items()

	if len(items) == 0 {
		// It is possible to have constants but no registers
		return ""
	}

	mapName := fmt.Sprintf("%s_reg_map", g.moduleName)
	rangeName := fmt.Sprintf("%s_reg_range", g.moduleName)
	lastIndex := items[len(items)-1].Index()

	return fmt.Sprintf(`  -- Declare register map constants here, but define them in body.
  -- This is done so that functions have been elaborated when they are called.
  subtype %s is natural range 0 to %v;
  constant %s : reg_definition_vec_t(%s);

  subtype %s_regs_t is reg_vec_t(%s);
  constant %s_regs_init : %s_regs_t;

  subtype %s_reg_was_accessed_t is std_logic_vector(%s);

`,
		rangeName, lastIndex,
		mapName, rangeName,
		g.moduleName, rangeName,
		g.moduleName, g.moduleName,
		g.moduleName, rangeName)
}

func (g *Generator) registerMapBody(list *registers.RegisterList) string {
	items := list.Items()

	if len(items) == 0 {
		return ""
	}

	mapName := fmt.Sprintf("%s_reg_map", g.moduleName)
	rangeName := fmt.Sprintf("%s_reg_range", g.moduleName)

	var definitions []string
	var defaultValues []string
	arrayIndex := 0

	appendRegister := func(indexExpression string, register *registers.Register) {
		opening := fmt.Sprintf("%v => ", arrayIndex)

		definitions = append(definitions,
			fmt.Sprintf("%s(idx => %s, reg_type => %s)", opening, indexExpression, register.Mode().Key()))
		defaultValues = append(defaultValues,
			fmt.Sprintf("%sstd_logic_vector(to_unsigned(%v, 32))", opening, register.DefaultValue()))

		arrayIndex++
	}

	for _, item := range items {
		switch typed := item.(type) {
		case *registers.Register:
			appendRegister(fmt.Sprintf("%s_%s", g.moduleName, typed.Name()), typed)

		case *registers.RegisterArray:
			for repetition := 0; repetition < typed.Length(); repetition++ {
				for _, register := range typed.Registers() {
					name := fmt.Sprintf("%s_%s_%s(%v)", g.moduleName, typed.Name(), register.Name(), repetition)
					appendRegister(name, register)
				}
			}
		}
	}

	separator := ",\n    "

	return fmt.Sprintf(`  constant %s : reg_definition_vec_t(%s) := (
    %s
  );

  constant %s_regs_init : %s_regs_t := (
    %s
  );

`,
		mapName, rangeName, utils.FormatSlice(definitions, separator),
		g.moduleName, g.moduleName, utils.FormatSlice(defaultValues, separator))
}

func (g *Generator) registerFields(list *registers.RegisterList) string {
	var builder strings.Builder

	for _, ref := range generators.IterateRegisters(list) {
		for _, field := range ref.Register.Fields() {
			name := fmt.Sprintf("%s_%s", g.registerName(ref), field.Name())

			if field.Width() == 1 {
				builder.WriteString(fmt.Sprintf("  constant %s : natural := %v;\n", name, field.BaseIndex()))
			} else {
				builder.WriteString(fmt.Sprintf(
					"  subtype %s is natural range %v downto %v;\n",
					name, field.BaseIndex()+field.Width()-1, field.BaseIndex()))
				builder.WriteString(fmt.Sprintf(
					"  constant %s_width : positive := %v;\n", name, field.Width()))
			}
		}

		if len(ref.Register.Fields()) > 0 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

func (g *Generator) arrayIndexFunctions(list *registers.RegisterList) string {
	var builder strings.Builder

	for _, item := range list.Items() {
		array, isArray := item.(*registers.RegisterArray)

		if !isArray {
			continue
		}

		for _, register := range array.Registers() {
			ref := generators.RegisterRef{Register: register, Array: array}

			builder.WriteString(fmt.Sprintf(`  %s is
  begin
    assert array_index < %s
      report "Array index out of bounds: " & natural'image(array_index)
      severity failure;
    return %v + array_index * %v + %v;
  end function;

`,
				g.registerFunctionSignature(ref),
				g.arrayLengthConstantName(array),
				array.BaseIndex(), len(array.Registers()), register.Index()))
		}
	}

	return builder.String()
}

func constantValue(constant *registers.Constant) (vhdlType string, value string) {
	switch constant.Type() {
	case registers.ConstantType_Integer:
		return "integer", fmt.Sprint(constant.IntValue())

	case registers.ConstantType_Boolean:
		return "boolean", fmt.Sprint(constant.BoolValue())

	case registers.ConstantType_Float:
		return "real", fmt.Sprint(constant.FloatValue())

	case registers.ConstantType_String:
		return "string", fmt.Sprintf("%q", constant.StringValue())
	}

	panic("unreachable")
}

func (g *Generator) constants(list *registers.RegisterList) string {
	var builder strings.Builder

	for _, constant := range list.Constants() {
		vhdlType, value := constantValue(constant)

		builder.WriteString(fmt.Sprintf("  constant %s_constant_%s : %s := %s;\n",
			g.moduleName, constant.Name(), vhdlType, value))
	}

	if builder.Len() > 0 {
		builder.WriteString("\n")
	}

	return builder.String()
}

// GetPackage renders the complete VHDL package for the register list
func (g *Generator) GetPackage(list *registers.RegisterList) string {
	packageName := fmt.Sprintf("%s_regs_pkg", g.moduleName)

	return fmt.Sprintf(`%slibrary ieee;
use ieee.std_logic_1164.all;
use ieee.numeric_std.all;

library reg_file;
use reg_file.reg_file_pkg.all;


package %s is

%s%s%s%s%send package;

package body %s is

%s%send package body;
`,
		g.header(),
		packageName,
		g.registerIndexes(list),
		g.arrayConstants(list),
		g.registerMap(list),
		g.registerFields(list),
		g.constants(list),
		packageName,
		g.arrayIndexFunctions(list),
		g.registerMapBody(list))
}

// GenerateTo writes the VHDL package to a writer
func (g *Generator) GenerateTo(writer io.Writer, list *registers.RegisterList) error {
	_, err := io.WriteString(writer, g.GetPackage(list))
	return err
}

// Generate writes the VHDL package to a file
func (g *Generator) Generate(outputFile string, list *registers.RegisterList) error {
	f, err := os.Create(outputFile)

	if err != nil {
		return err
	}

	defer f.Close()

	return g.GenerateTo(f, list)
}
