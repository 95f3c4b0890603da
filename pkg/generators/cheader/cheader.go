// Package cheader generates a C header with the register indexes, field
// masks and constants of one module, for use by bare metal software.
package cheader

import (
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/hdlkit/regmap/pkg/generators"
	"github.com/hdlkit/regmap/pkg/registers"
	"github.com/hdlkit/regmap/pkg/utils"
)

//go:embed templates
var templates embed.FS

// Generator emits the <module>_regs.h header
type Generator struct {
	template      *template.Template
	moduleName    string
	generatedInfo []string
}

func NewGenerator(moduleName string, generatedInfo []string) (*Generator, error) {
	t, err := template.New("regs.h.tmpl").ParseFS(templates, "templates/regs.h.tmpl")

	if err != nil {
		return nil, err
	}

	return &Generator{
		template:      t,
		moduleName:    moduleName,
		generatedInfo: generatedInfo,
	}, nil
}

type headerField struct {
	Prefix       string
	Shift        int
	Mask         string
	DefaultValue uint64
}

type headerRegister struct {
	Comment     string
	IndexDefine string
	Fields      []headerField
}

type headerConstant struct {
	Name    string
	Value   string
	Comment string
}

type headerView struct {
	Header       []string
	Guard        string
	ModulePrefix string
	TotalWords   int
	Registers    []headerRegister
	Constants    []headerConstant
}

func (g *Generator) fieldViews(ref generators.RegisterRef) []headerField {
	return utils.Map(ref.Register.Fields(), func(field registers.RegisterField) headerField {
		mask := utils.AllOnes[uint64](field.Width()) << field.BaseIndex()

		return headerField{
			Prefix:       strings.ToUpper(ref.QualifiedName(g.moduleName) + "_" + field.Name()),
			Shift:        field.BaseIndex(),
			Mask:         fmt.Sprintf("0x%Xu", mask),
			DefaultValue: field.DefaultValueUint(),
		}
	})
}

func (g *Generator) registerViews(list *registers.RegisterList) []headerRegister {
	return utils.Map(generators.IterateRegisters(list), func(ref generators.RegisterRef) headerRegister {
		prefix := strings.ToUpper(ref.QualifiedName(g.moduleName))

		var indexDefine string

		if ref.Array == nil {
			indexDefine = fmt.Sprintf("#define %s_INDEX (%vu)", prefix, ref.Register.Index())
		} else {
			indexDefine = fmt.Sprintf("#define %s_INDEX(array_index) (%vu + (array_index) * %vu + %vu)",
				prefix, ref.Array.BaseIndex(), len(ref.Array.Registers()), ref.Register.Index())
		}

		return headerRegister{
			Comment:     ref.Register.Description(),
			IndexDefine: indexDefine,
			Fields:      g.fieldViews(ref),
		}
	})
}

func constantView(moduleName string, constant *registers.Constant) headerConstant {
	var value string

	switch constant.Type() {
	case registers.ConstantType_Integer:
		value = fmt.Sprintf("(%v)", constant.IntValue())

	case registers.ConstantType_Boolean:
		if constant.BoolValue() {
			value = "(1)"
		} else {
			value = "(0)"
		}

	case registers.ConstantType_Float:
		value = fmt.Sprintf("(%v)", constant.FloatValue())

	case registers.ConstantType_String:
		value = fmt.Sprintf("%q", constant.StringValue())
	}

	return headerConstant{
		Name:    strings.ToUpper(fmt.Sprintf("%s_CONSTANT_%s", moduleName, constant.Name())),
		Value:   value,
		Comment: constant.Description(),
	}
}

func (g *Generator) view(list *registers.RegisterList) *headerView {
	totalWords := 0

	if items := list.Items(); len(items) > 0 {
		totalWords = items[len(items)-1].Index() + 1
	}

	return &headerView{
		Header:       g.generatedInfo,
		Guard:        strings.ToUpper(g.moduleName) + "_REGS_H",
		ModulePrefix: strings.ToUpper(g.moduleName),
		TotalWords:   totalWords,
		Registers:    g.registerViews(list),
		Constants: utils.Map(list.Constants(), func(constant *registers.Constant) headerConstant {
			return constantView(g.moduleName, constant)
		}),
	}
}

// GenerateTo writes the C header to a writer
func (g *Generator) GenerateTo(writer io.Writer, list *registers.RegisterList) error {
	return g.template.Execute(writer, g.view(list))
}

// Generate writes the C header to a file
func (g *Generator) Generate(outputFile string, list *registers.RegisterList) error {
	f, err := os.Create(outputFile)

	if err != nil {
		return err
	}

	defer f.Close()

	return g.GenerateTo(f, list)
}
