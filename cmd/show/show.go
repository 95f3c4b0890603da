package show

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/hdlkit/regmap/pkg/generators"
	"github.com/hdlkit/regmap/pkg/registers"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var moduleName string

// ShowCmd represents the show command
var ShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Browse a register definition file interactively",
	Long: `Parses a register definition file and opens an interactive terminal table
with every register, its fields and the module constants.

Press Escape or q to exit.`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	ShowCmd.Flags().StringVarP(&moduleName, "module", "m", "", "Module name. If omitted, it is derived from the file name")
}

func headerCell(text string) *tview.TableCell {
	return tview.NewTableCell(text).
		SetTextColor(tcell.ColorYellow).
		SetSelectable(false).
		SetExpansion(1)
}

func addRegisterRows(table *tview.Table, list *registers.RegisterList) {
	row := table.GetRowCount()

	for _, ref := range generators.IterateRegisters(list) {
		location := fmt.Sprintf("%v", ref.Register.Index())

		if ref.Array != nil {
			location = fmt.Sprintf("%v+i*%v+%v, i<%v",
				ref.Array.BaseIndex(), len(ref.Array.Registers()), ref.Register.Index(), ref.Array.Length())
		}

		table.SetCell(row, 0, tview.NewTableCell(location))
		table.SetCell(row, 1, tview.NewTableCell(ref.QualifiedName(moduleName)).SetTextColor(tcell.ColorAqua))
		table.SetCell(row, 2, tview.NewTableCell(ref.Register.Mode().Key()))
		table.SetCell(row, 3, tview.NewTableCell(fmt.Sprintf("0x%08X", ref.Register.DefaultValue())))
		table.SetCell(row, 4, tview.NewTableCell(ref.Register.Description()))
		row++

		for _, field := range ref.Register.Fields() {
			table.SetCell(row, 0, tview.NewTableCell("  ["+field.RangeStr()+"]"))
			table.SetCell(row, 1, tview.NewTableCell("  "+field.Name()))
			table.SetCell(row, 2, tview.NewTableCell(""))
			table.SetCell(row, 3, tview.NewTableCell(field.DefaultValueStr()))
			table.SetCell(row, 4, tview.NewTableCell(field.Description()))
			row++
		}
	}
}

func addConstantRows(table *tview.Table, list *registers.RegisterList) {
	row := table.GetRowCount()

	for _, constant := range list.Constants() {
		table.SetCell(row, 0, tview.NewTableCell("const"))
		table.SetCell(row, 1, tview.NewTableCell(constant.Name()).SetTextColor(tcell.ColorGreen))
		table.SetCell(row, 2, tview.NewTableCell(""))
		table.SetCell(row, 3, tview.NewTableCell(fmt.Sprintf("%v", constant.Value())))
		table.SetCell(row, 4, tview.NewTableCell(constant.Description()))
		row++
	}
}

func runShow(cmd *cobra.Command, args []string) {
	path := args[0]

	if moduleName == "" {
		moduleName = registers.DefaultModuleName(path)
	}

	list, err := registers.FromFile(moduleName, path, nil)

	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing register definition file: %v\n", err)
		os.Exit(1)
	}

	app := tview.NewApplication()

	table := tview.NewTable().
		SetFixed(1, 0).
		SetSelectable(true, false)

	table.SetCell(0, 0, headerCell("INDEX"))
	table.SetCell(0, 1, headerCell("NAME"))
	table.SetCell(0, 2, headerCell("MODE"))
	table.SetCell(0, 3, headerCell("DEFAULT"))
	table.SetCell(0, 4, headerCell("DESCRIPTION"))

	addRegisterRows(table, list)
	addConstantRows(table, list)

	table.SetBorder(true).SetTitle(fmt.Sprintf(" %s ", moduleName))

	table.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			app.Stop()
		}
	})

	table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' {
			app.Stop()
			return nil
		}

		return event
	})

	if err := app.SetRoot(table, true).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running terminal UI: %v\n", err)
		os.Exit(2)
	}
}
