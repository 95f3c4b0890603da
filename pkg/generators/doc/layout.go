package doc

import (
	"fmt"
	"strings"

	"github.com/hdlkit/regmap/pkg/registers"
	"github.com/hdlkit/regmap/pkg/utils"
)

// frameSlot is one labeled span of bits within a register drawing
type frameSlot struct {
	name      string
	baseIndex int
	width     int
}

func (s *frameSlot) topBit() int {
	return s.baseIndex + s.width - 1
}

// Fields do not necessarily cover the full register, unused spans are
// drawn as explicit gaps
func frameSlots(fields []registers.RegisterField) []frameSlot {
	slots := make([]frameSlot, 0, len(fields))
	nextBit := 0

	for _, field := range fields {
		if field.BaseIndex() > nextBit {
			slots = append(slots, frameSlot{
				name:      "(unused)",
				baseIndex: nextBit,
				width:     field.BaseIndex() - nextBit,
			})
		}

		slots = append(slots, frameSlot{
			name:      field.Name(),
			baseIndex: field.BaseIndex(),
			width:     field.Width(),
		})

		nextBit = field.BaseIndex() + field.Width()
	}

	if nextBit < registers.RegisterWidth {
		slots = append(slots, frameSlot{
			name:      "(unused)",
			baseIndex: nextBit,
			width:     registers.RegisterWidth - nextBit,
		})
	}

	return slots
}

func writeCentered(text string, decorationLength int, filler string, length int, builder *strings.Builder) {
	leftpad := (length - len(text) - decorationLength) / 2
	rightpad := length - len(text) - decorationLength - leftpad

	builder.WriteString(strings.Repeat(filler, leftpad))
	builder.WriteString(text)
	builder.WriteString(strings.Repeat(filler, rightpad))
}

// drawBitFrame prints an ascii diagram of the bit layout of one register,
// most significant bit on the left
func drawBitFrame(fields []registers.RegisterField, leftpad int) string {
	const (
		bodySplitter   = "|"
		borderSplitter = "+"
		borderBody     = "-"
		arrowTipLeft   = "<-"
		arrowBody      = "-"
		arrowTipRight  = "->"
	)

	slots := frameSlots(fields)

	type entry struct {
		index     string
		name      string
		width     string
		minLength int
	}

	entries := make([]entry, len(slots))

	// Leftmost drawn slot holds the highest bits
	for i := range entries {
		slot := &slots[len(slots)-i-1]
		e := &entries[i]

		e.index = fmt.Sprintf("%v", slot.topBit())
		e.name = fmt.Sprintf(" %v ", slot.name)
		e.width = fmt.Sprintf(" %v bits ", slot.width)
		e.minLength = utils.Max([]int{
			len(e.index),
			len(e.name),
			len(arrowTipLeft) + len(e.width) + len(arrowTipRight),
		})
	}

	pad := strings.Repeat(" ", leftpad)

	var indicesRow, borderRow, bodyRow, widthsRow strings.Builder

	indicesRow.WriteString(pad)
	borderRow.WriteString(pad)
	bodyRow.WriteString(pad)
	widthsRow.WriteString(pad)

	for _, e := range entries {
		indicesRow.WriteString(e.index)
		indicesRow.WriteString(strings.Repeat(" ", e.minLength-len(e.index)+1))
		borderRow.WriteString(borderSplitter)
		borderRow.WriteString(strings.Repeat(borderBody, e.minLength))
		bodyRow.WriteString(bodySplitter)
		writeCentered(e.name, 0, " ", e.minLength, &bodyRow)
		widthsRow.WriteString(" ")
		widthsRow.WriteString(arrowTipLeft)
		writeCentered(e.width, len(arrowTipLeft)+len(arrowTipRight), arrowBody, e.minLength, &widthsRow)
		widthsRow.WriteString(arrowTipRight)
	}

	indicesRow.WriteString("0")
	borderRow.WriteString(borderSplitter)
	bodyRow.WriteString(bodySplitter)

	border := borderRow.String()

	return strings.Join([]string{
		indicesRow.String(),
		border,
		bodyRow.String(),
		border,
		widthsRow.String(),
	}, "\n") + "\n"
}
