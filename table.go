package shapefmt

import (
	"strings"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// ToTable renders the record set as a bordered terminal table with a
// key-union header, using the rounded border set.
func ToTable(v any) string {
	return ToTableBorder(v, BorderRounded)
}

// ToTableBorder renders the record set as a bordered terminal table with
// the given border style. Unknown styles fall back to BorderRounded.
func ToTableBorder(v any, style BorderStyle) string {
	recs := normalize(v)
	keys := keyUnion(recs)
	if len(keys) == 0 {
		return ""
	}

	bc, ok := borderSets[style]
	if !ok {
		bc = borderSets[BorderRounded]
	}

	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = rowFor(r, keys)
	}
	widths := columnWidths(keys, rows, 0)

	var b strings.Builder
	drawHLine(&b, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)
	drawBorderedRow(&b, keys, widths, bc.vertical)
	drawHLine(&b, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)
	for _, row := range rows {
		drawBorderedRow(&b, row, widths, bc.vertical)
	}
	drawHLine(&b, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
	return strings.TrimSuffix(b.String(), "\n")
}

func drawHLine(b *strings.Builder, widths []int, left, fill, mid, right string) {
	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

func drawBorderedRow(b *strings.Builder, cells []string, widths []int, vert string) {
	b.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(" ")
		b.WriteString(padCell(cell, width))
		b.WriteString(" ")
		if i < len(widths)-1 {
			b.WriteString(vert)
		}
	}
	b.WriteString(vert)
	b.WriteString("\n")
}
