package listkit

import "strings"

// ClipboardFormat names a clipboard data format.
type ClipboardFormat string

const (
	FormatText        ClipboardFormat = "Text"
	FormatUnicodeText ClipboardFormat = "UnicodeText"
	FormatCSV         ClipboardFormat = "Csv"
	FormatHTML        ClipboardFormat = "HTML Format"
)

// ClipboardContent renders one cell of a copied block. The position flags
// say where the cell sits in the block so separators and table markup can
// be emitted. Unselected cells contribute empty text, or &nbsp; in HTML.
// Cell text is written into the HTML table as is.
// Unknown formats get the bare text.
func ClipboardContent(text string, selected, firstCell, lastCell, inFirstRow, inLastRow bool, format ClipboardFormat) string {
	if !selected {
		text = ""
	}

	var sep string
	switch format {
	case FormatText, FormatUnicodeText, FormatCSV:
		switch {
		case lastCell && !inLastRow:
			sep = "\n"
		case !lastCell && format == FormatCSV:
			sep = ","
		case !lastCell:
			sep = "\t"
		}
		return text + sep
	case FormatHTML:
	default:
		return text
	}

	var b strings.Builder
	if inFirstRow && firstCell {
		b.WriteString("<TABLE>")
	}
	if firstCell {
		b.WriteString("<TR>")
	}
	b.WriteString("<TD>")
	if selected {
		b.WriteString(text)
	} else {
		b.WriteString("&nbsp;")
	}
	b.WriteString("</TD>")
	if lastCell {
		b.WriteString("</TR>")
	}
	if inLastRow && lastCell {
		b.WriteString("</TABLE>")
	}
	return b.String()
}
