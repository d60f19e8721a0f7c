package report

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

// Letter page geometry in points, 0.75 inch margins on every side.
const (
	pageMargin   = 54.0
	contentWidth = 612.0 - 2*pageMargin
)

/*
pdfRenderer wraps one fpdf document plus the theme it draws with.
*/
type pdfRenderer struct {
	pdf   *fpdf.Fpdf
	theme Theme
}

/*
RenderPDF serializes the ordered section sequence into PDF bytes.

generatedAt pins the document's creation and modification dates, so rendering
the same sections with the same timestamp is byte-identical. Content flows
top to bottom with automatic page breaks; there is no partial output — either
the full sequence renders or an error is returned.
*/
func RenderPDF(sections []Section, theme Theme, generatedAt time.Time) (pdfBytes []byte, e *xerr.Error) {
	document := fpdf.New("P", "pt", "Letter", "")
	document.SetMargins(pageMargin, pageMargin, pageMargin)
	document.SetAutoPageBreak(true, pageMargin)
	// Without catalog sorting, font resource dictionaries follow map
	// iteration order and the output bytes vary between runs.
	document.SetCatalogSort(true)
	document.SetCreationDate(generatedAt)
	document.SetModificationDate(generatedAt)
	document.AddPage()

	renderer := &pdfRenderer{pdf: document, theme: theme}

	for _, section := range sections {
		renderer.drawSection(section)
	}

	var buffer bytes.Buffer
	outputErr := document.Output(&buffer)
	if outputErr != nil {
		e = xerr.NewError(outputErr, "serialize report PDF", "")
		return pdfBytes, e
	}

	pdfBytes = buffer.Bytes()
	tl.Log(tl.Info1, palette.Green, "Rendered report PDF (%s bytes, %s sections)", len(pdfBytes), len(sections))

	return pdfBytes, e
}

func (r *pdfRenderer) drawSection(section Section) {
	if section.Title != "" {
		r.drawSectionTitle(section.Title)
	}

	switch section.Kind {
	case KindParagraphs:
		r.drawParagraphs(section.Paragraphs)
	case KindKeyValue:
		r.drawKeyValue(section)
	case KindLedger:
		r.drawLedger(section.Ledger)
	case KindBanner:
		r.drawBanner(section.Banner)
	case KindGrid:
		r.drawGrid(section.Grid)
	}
}

func (r *pdfRenderer) drawSectionTitle(title string) {
	r.pdf.Ln(20)
	r.setFont("B", 14, r.theme.Navy)
	r.pdf.CellFormat(contentWidth, 18, title, "", 1, "L", false, 0, "")
	r.pdf.Ln(4)
}

func (r *pdfRenderer) drawParagraphs(paragraphs []Paragraph) {
	for _, paragraph := range paragraphs {
		if paragraph.Divider {
			r.pdf.SetDrawColor(paragraph.Color.R, paragraph.Color.G, paragraph.Color.B)
			y := r.pdf.GetY()
			r.pdf.Line(pageMargin, y, pageMargin+contentWidth, y)
			r.pdf.Ln(paragraph.SpaceAfter)
			continue
		}

		style := ""
		if paragraph.Bold {
			style += "B"
		}
		if paragraph.Italic {
			style += "I"
		}

		r.pdf.SetFont("Helvetica", style, paragraph.Size)
		r.pdf.SetTextColor(paragraph.Color.R, paragraph.Color.G, paragraph.Color.B)
		r.pdf.MultiCell(contentWidth, paragraph.Size+4, paragraph.Text, "", "C", false)

		if paragraph.SpaceAfter > 0 {
			r.pdf.Ln(paragraph.SpaceAfter)
		}
	}
}

func (r *pdfRenderer) drawKeyValue(section Section) {
	valueAlign := section.KVValueAlign
	if valueAlign == "" {
		valueAlign = "L"
	}

	for _, row := range section.KV {
		r.setFont("B", 10, r.theme.Navy)
		r.pdf.CellFormat(section.KVWidths[0], 22, row.Label, "", 0, "L", false, 0, "")

		r.setFont("", 10, r.theme.DarkGray)
		r.pdf.CellFormat(section.KVWidths[1], 22, row.Value, "", 1, valueAlign, false, 0, "")
	}
}

func (r *pdfRenderer) drawLedger(rows []LedgerRow) {
	const columnWidth = contentWidth / 4

	for _, row := range rows {
		r.setFont("B", 9, r.theme.Navy)
		r.pdf.CellFormat(columnWidth, 19, row.LeftLabel, "", 0, "L", false, 0, "")
		r.setFont("", 9, r.theme.DarkGray)
		r.pdf.CellFormat(columnWidth, 19, row.LeftValue, "", 0, "R", false, 0, "")

		r.setFont("B", 9, r.theme.Navy)
		r.pdf.CellFormat(columnWidth, 19, row.RightLabel, "", 0, "L", false, 0, "")
		r.setFont("", 9, r.theme.DarkGray)
		r.pdf.CellFormat(columnWidth, 19, row.RightValue, "", 1, "R", false, 0, "")
	}

	r.pdf.SetDrawColor(r.theme.LightGray.R, r.theme.LightGray.G, r.theme.LightGray.B)
	y := r.pdf.GetY()
	r.pdf.Line(pageMargin, y, pageMargin+contentWidth, y)
	r.pdf.Ln(10)
}

func (r *pdfRenderer) drawBanner(rows []BannerRow) {
	r.pdf.Ln(10)
	r.pdf.SetFillColor(r.theme.Navy.R, r.theme.Navy.G, r.theme.Navy.B)

	for _, row := range rows {
		rowHeight := row.ValueSize * 3

		r.setFont("B", row.ValueSize, r.theme.White)
		r.pdf.CellFormat(contentWidth/2, rowHeight, row.Label, "", 0, "C", true, 0, "")

		r.setFont("B", row.ValueSize, row.ValueColor)
		r.pdf.CellFormat(contentWidth/2, rowHeight, row.Value, "", 1, "C", true, 0, "")
	}

	r.pdf.Ln(10)
}

func (r *pdfRenderer) drawGrid(grid *Grid) {
	if grid == nil {
		return
	}

	r.pdf.SetDrawColor(r.theme.LightGray.R, r.theme.LightGray.G, r.theme.LightGray.B)
	r.pdf.SetLineWidth(0.5)

	// Header row: white on navy.
	r.pdf.SetFillColor(r.theme.Navy.R, r.theme.Navy.G, r.theme.Navy.B)
	r.setFont("B", 9, r.theme.White)
	for column, headerText := range grid.Header {
		r.pdf.CellFormat(grid.Widths[column], 24, headerText, "1", 0, r.columnAlign(grid, column), true, 0, "")
	}
	r.pdf.Ln(-1)

	for _, row := range grid.Rows {
		for column, cell := range row {
			style := ""
			if cell.Bold {
				style = "B"
			}
			textColor := r.theme.DarkGray
			if cell.Color != nil {
				textColor = *cell.Color
			}
			r.setFont(style, 9, textColor)
			r.pdf.CellFormat(grid.Widths[column], 24, cell.Text, "1", 0, r.columnAlign(grid, column), false, 0, "")
		}
		r.pdf.Ln(-1)
	}

	r.pdf.Ln(10)
}

func (r *pdfRenderer) columnAlign(grid *Grid, column int) string {
	if column < len(grid.Aligns) {
		return grid.Aligns[column]
	}
	return "L"
}

func (r *pdfRenderer) setFont(style string, size float64, color RGB) {
	r.pdf.SetFont("Helvetica", style, size)
	r.pdf.SetTextColor(color.R, color.G, color.B)
}
