package report

import (
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"property-analyzer/src/pkg/analysis"
)

/*
Generate runs the full pipeline for one request: build the fixed section
sequence from the input mapping, then render it to PDF bytes.

The input is only read, never mutated, and all intermediate state is local,
so concurrent calls are independent without any locking.
*/
func Generate(input analysis.Input, theme Theme, generatedAt time.Time) (pdfBytes []byte, e *xerr.Error) {
	tl.Log(
		tl.Notice, palette.BlueBold, "%s analysis report for '%s'",
		"Generating", input.Str("propertyAddress"),
	)

	sections := BuildSections(input, theme, generatedAt)

	pdfBytes, e = RenderPDF(sections, theme, generatedAt)
	if e != nil {
		return pdfBytes, e
	}

	tl.Log(
		tl.Notice1, palette.GreenBold, "%s analysis report for '%s' (%s)",
		"Generated", input.Str("propertyAddress"), AttachmentFilename(input),
	)

	return pdfBytes, e
}
