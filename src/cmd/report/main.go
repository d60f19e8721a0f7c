package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"property-analyzer/src/pkg/analysis"
	"property-analyzer/src/pkg/config"
	"property-analyzer/src/pkg/report"
	"property-analyzer/src/pkg/util"
)

/*
main renders one analysis PDF from an intake JSON file, without the server.

Example:

	go run ./src/cmd/report -input ./tmp/property.json -o ./tmp/report.pdf
*/
func main() {
	config.CheckIfEnvVarsPresent()

	// common flags
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	// program's custom flags
	inputPath := flag.String("input", "", "Path to the intake JSON file with the property figures.")
	outputPath := flag.String("o", "", "Output PDF path (default: ./tmp/<attachment filename>)")

	// parse and init config
	flag.Parse()
	util.RequiredFlag(inputPath, "input")
	util.EnsureFlags()
	config.InitializeConfig(*configPath)
	report.InitializeConfig(config.Section[report.Config]("report"))

	payload, readErr := os.ReadFile(*inputPath)
	xerr.QuitIfError(readErr, fmt.Sprintf("Unable to read input file '%s'", *inputPath))

	input, parseErr := analysis.ParseInput(payload)
	parseErr.QuitIf("error")

	theme := report.ThemeFromConfig(report.Cfg)

	pdfBytes, generateErr := report.Generate(input, theme, time.Now())
	generateErr.QuitIf("error")

	finalPath := *outputPath
	if finalPath == "" {
		finalPath = filepath.Join("./tmp", report.AttachmentFilename(input))
	}

	writeErr := os.WriteFile(finalPath, pdfBytes, 0o644)
	xerr.QuitIfError(writeErr, "write PDF report file")

	tl.Log(tl.Info1, palette.Green, "Saved report to '%s'", finalPath)
}
