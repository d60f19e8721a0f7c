// in case you need to create an entrypoint with multiple subprograms
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"property-analyzer/src/pkg/analysis"
	"property-analyzer/src/pkg/config"
	"property-analyzer/src/pkg/email"
	"property-analyzer/src/pkg/report"
	"property-analyzer/src/pkg/util"
)

/*
Pick a provider and use it to send a rendered analysis report to the
specified address. Useful for smoke-testing provider credentials end to end.
*/
func testProvider(subprogram string, flags []string) {
	config.CheckIfEnvVarsPresent(
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_REGION", // amazon ses
		"MAILGUN_DOMAIN", "MAILGUN_API_KEY", // mailgun
		"SENDGRID_API_KEY", // sendgrid
	)

	// common flags
	subprogramCmd := flag.NewFlagSet(subprogram, flag.ExitOnError)
	configPath := subprogramCmd.String("config", "./cfg/config.json", "Path to your configuration file.")

	// custom flags
	provider := subprogramCmd.String("provider", "mailgun", "Provider to use when sending emails")
	senderAddress := subprogramCmd.String("sender", "", "Sender's address")
	recipientAddress := subprogramCmd.String("recipient", "", "Recipient's address")
	inputPath := subprogramCmd.String("input", "", "Intake JSON file to render and attach")

	// parse and init config
	xerr.QuitIfError(subprogramCmd.Parse(flags), "Unable to subprogramCmd.Parse")
	config.InitializeConfig(*configPath)
	report.InitializeConfig(config.Section[report.Config]("report"))
	email.InitializeConfig(config.Section[email.Config]("email"))

	util.RequiredFlag(senderAddress, "sender")
	util.RequiredFlag(recipientAddress, "recipient")
	util.RequiredFlag(provider, "provider")
	util.RequiredFlag(inputPath, "input")
	util.EnsureFlags()

	recipientAddresses := strings.Split(*recipientAddress, ",")

	// read intake file
	payload, readErr := os.ReadFile(*inputPath)
	xerr.QuitIfError(readErr, fmt.Sprintf("Unable to read file '%s'", *inputPath))

	input, parseErr := analysis.ParseInput(payload)
	parseErr.QuitIf("error")

	theme := report.ThemeFromConfig(report.Cfg)
	pdfBytes, generateErr := report.Generate(input, theme, time.Now())
	generateErr.QuitIf("error")

	subject, textBody := email.ComposeReportMessage(input)
	attachment := email.Attachment{
		Filename:    report.AttachmentFilename(input),
		ContentType: "application/pdf",
		Data:        pdfBytes,
	}

	// send email here
	sendEmails := true
	e := email.SendMessage(email.Provider(*provider), &sendEmails, *senderAddress, recipientAddresses, subject, textBody, "", []email.Attachment{attachment})
	e.QuitIf("error")
}

func main() {
	// Check if there are enough arguments
	if len(os.Args) < 2 {
		tl.Log(tl.Error, palette.Red, "Usage: %s", "go run src/cmd/send-email/main.go subprogram_name(for example test-provider)")
		os.Exit(1)
	}
	subprogram := os.Args[1]
	flags := os.Args[2:]

	// Switch subprogram based on the first argument
	switch subprogram {
	case "test-provider":
		testProvider(subprogram, flags)
	default:
		tl.Log(tl.Error, palette.Red, "Unknown subprogram: %s", subprogram)
		os.Exit(1)
	}
}
