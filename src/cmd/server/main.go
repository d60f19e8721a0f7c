package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"property-analyzer/src/pkg/analysis"
	"property-analyzer/src/pkg/config"
	echomw "property-analyzer/src/pkg/echo-middleware"
	"property-analyzer/src/pkg/email"
	"property-analyzer/src/pkg/report"
)

/*
main starts the analyzer HTTP server.

Routes:
  - GET  /healthz                  liveness probe, no auth
  - POST /api/generate-report      intake JSON in, PDF download out
  - POST /api/email-report         intake JSON in, report emailed to userEmail

The /api group requires a bearer token; see echomw.RequireBearerToken.
*/
func main() {
	config.CheckIfEnvVarsPresent(
		"MAILGUN_DOMAIN", "MAILGUN_API_KEY", // mailgun
		"SENDGRID_API_KEY", // sendgrid
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_REGION", // amazon ses
		echomw.EnvAnalyzerBearerToken,
	)

	// common flags
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")
	// parse and init config
	flag.Parse()
	config.InitializeConfig(*configPath)
	report.InitializeConfig(config.Section[report.Config]("report"))
	email.InitializeConfig(config.Section[email.Config]("email"))
	echomw.InitializeConfig(config.Section[echomw.Config]("echo-middleware"))

	echomw.UpdateRateLimits(echomw.Cfg.MiddlewareRateLimit, echomw.Cfg.MiddlewareBurst)

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true

	server.Use(echomw.RouteAccessLoggerMiddleware)
	server.Use(echomw.RateLimiterMiddleware)

	server.GET("/healthz", handleHealthz)

	// Auth is opt-in: with no token configured the API group stays open.
	api := server.Group("/api")
	if strings.TrimSpace(os.Getenv(echomw.EnvAnalyzerBearerToken)) != "" {
		api.Use(echomw.RequireBearerToken)
	} else {
		tl.Log(tl.Notice, palette.YellowBold, "%s is not set, /api routes are %s", echomw.EnvAnalyzerBearerToken, "unauthenticated")
	}
	api.POST("/generate-report", handleGenerateReport)
	api.POST("/email-report", handleEmailReport)

	listenAddress := fmt.Sprintf("%s:%d", echomw.Cfg.Address, echomw.Cfg.Port)
	tl.Log(tl.Notice, palette.BlueBold, "%s on '%s'", "Starting analyzer server", listenAddress)

	startErr := server.Start(listenAddress)
	xerr.QuitIfError(startErr, "start HTTP server")
}

func handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

/*
handleGenerateReport renders the analysis PDF and returns it as a download.
*/
func handleGenerateReport(c echo.Context) error {
	input, inputErr := readReportInput(c)
	if inputErr != nil {
		tl.Log(tl.Warning, palette.YellowBold, "Rejecting report request: %s", inputErr)
		return errorJSON(c, http.StatusBadRequest, "invalid JSON payload")
	}

	theme := report.ThemeFromConfig(report.Cfg)
	pdfBytes, generateErr := report.Generate(input, theme, time.Now())
	if generateErr != nil {
		tl.Log(tl.Error, palette.RedBold, "Report generation failed: %s", generateErr)
		return errorJSON(c, http.StatusInternalServerError, "report generation failed")
	}

	filename := report.AttachmentFilename(input)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}

/*
handleEmailReport renders the analysis PDF and emails it to the intake
form's userEmail through the configured provider.
*/
func handleEmailReport(c echo.Context) error {
	input, inputErr := readReportInput(c)
	if inputErr != nil {
		tl.Log(tl.Warning, palette.YellowBold, "Rejecting email request: %s", inputErr)
		return errorJSON(c, http.StatusBadRequest, "invalid JSON payload")
	}

	recipient := strings.TrimSpace(input.Str("userEmail"))
	if recipient == "" {
		return errorJSON(c, http.StatusBadRequest, "userEmail is required")
	}

	theme := report.ThemeFromConfig(report.Cfg)
	pdfBytes, generateErr := report.Generate(input, theme, time.Now())
	if generateErr != nil {
		tl.Log(tl.Error, palette.RedBold, "Report generation failed: %s", generateErr)
		return errorJSON(c, http.StatusInternalServerError, "report generation failed")
	}

	subject, textBody := email.ComposeReportMessage(input)
	attachment := email.Attachment{
		Filename:    report.AttachmentFilename(input),
		ContentType: "application/pdf",
		Data:        pdfBytes,
	}

	provider := email.Provider(email.Cfg.Provider)

	sendErr := email.SendMessage(
		provider, email.Cfg.SendEmails,
		email.Cfg.SenderAddress, []string{recipient},
		subject, textBody, "", []email.Attachment{attachment},
	)
	if sendErr != nil {
		tl.Log(tl.Error, palette.RedBold, "Report delivery failed: %s", sendErr)
		return errorJSON(c, http.StatusBadGateway, "email delivery failed")
	}

	// A missing credential set is a skip, not a failure.
	if !email.ProviderConfigured(provider) {
		return c.JSON(http.StatusOK, map[string]any{
			"success": true,
			"status":  "skipped",
			"note":    fmt.Sprintf("%s provider is not configured", provider),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"status":    "sent",
		"recipient": recipient,
	})
}

func errorJSON(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]any{
		"success": false,
		"error":   message,
	})
}

func readReportInput(c echo.Context) (input analysis.Input, e *xerr.Error) {
	payload, readErr := io.ReadAll(c.Request().Body)
	if readErr != nil {
		e = xerr.NewError(readErr, "read request body", c.Path())
		return input, e
	}
	return analysis.ParseInput(payload)
}
