/*
Package email delivers messages through one of three outbound providers:
Mailgun, SendGrid, or Amazon SES v2.

Provider credentials come from environment variables. A provider whose
credentials are absent skips delivery as a logged no-op success, so
non-production setups can exercise the full report pipeline without an
outbound mail account. Real transport failures always propagate.
*/
package email

import (
	"fmt"
	"os"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"property-analyzer/src/pkg/config"
)

/*
Provider selects the outbound delivery channel.
*/
type Provider string

const (
	ProviderMailgun  Provider = "mailgun"
	ProviderSendgrid Provider = "sendgrid"
	ProviderSES      Provider = "ses"
)

/*
Attachment is one file attached to an outgoing message.
*/
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

/*
Config is the email section of the config file.
*/
type Config struct {
	Provider      string `json:"provider,omitempty"`
	SenderAddress string `json:"sender_address,omitempty"`
	SendEmails    *bool  `json:"send_emails,omitempty"`
}

func DefaultValueConfig() Config {
	enabled := true
	return Config{
		Provider:      string(ProviderMailgun),
		SenderAddress: "Edmund Bogen Team <info@bogenhomes.com>",
		SendEmails:    &enabled,
	}
}

// create config with default values before config gets initialized
var Cfg Config = DefaultValueConfig() // this one we use to access config values from anywhere

/*
If local Config is provided - use it. Replace all missing values with default ones.

If not provided - just use defaultConfig.
*/
func InitializeConfig(localConfig *Config) {
	if localConfig == nil {
		tl.Log(tl.Info, palette.Purple, "%s config is %s, keeping %s", "email", "not provided", "default email config")
		return
	}

	defaultConfig := DefaultValueConfig()

	Cfg = *localConfig

	tl.ApplyDefaults(&Cfg, defaultConfig, func(field string, defVal any) {
		tl.Log(
			tl.Info, palette.Purple,
			"%s field is %s in %s configuration. Using default value: %v",
			field, "missing", config.GetPackageName(), tl.PrettyForStderr(defVal),
		)
	})

	tl.Log(tl.Info, palette.Green, "%s config was %s, using %s", "email", "provided", "local email config")
}

/*
SendMessage delivers one message through the selected provider.

sendEmails is a dry-run switch: pass a pointer to false to log and skip
delivery while still validating the composed message. Provider credentials
missing from the environment also skip delivery (logged, nil error). Every
other failure returns a *xerr.Error for the caller to surface.
*/
func SendMessage(
	provider Provider, sendEmails *bool,
	senderAddress string, recipientAddresses []string,
	subject string, textBody string, htmlBody string,
	attachments []Attachment,
) (e *xerr.Error) {
	recipients := cleanRecipients(recipientAddresses)
	if len(recipients) == 0 {
		err := fmt.Errorf("no recipient addresses provided")
		e = xerr.NewError(err, "validate email recipients", strings.Join(recipientAddresses, ","))
		return e
	}

	if sendEmails != nil && !*sendEmails {
		tl.Log(
			tl.Notice, palette.YellowBold, "Email sending is %s, skipping '%s' to '%s'",
			"disabled", subject, strings.Join(recipients, ", "),
		)
		return e
	}

	tl.Log(
		tl.Notice, palette.BlueBold, "%s '%s' to '%s' via %s (%s attachments)",
		"Sending", subject, strings.Join(recipients, ", "), provider, len(attachments),
	)

	switch provider {
	case ProviderMailgun:
		e = sendViaMailgun(senderAddress, recipients, subject, textBody, htmlBody, attachments)
	case ProviderSendgrid:
		e = sendViaSendgrid(senderAddress, recipients, subject, textBody, htmlBody, attachments)
	case ProviderSES:
		e = sendViaSES(senderAddress, recipients, subject, textBody, htmlBody, attachments)
	default:
		err := fmt.Errorf("unknown email provider: %s", provider)
		e = xerr.NewError(err, "select email provider", string(provider))
	}

	if e == nil {
		tl.Log(
			tl.Notice1, palette.GreenBold, "%s '%s' to '%s' via %s",
			"Sent", subject, strings.Join(recipients, ", "), provider,
		)
	}

	return e
}

/*
ProviderConfigured reports whether the provider's credentials are present in
the environment. Callers use it to tell a real delivery apart from the
logged no-op skip, which both return a nil error from SendMessage.
*/
func ProviderConfigured(provider Provider) bool {
	switch provider {
	case ProviderMailgun:
		return os.Getenv("MAILGUN_DOMAIN") != "" && os.Getenv("MAILGUN_API_KEY") != ""
	case ProviderSendgrid:
		return os.Getenv("SENDGRID_API_KEY") != ""
	case ProviderSES:
		return os.Getenv("AWS_ACCESS_KEY_ID") != "" &&
			os.Getenv("AWS_SECRET_ACCESS_KEY") != "" &&
			os.Getenv("AWS_REGION") != ""
	}
	return false
}

/*
logNotConfigured records the no-op skip for a provider with no credentials.
*/
func logNotConfigured(provider Provider, missingVars string, recipients []string) {
	tl.Log(
		tl.Notice, palette.YellowBold, "%s is not configured (%s missing), %s to '%s'",
		provider, missingVars, "skipping delivery", strings.Join(recipients, ", "),
	)
}

func cleanRecipients(recipientAddresses []string) []string {
	cleaned := make([]string, 0, len(recipientAddresses))
	for _, address := range recipientAddresses {
		trimmed := strings.TrimSpace(address)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned
}
