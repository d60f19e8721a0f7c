package email

import (
	"context"
	"os"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

/*
sendViaMailgun delivers through the Mailgun HTTP API.

Needs MAILGUN_DOMAIN and MAILGUN_API_KEY; without both it is a logged no-op.
*/
func sendViaMailgun(
	senderAddress string, recipients []string,
	subject string, textBody string, htmlBody string,
	attachments []Attachment,
) (e *xerr.Error) {
	domain := os.Getenv("MAILGUN_DOMAIN")
	apiKey := os.Getenv("MAILGUN_API_KEY")
	if domain == "" || apiKey == "" {
		logNotConfigured(ProviderMailgun, "MAILGUN_DOMAIN/MAILGUN_API_KEY", recipients)
		return e
	}

	client := mailgun.NewMailgun(domain, apiKey)

	message := client.NewMessage(senderAddress, subject, textBody, recipients...)
	if htmlBody != "" {
		message.SetHtml(htmlBody)
	}
	for _, attachment := range attachments {
		message.AddBufferAttachment(attachment.Filename, attachment.Data)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	response, id, sendErr := client.Send(ctx, message)
	if sendErr != nil {
		e = xerr.NewError(sendErr, "send email via Mailgun", domain)
		return e
	}

	tl.Log(tl.Info1, palette.Green, "Mailgun accepted message id='%s' response='%s'", id, response)
	return e
}
