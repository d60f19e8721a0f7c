package email

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

/*
sendViaSendgrid delivers through the SendGrid v3 mail API.

Needs SENDGRID_API_KEY; without it it is a logged no-op.
*/
func sendViaSendgrid(
	senderAddress string, recipients []string,
	subject string, textBody string, htmlBody string,
	attachments []Attachment,
) (e *xerr.Error) {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		logNotConfigured(ProviderSendgrid, "SENDGRID_API_KEY", recipients)
		return e
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("", senderAddress))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	for _, recipient := range recipients {
		personalization.AddTos(mail.NewEmail("", recipient))
	}
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", textBody))
	if htmlBody != "" {
		message.AddContent(mail.NewContent("text/html", htmlBody))
	}

	for _, attachment := range attachments {
		sendgridAttachment := mail.NewAttachment()
		sendgridAttachment.SetContent(base64.StdEncoding.EncodeToString(attachment.Data))
		sendgridAttachment.SetType(attachment.ContentType)
		sendgridAttachment.SetFilename(attachment.Filename)
		sendgridAttachment.SetDisposition("attachment")
		message.AddAttachment(sendgridAttachment)
	}

	response, sendErr := sendgrid.NewSendClient(apiKey).Send(message)
	if sendErr != nil {
		e = xerr.NewError(sendErr, "send email via SendGrid", subject)
		return e
	}

	if !sendgridAccepted(response) {
		err := fmt.Errorf("sendgrid rejected message: status %d, body %s", response.StatusCode, response.Body)
		e = xerr.NewError(err, "send email via SendGrid", subject)
		return e
	}

	tl.Log(tl.Info1, palette.Green, "SendGrid accepted message (status %s)", response.StatusCode)
	return e
}

/*
sendgridAccepted reports whether the v3 API response is a 2xx acceptance.
*/
func sendgridAccepted(response *rest.Response) bool {
	return response != nil && response.StatusCode >= 200 && response.StatusCode < 300
}
