package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/tuumbleweed/xerr"
)

/*
buildRawMIME assembles an RFC 5322 message with optional HTML alternative and
attachments, for providers that only accept raw bodies (SES).

Layout: multipart/mixed wrapping a multipart/alternative text part plus one
base64 part per attachment.
*/
func buildRawMIME(
	senderAddress string, recipients []string,
	subject string, textBody string, htmlBody string,
	attachments []Attachment,
) (rawMessage []byte, e *xerr.Error) {
	var buffer bytes.Buffer
	mixed := multipart.NewWriter(&buffer)

	fmt.Fprintf(&buffer, "From: %s\r\n", senderAddress)
	fmt.Fprintf(&buffer, "To: %s\r\n", strings.Join(recipients, ", "))
	fmt.Fprintf(&buffer, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buffer, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buffer, "Content-Type: multipart/mixed; boundary=%q\r\n", mixed.Boundary())
	fmt.Fprintf(&buffer, "\r\n")

	e = writeBodyParts(mixed, textBody, htmlBody)
	if e != nil {
		return rawMessage, e
	}

	for _, attachment := range attachments {
		e = writeAttachmentPart(mixed, attachment)
		if e != nil {
			return rawMessage, e
		}
	}

	closeErr := mixed.Close()
	if closeErr != nil {
		e = xerr.NewError(closeErr, "close MIME message", subject)
		return rawMessage, e
	}

	rawMessage = buffer.Bytes()
	return rawMessage, e
}

func writeBodyParts(mixed *multipart.Writer, textBody string, htmlBody string) (e *xerr.Error) {
	// No HTML: a single text part keeps the message simple.
	if htmlBody == "" {
		return writeTextPart(mixed, "text/plain", textBody)
	}

	var alternativeBuffer bytes.Buffer
	alternative := multipart.NewWriter(&alternativeBuffer)

	e = writeTextPart(alternative, "text/plain", textBody)
	if e != nil {
		return e
	}
	e = writeTextPart(alternative, "text/html", htmlBody)
	if e != nil {
		return e
	}

	closeErr := alternative.Close()
	if closeErr != nil {
		e = xerr.NewError(closeErr, "close alternative MIME part", "")
		return e
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", alternative.Boundary()))

	part, createErr := mixed.CreatePart(header)
	if createErr != nil {
		e = xerr.NewError(createErr, "create alternative MIME part", "")
		return e
	}

	_, writeErr := part.Write(alternativeBuffer.Bytes())
	if writeErr != nil {
		e = xerr.NewError(writeErr, "write alternative MIME part", "")
	}
	return e
}

func writeTextPart(writer *multipart.Writer, contentType string, body string) (e *xerr.Error) {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType+"; charset=UTF-8")

	part, createErr := writer.CreatePart(header)
	if createErr != nil {
		e = xerr.NewError(createErr, "create MIME text part", contentType)
		return e
	}

	_, writeErr := part.Write([]byte(body))
	if writeErr != nil {
		e = xerr.NewError(writeErr, "write MIME text part", contentType)
	}
	return e
}

func writeAttachmentPart(mixed *multipart.Writer, attachment Attachment) (e *xerr.Error) {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", attachment.ContentType)
	header.Set("Content-Transfer-Encoding", "base64")
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment.Filename))

	part, createErr := mixed.CreatePart(header)
	if createErr != nil {
		e = xerr.NewError(createErr, "create MIME attachment part", attachment.Filename)
		return e
	}

	encoded := base64.StdEncoding.EncodeToString(attachment.Data)

	// 76-character lines per RFC 2045.
	for start := 0; start < len(encoded); start += 76 {
		end := start + 76
		if end > len(encoded) {
			end = len(encoded)
		}
		_, writeErr := fmt.Fprintf(part, "%s\r\n", encoded[start:end])
		if writeErr != nil {
			e = xerr.NewError(writeErr, "write MIME attachment part", attachment.Filename)
			return e
		}
	}

	return e
}
