package email

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

/*
sendViaSES delivers through Amazon SES v2.

Needs AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_REGION; without all
three it is a logged no-op. Attachments force the raw MIME path because the
simple SendEmail content type cannot carry them.
*/
func sendViaSES(
	senderAddress string, recipients []string,
	subject string, textBody string, htmlBody string,
	attachments []Attachment,
) (e *xerr.Error) {
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	region := os.Getenv("AWS_REGION")
	if accessKey == "" || secretKey == "" || region == "" {
		logNotConfigured(ProviderSES, "AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY/AWS_REGION", recipients)
		return e
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awsCfg, loadErr := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if loadErr != nil {
		e = xerr.NewError(loadErr, "load AWS configuration for SES", region)
		return e
	}

	client := sesv2.NewFromConfig(awsCfg)

	rawMessage, mimeErr := buildRawMIME(senderAddress, recipients, subject, textBody, htmlBody, attachments)
	if mimeErr != nil {
		e = mimeErr
		return e
	}

	output, sendErr := client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(senderAddress),
		Destination: &sestypes.Destination{
			ToAddresses: recipients,
		},
		Content: &sestypes.EmailContent{
			Raw: &sestypes.RawMessage{Data: rawMessage},
		},
	})
	if sendErr != nil {
		e = xerr.NewError(sendErr, "send email via SES", subject)
		return e
	}

	tl.Log(tl.Info1, palette.Green, "SES accepted message id='%s'", aws.ToString(output.MessageId))
	return e
}
