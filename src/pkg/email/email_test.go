package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage_NoRecipients(t *testing.T) {
	e := SendMessage(ProviderMailgun, nil, "from@example.com", nil, "s", "body", "", nil)
	assert.NotNil(t, e)

	e = SendMessage(ProviderMailgun, nil, "from@example.com", []string{"  ", ""}, "s", "body", "", nil)
	assert.NotNil(t, e)
}

func TestSendMessage_DryRunSkipsDelivery(t *testing.T) {
	sendEmails := false
	e := SendMessage(ProviderMailgun, &sendEmails, "from@example.com", []string{"to@example.com"}, "s", "body", "", nil)
	assert.Nil(t, e)
}

func TestSendMessage_UnknownProvider(t *testing.T) {
	e := SendMessage(Provider("carrier-pigeon"), nil, "from@example.com", []string{"to@example.com"}, "s", "body", "", nil)
	assert.NotNil(t, e)
}

func TestSendMessage_MissingCredentialsIsNoOpSuccess(t *testing.T) {
	t.Setenv("MAILGUN_DOMAIN", "")
	t.Setenv("MAILGUN_API_KEY", "")

	e := SendMessage(ProviderMailgun, nil, "from@example.com", []string{"to@example.com"}, "s", "body", "", nil)
	assert.Nil(t, e)
}

func TestProviderConfigured(t *testing.T) {
	t.Setenv("SENDGRID_API_KEY", "sg-key")
	assert.True(t, ProviderConfigured(ProviderSendgrid))

	t.Setenv("SENDGRID_API_KEY", "")
	assert.False(t, ProviderConfigured(ProviderSendgrid))

	t.Setenv("MAILGUN_DOMAIN", "mg.example.com")
	t.Setenv("MAILGUN_API_KEY", "")
	assert.False(t, ProviderConfigured(ProviderMailgun))

	assert.False(t, ProviderConfigured(Provider("carrier-pigeon")))
}

func TestCleanRecipients(t *testing.T) {
	cleaned := cleanRecipients([]string{" a@example.com ", "", "b@example.com", "   "})
	require.Len(t, cleaned, 2)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cleaned)
}
