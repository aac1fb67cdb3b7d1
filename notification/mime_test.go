package notification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawMessageInlineContentID(t *testing.T) {
	raw, err := rawMessage(testEmailWithTicket())
	require.NoError(t, err)

	msg := strings.ToLower(string(raw))
	assert.Contains(t, msg, "content-id: <ticket_image>")
	assert.NotContains(t, msg, "content-id: ticket_image")
	assert.NotContains(t, msg, "<<ticket_image>>")
}

func TestContentID(t *testing.T) {
	assert.Equal(t, "<ticket_image>", contentID("ticket_image"))
	assert.Equal(t, "<ticket_image>", contentID("<ticket_image>"))
}
