package ticket

import (
	"regexp"
	"strings"
)

// PayloadPrefix is what every scannable code starts with. Scanners strip it
// to get back the registration id.
const PayloadPrefix = "ASACE-TICKET-"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Payload is the string encoded into the ticket's QR code for a registration id.
func Payload(id string) string {
	return PayloadPrefix + id
}

// ParsePayload recovers the registration id from a scanned code.
// ok is false when the prefix is absent or nothing follows it.
func ParsePayload(scanned string) (id string, ok bool) {
	id, found := strings.CutPrefix(strings.TrimSpace(scanned), PayloadPrefix)
	if !found || id == "" {
		return "", false
	}
	return id, true
}

// FileName is the attachment name for a recipient's ticket.
func FileName(recipientName string) string {
	name := whitespaceRun.ReplaceAllString(strings.TrimSpace(recipientName), "-")
	if name == "" {
		name = "attendee"
	}
	return "asace-ticket-" + name + ".png"
}
