// Package telephony hands a call off to the device dialer. The app never
// places calls itself; it builds a tel: link and lets the browser take over.
package telephony

import (
	"strings"

	"github.com/carewell/eldercare/internal/models"
)

// DialURL converts a display-formatted phone number into a tel: URL the
// browser can hand to the device dialer. Formatting characters are stripped;
// a leading + for international numbers is kept.
func DialURL(phone string) string {
	var digits strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '+' && i == 0:
			digits.WriteRune(r)
		}
	}
	return "tel:" + digits.String()
}

// NeedsConfirmation reports whether dialing the contact should go through a
// confirmation step first. Emergency contacts dial immediately; everyone else
// gets a chance to back out.
func NeedsConfirmation(contact models.Contact) bool {
	return contact.Category != models.ContactEmergency
}
