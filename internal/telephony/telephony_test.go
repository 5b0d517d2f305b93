package telephony_test

import (
	"testing"

	"github.com/carewell/eldercare/internal/models"
	"github.com/carewell/eldercare/internal/telephony"
	"github.com/stretchr/testify/assert"
)

func TestDialURL(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"911", "tel:911"},
		{"(555) 123-4567", "tel:5551234567"},
		{"+1 555 234 5678", "tel:+15552345678"},
		{"555.345.6789 ext 2", "tel:55534567892"},
	}
	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, telephony.DialURL(tt.phone))
		})
	}
}

func TestNeedsConfirmation(t *testing.T) {
	emergency := models.Contact{ID: "contact-1", Name: "911 Emergency", Category: models.ContactEmergency}
	staff := models.Contact{ID: "contact-2", Name: "Nursing Station", Category: models.ContactStaff}
	family := models.Contact{ID: "contact-3", Name: "Sarah Johnson", Category: models.ContactFamily}

	assert.False(t, telephony.NeedsConfirmation(emergency), "emergency calls go straight to the dialer")
	assert.True(t, telephony.NeedsConfirmation(staff))
	assert.True(t, telephony.NeedsConfirmation(family))
}
