package models

import (
	"fmt"
	"strings"
)

type ContactCategory string

const (
	ContactEmergency ContactCategory = "emergency"
	ContactStaff     ContactCategory = "staff"
	ContactFamily    ContactCategory = "family"
	ContactMedical   ContactCategory = "medical"
)

// Contact is an emergency or quick-dial contact. Emergency-category entries
// always sort first in display order.
type Contact struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Relationship string          `db:"relationship"`
	Phone        string          `db:"phone"`
	Available    bool            `db:"available"`
	Category     ContactCategory `db:"category"`
}

// Announcement is the read-aloud text for the contact. The phone number is
// spelled digit by digit so it can be followed at speech pace.
func (c Contact) Announcement() string {
	spaced := strings.Join(strings.Split(c.Phone, ""), " ")
	return fmt.Sprintf("%s, %s. Phone number: %s", c.Name, c.Relationship, spaced)
}
