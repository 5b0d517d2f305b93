package models

import "fmt"

type SenderRole string

const (
	SenderResident SenderRole = "resident"
	SenderFamily   SenderRole = "family"
	SenderStaff    SenderRole = "staff"
)

type MessageType string

const (
	MessageText  MessageType = "text"
	MessageVoice MessageType = "voice"
	MessageImage MessageType = "image"
)

// Message is one entry of a conversation. Messages keep their insertion
// (chronological) order within the conversation.
type Message struct {
	ID         string      `db:"id"`
	Sender     string      `db:"sender"`
	SenderRole SenderRole  `db:"sender_role"`
	Content    string      `db:"content"`
	Timestamp  string      `db:"timestamp"`
	Read       bool        `db:"read"`
	Type       MessageType `db:"type"`
}

// Announcement is the read-aloud text for the message.
func (m Message) Announcement() string {
	return fmt.Sprintf("Message from %s. %s", m.Sender, m.Content)
}

type ConversationRole string

const (
	ConversationFamily ConversationRole = "family"
	ConversationStaff  ConversationRole = "staff"
)

// Conversation is a messaging thread with one family member or staff
// counterpart. The unread count is display-only.
type Conversation struct {
	ID          string           `db:"id"`
	Name        string           `db:"name"`
	Role        ConversationRole `db:"role"`
	Avatar      string           `db:"avatar"`
	LastMessage string           `db:"last_message"`
	Timestamp   string           `db:"timestamp"`
	Unread      int              `db:"unread"`
	Online      bool             `db:"online"`
	Messages    []Message        `db:"-"`
}
