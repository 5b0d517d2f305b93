package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/carewell/eldercare/internal/db"
	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/models"
)

type ConversationRepository struct {
	dbs    *db.Database
	logger *slog.Logger
}

func NewConversationRepository(dbs *db.Database, logger *slog.Logger) *ConversationRepository {
	return &ConversationRepository{
		dbs:    dbs,
		logger: logger.With("source", "ConversationRepository"),
	}
}

// List returns all conversations without their messages.
func (r *ConversationRepository) List(ctx context.Context) ([]models.Conversation, error) {
	var conversations []models.Conversation
	stmt := `SELECT id, name, role, avatar, last_message, timestamp, unread, online
	FROM conversations
	ORDER BY id`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &conversations, stmt); err != nil {
		return nil, errors.Wrap(err, "select conversations")
	}
	return conversations, nil
}

// Get returns the conversation with its message thread or ErrNotFound.
func (r *ConversationRepository) Get(ctx context.Context, id string) (*models.Conversation, error) {
	var conversation models.Conversation
	stmt := `SELECT id, name, role, avatar, last_message, timestamp, unread, online
	FROM conversations
	WHERE id = ?`
	if err := r.dbs.ReadOnly.GetContext(ctx, &conversation, stmt, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "get conversation", slog.String("id", id))
		}
		return nil, errors.Wrap(err, "get conversation")
	}

	// Order by the explicit sequence number; the string ids would sort
	// msg-x-10 before msg-x-2.
	stmt = `SELECT id, sender, sender_role, content, timestamp, read, type
	FROM messages
	WHERE conversation_id = ?
	ORDER BY seq`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &conversation.Messages, stmt, id); err != nil {
		return nil, errors.Wrap(err, "select messages")
	}
	return &conversation, nil
}
