package repositories_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/carewell/eldercare/internal/models"
	"github.com/carewell/eldercare/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationRepository(t *testing.T) {
	dbs, logger := newTestDB(t)
	repo := repositories.NewConversationRepository(dbs, logger)
	ctx := context.Background()

	t.Run("List returns conversations without threads", func(t *testing.T) {
		conversations, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, conversations, 4)
		assert.Equal(t, "Sarah Johnson", conversations[0].Name)
		assert.Equal(t, 2, conversations[0].Unread)
		assert.Empty(t, conversations[0].Messages)
	})

	t.Run("Get loads the message thread in order", func(t *testing.T) {
		conversation, err := repo.Get(ctx, "conv-1")
		require.NoError(t, err)
		require.Len(t, conversation.Messages, 4)
		assert.Equal(t, "Good morning Mom! Did you sleep well?", conversation.Messages[0].Content)
		assert.Equal(t, models.SenderResident, conversation.Messages[1].SenderRole)
		assert.False(t, conversation.Messages[3].Read)
	})

	t.Run("Get keeps long threads chronological", func(t *testing.T) {
		// Past nine messages the string ids sort msg-2-10 before msg-2-2,
		// so the thread order must come from the sequence number.
		stmt := `INSERT INTO messages (id, conversation_id, seq, sender, sender_role, content, timestamp, read, type)
		VALUES (?, 'conv-2', ?, 'Nurse Jennifer', 'staff', ?, '3:00 PM', 1, 'text')`
		for seq := 4; seq <= 12; seq++ {
			_, err := dbs.ReadWrite.ExecContext(ctx, stmt, fmt.Sprintf("msg-2-%d", seq), seq, fmt.Sprintf("Follow-up %d", seq))
			require.NoError(t, err)
		}

		conversation, err := repo.Get(ctx, "conv-2")
		require.NoError(t, err)
		require.Len(t, conversation.Messages, 12)
		assert.Equal(t, "Good morning Margaret! Time for your morning checkup.", conversation.Messages[0].Content)
		assert.Equal(t, "Follow-up 10", conversation.Messages[9].Content)
		assert.Equal(t, "Follow-up 12", conversation.Messages[11].Content)
	})

	t.Run("Get unknown id returns ErrNotFound", func(t *testing.T) {
		_, err := repo.Get(ctx, "conv-999")
		require.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
