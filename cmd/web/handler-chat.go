package main

import (
	"log/slog"
	"net/http"

	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/repositories"
)

// sendMessage accepts a chat message. Delivery is out of scope for the demo;
// the message is acknowledged and logged, and the thread re-renders from the
// seeded data.
func (app *application) sendMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	conversationID := r.PostForm.Get("conversation_id")
	content := r.PostForm.Get("content")
	if content == "" {
		app.clientError(w, r, http.StatusUnprocessableEntity)
		return
	}

	// Make sure the conversation exists before acknowledging.
	if _, err := app.conversations.Get(r.Context(), conversationID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.logger.LogAttrs(r.Context(), slog.LevelInfo, "accepted chat message",
		slog.String("conversation_id", conversationID),
		slog.Int("content_length", len(content)))

	app.refresh(w, r)
}
