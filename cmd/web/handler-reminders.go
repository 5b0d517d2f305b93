package main

import (
	"net/http"

	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/repositories"
)

// completeReminder marks a reminder as done. When the reminder has voice
// announcements enabled, the completion is spoken on the session's speech
// stream.
func (app *application) completeReminder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	id := r.PostForm.Get("id")
	if id == "" {
		app.clientError(w, r, http.StatusUnprocessableEntity)
		return
	}

	if err := app.reminders.Complete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	reminder, err := app.reminders.Get(r.Context(), id)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if reminder.VoiceEnabled {
		app.announcer.Announce(r.Context(), app.sessionManager.Token(r.Context()),
			"Completed. "+reminder.Title+".")
	}

	app.refresh(w, r)
}
