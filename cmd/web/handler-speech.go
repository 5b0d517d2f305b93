package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/repositories"
)

// announce builds a spoken announcement and routes it to the session's
// speech stream. The announcement either references a record ("kind" plus
// "id") or carries freeform "text". A disconnected stream is not an error.
func (app *application) announce(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	var text string
	switch kind := r.PostForm.Get("kind"); kind {
	case "reminder":
		reminder, err := app.reminders.Get(r.Context(), r.PostForm.Get("id"))
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				app.notFound(w, r)
				return
			}
			app.serverError(w, r, err)
			return
		}
		text = reminder.Announcement()
	case "contact":
		contact, err := app.contacts.Get(r.Context(), r.PostForm.Get("id"))
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				app.notFound(w, r)
				return
			}
			app.serverError(w, r, err)
			return
		}
		text = contact.Announcement()
	default:
		text = r.PostForm.Get("text")
	}

	if text == "" {
		app.clientError(w, r, http.StatusUnprocessableEntity)
		return
	}

	app.announcer.Announce(r.Context(), app.sessionManager.Token(r.Context()), text)
	w.WriteHeader(http.StatusNoContent)
}

// speechStream is the SSE endpoint the browser keeps open to receive
// announcements. The stream publishes itself on the broker under the session
// token; announcements for the session arrive on the channel and are written
// as SSE data events.
func (app *application) speechStream(w http.ResponseWriter, r *http.Request) {
	token := app.sessionManager.Token(r.Context())
	if token == "" {
		app.clientError(w, r, http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		app.serverError(w, r, errors.New("response writer does not support streaming"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	announcements := make(chan string)
	app.speechBroker.Publish(token, announcements)
	defer app.speechBroker.Unpublish(token, announcements)

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepalive.C:
			// Comment line keeps proxies from closing the idle stream.
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case text := <-announcements:
			if _, err := fmt.Fprintf(w, "data: %s\n\n", text); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
