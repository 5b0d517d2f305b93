package main

import (
	"net/http"
	"time"

	"github.com/carewell/eldercare/ui"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	// The embedded filesystem already roots the assets under static/.
	fileServer := http.FileServerFS(ui.Files)
	mux.Handle("GET /static/", cacheForeverHeaders(fileServer))

	handlerTimeout := 5 * time.Second
	session := alice.New(
		func(next http.Handler) http.Handler { return timeoutHandler(next, handlerTimeout) },
		app.sessionManager.LoadAndSave,
		noSurf,
		app.commonContext,
	)

	mux.Handle("GET /{$}", session.ThenFunc(app.roleSelect))
	mux.Handle("POST /session/role", session.ThenFunc(app.selectRole))
	mux.Handle("POST /session/logout", session.ThenFunc(app.logout))

	mux.Handle("GET /dashboard", session.ThenFunc(app.dashboard))

	mux.Handle("POST /nav/tab", session.ThenFunc(app.navTab))
	mux.Handle("POST /nav/detail", session.ThenFunc(app.navDetail))
	mux.Handle("POST /nav/back", session.ThenFunc(app.navBack))
	mux.Handle("POST /nav/modal/open", session.ThenFunc(app.navModalOpen))
	mux.Handle("POST /nav/modal/close", session.ThenFunc(app.navModalClose))
	mux.Handle("GET /nav/search", session.ThenFunc(app.navSearch))
	mux.Handle("POST /nav/search", session.ThenFunc(app.navSearch))

	mux.Handle("POST /reminders/complete", session.ThenFunc(app.completeReminder))
	mux.Handle("POST /reminders", session.ThenFunc(app.createReminder))
	mux.Handle("POST /residents", session.ThenFunc(app.createResident))
	mux.Handle("POST /health-records", session.ThenFunc(app.createHealthRecord))
	mux.Handle("POST /chat/send", session.ThenFunc(app.sendMessage))
	mux.Handle("POST /contacts/call", session.ThenFunc(app.callContact))

	mux.Handle("POST /speech/announce", session.ThenFunc(app.announce))

	// The SSE stream bypasses the session save and the handler timeout so
	// that the connection can stay open.
	sse := alice.New(app.serverSentEventMiddleware)
	mux.Handle("GET /speech/stream", sse.ThenFunc(app.speechStream))

	mux.HandleFunc("GET /api/healthy", app.healthy)

	return app.recoverPanic(app.logRequest(secureHeaders(mux)))
}
