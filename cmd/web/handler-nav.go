package main

import (
	"net/http"

	"github.com/carewell/eldercare/internal/models"
	"github.com/carewell/eldercare/internal/navigation"
)

// The nav handlers fold one event each into the session state. Events that
// don't apply to the current state fall through unchanged, so there is no
// error branch; the dashboard simply re-renders whatever state results.

func (app *application) navTab(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	app.applyEvent(r.Context(), navigation.SelectTab{Tab: models.Tab(r.PostForm.Get("tab"))})
	app.refresh(w, r)
}

func (app *application) navDetail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	app.applyEvent(r.Context(), navigation.OpenDetail{ID: r.PostForm.Get("id")})
	app.refresh(w, r)
}

func (app *application) navBack(w http.ResponseWriter, r *http.Request) {
	app.applyEvent(r.Context(), navigation.CloseDetail{})
	app.refresh(w, r)
}

func (app *application) navModalOpen(w http.ResponseWriter, r *http.Request) {
	app.applyEvent(r.Context(), navigation.OpenModal{})
	app.refresh(w, r)
}

func (app *application) navModalClose(w http.ResponseWriter, r *http.Request) {
	app.applyEvent(r.Context(), navigation.CloseModal{})
	app.refresh(w, r)
}

func (app *application) navSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	app.applyEvent(r.Context(), navigation.SetSearchQuery{Query: r.Form.Get("q")})
	app.refresh(w, r)
}
