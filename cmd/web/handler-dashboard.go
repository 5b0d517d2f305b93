package main

import (
	"context"
	"net/http"

	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/models"
	"github.com/carewell/eldercare/internal/views"
)

// collections loads the datasets the view resolver works from.
func (app *application) collections(ctx context.Context) (views.Collections, error) {
	var (
		collections views.Collections
		err         error
	)
	if collections.Reminders, err = app.reminders.List(ctx); err != nil {
		return collections, errors.Wrap(err, "list reminders")
	}
	if collections.Contacts, err = app.contacts.List(ctx); err != nil {
		return collections, errors.Wrap(err, "list contacts")
	}
	if collections.Residents, err = app.residents.List(ctx); err != nil {
		return collections, errors.Wrap(err, "list residents")
	}
	if collections.Conversations, err = app.conversations.List(ctx); err != nil {
		return collections, errors.Wrap(err, "list conversations")
	}
	if collections.Metrics, err = app.health.Metrics(ctx); err != nil {
		return collections, errors.Wrap(err, "list health metrics")
	}
	if collections.ResidentHealth, err = app.health.ResidentHealth(ctx); err != nil {
		return collections, errors.Wrap(err, "list resident health")
	}
	if collections.RecentRecords, err = app.health.RecentRecords(ctx); err != nil {
		return collections, errors.Wrap(err, "list health records")
	}
	if collections.BloodPressure, err = app.health.BloodPressureTrend(ctx); err != nil {
		return collections, errors.Wrap(err, "blood pressure trend")
	}
	if collections.Activity, err = app.health.ActivityTrend(ctx); err != nil {
		return collections, errors.Wrap(err, "activity trend")
	}
	return collections, nil
}

// dashboard resolves the session's navigation state to a screen and renders
// it. Conversation threads are loaded lazily since the resolver only carries
// the conversation summary.
func (app *application) dashboard(w http.ResponseWriter, r *http.Request) {
	state := app.navigationState(r.Context())
	if state.Role == models.RoleNone {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	collections, err := app.collections(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	view := views.Resolve(state, collections)

	// The chat detail screen needs the full message thread.
	if view.Screen == views.ScreenChatDetail {
		conversation, err := app.conversations.Get(r.Context(), view.Conversation.ID)
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		view.Conversation = conversation
	}

	data := dashboardTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		View:             view,
	}
	app.render(w, r, http.StatusOK, string(view.Screen), data)
}

// refresh sends the caller back to the dashboard. htmx requests get the
// rendered dashboard straight away, everything else a redirect.
func (app *application) refresh(w http.ResponseWriter, r *http.Request) {
	if app.htmx.NewHandler(w, r).IsHxRequest() {
		app.dashboard(w, r)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
