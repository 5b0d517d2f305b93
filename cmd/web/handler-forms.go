package main

import (
	"net/http"
	"strconv"

	"github.com/carewell/eldercare/internal/forms"
	"github.com/carewell/eldercare/internal/navigation"
	"github.com/carewell/eldercare/internal/views"
)

// renderFormErrors re-renders the open form screen with validation messages
// and the submitted values so nothing has to be typed again.
func (app *application) renderFormErrors(w http.ResponseWriter, r *http.Request, messages []string, form any) {
	state := app.navigationState(r.Context())
	collections, err := app.collections(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	view := views.Resolve(state, collections)

	data := dashboardTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		View:             view,
		Errors:           messages,
		Form:             form,
	}
	app.render(w, r, http.StatusUnprocessableEntity, string(view.Screen), data)
}

func (app *application) createReminder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	form := forms.ReminderForm{
		ResidentID:   r.PostForm.Get("resident_id"),
		Category:     r.PostForm.Get("category"),
		Title:        r.PostForm.Get("title"),
		Time:         r.PostForm.Get("time"),
		Repeat:       r.PostForm.Get("repeat"),
		VoiceEnabled: r.PostForm.Get("voice_enabled") == "on",
		Details:      r.PostForm.Get("details"),
	}
	messages, err := app.formValidator.Validate(form)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if len(messages) > 0 {
		app.renderFormErrors(w, r, messages, form)
		return
	}

	if _, err = app.sink.AcceptReminder(r.Context(), form); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.applyEvent(r.Context(), navigation.CloseModal{})
	app.refresh(w, r)
}

func (app *application) createResident(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	// A non-numeric age becomes zero and fails validation with the rest.
	age, _ := strconv.Atoi(r.PostForm.Get("age"))
	form := forms.ResidentForm{
		Name:       r.PostForm.Get("name"),
		Room:       r.PostForm.Get("room"),
		Age:        age,
		Conditions: r.PostForm.Get("conditions"),
		Notes:      r.PostForm.Get("notes"),
	}
	messages, err := app.formValidator.Validate(form)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if len(messages) > 0 {
		app.renderFormErrors(w, r, messages, form)
		return
	}

	if _, err = app.sink.AcceptResident(r.Context(), form); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.applyEvent(r.Context(), navigation.CloseModal{})
	app.refresh(w, r)
}

func (app *application) createHealthRecord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	form := forms.HealthRecordForm{
		ResidentID: r.PostForm.Get("resident_id"),
		Kind:       r.PostForm.Get("kind"),
		Value:      r.PostForm.Get("value"),
		Notes:      r.PostForm.Get("notes"),
	}
	messages, err := app.formValidator.Validate(form)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if len(messages) > 0 {
		app.renderFormErrors(w, r, messages, form)
		return
	}

	if _, err = app.sink.AcceptHealthRecord(r.Context(), form); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.applyEvent(r.Context(), navigation.CloseModal{})
	app.refresh(w, r)
}
