package main

import (
	"net/http"

	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/models"
	"github.com/carewell/eldercare/internal/repositories"
	"github.com/carewell/eldercare/internal/telephony"
)

type callConfirmTemplateData struct {
	BaseTemplateData
	Contact *models.Contact
	DialURL string
}

// callContact hands a call off to the device dialer. Emergency contacts dial
// immediately; everyone else goes through a confirmation screen first.
func (app *application) callContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	contact, err := app.contacts.Get(r.Context(), r.PostForm.Get("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	confirmed := r.PostForm.Get("confirmed") == "true"
	if telephony.NeedsConfirmation(*contact) && !confirmed {
		data := callConfirmTemplateData{
			BaseTemplateData: newBaseTemplateData(r),
			Contact:          contact,
			DialURL:          telephony.DialURL(contact.Phone),
		}
		app.render(w, r, http.StatusOK, "callconfirm", data)
		return
	}

	http.Redirect(w, r, telephony.DialURL(contact.Phone), http.StatusSeeOther)
}
