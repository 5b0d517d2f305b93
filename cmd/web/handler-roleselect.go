package main

import (
	"net/http"

	"github.com/carewell/eldercare/internal/models"
	"github.com/carewell/eldercare/internal/navigation"
)

type roleSelectTemplateData struct {
	BaseTemplateData
	Roles []models.Role
}

// roleSelect shows the role chooser. A session that already picked a role
// goes straight to its dashboard.
func (app *application) roleSelect(w http.ResponseWriter, r *http.Request) {
	if app.navigationState(r.Context()).Role != models.RoleNone {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := roleSelectTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Roles:            []models.Role{models.RoleResident, models.RoleCaretaker},
	}
	app.render(w, r, http.StatusOK, "roleselect", data)
}

func (app *application) selectRole(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	role := models.Role(r.PostForm.Get("role"))
	if !role.Valid() {
		app.clientError(w, r, http.StatusUnprocessableEntity)
		return
	}

	app.applyEvent(r.Context(), navigation.SelectRole{Role: role})
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (app *application) logout(w http.ResponseWriter, r *http.Request) {
	app.applyEvent(r.Context(), navigation.Logout{})
	if err := app.sessionManager.RenewToken(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
