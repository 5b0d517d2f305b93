package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/carewell/eldercare/internal/contexthelpers"
	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/models"
	"github.com/carewell/eldercare/internal/ssr"
	"github.com/carewell/eldercare/internal/styling"
	"github.com/carewell/eldercare/internal/views"
	"github.com/carewell/eldercare/ui"
)

type BaseTemplateData struct {
	CurrentPath string
	Role        models.Role
	Tabs        []models.Tab
}

func newBaseTemplateData(r *http.Request) BaseTemplateData {
	role := contexthelpers.CurrentRole(r.Context())
	return BaseTemplateData{
		CurrentPath: contexthelpers.CurrentPath(r.Context()),
		Role:        role,
		Tabs:        models.TabsFor(role),
	}
}

// pageTemplate returns a template for the given page name.
//
// pageName corresponds to a directory inside ui/templates/pages. It has to
// include a template named "page".
func (app *application) pageTemplate(pageName string) (*template.Template, error) {
	files := []string{
		"templates/base.gohtml",
	}

	pageTemplateFiles, err := fs.Glob(ui.Files, fmt.Sprintf("templates/pages/%s/*.gohtml", pageName))
	if err != nil {
		return nil, errors.Wrap(err, "glob page template files")
	}
	files = append(files, pageTemplateFiles...)

	// We need to initialize the FuncMap before parsing the files. The nonce
	// and csrf funcs are overridden in the render function.
	return template.New(pageName).Funcs(template.FuncMap{
		"nonce": func() string {
			panic("not implemented")
		},
		"csrf": func() string {
			panic("not implemented")
		},
		"tabTitle": models.Tab.Title,
		"completedReminders": func(reminders []models.Reminder) int {
			count := 0
			for _, reminder := range reminders {
				if reminder.Status == models.ReminderCompleted {
					count++
				}
			}
			return count
		},
		"residentStyle": styling.ResidentStatus,
		"vitalStyle":    styling.VitalStatus,
		"categoryStyle": styling.ReminderCategory,
		"reminderStyle": styling.ReminderStatus,
		"contactStyle":  styling.ContactCategory,
		"senderStyle":   styling.SenderRole,
	}).ParseFS(ui.Files, files...)
}

// render writes the page for the given view. For htmx requests only the
// "page" block is rendered so the client can swap the dashboard content
// without a full reload. Custom elements in the markup are expanded
// server-side before the response is written.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, file string, data any) {
	var (
		err error
		t   *template.Template
	)

	if t, err = app.pageTemplate(file); err != nil {
		app.serverError(w, r, errors.Wrap(err, "parse template", slog.String("template", file)))
		return
	}

	buf := new(bytes.Buffer)
	ctx := r.Context()
	nonce := fmt.Sprintf("nonce=%q", contexthelpers.CSPNonce(ctx))
	csrf := fmt.Sprintf("<input type=\"hidden\" name=\"csrf_token\" value=%q/>", contexthelpers.CSRFToken(ctx))
	t.Funcs(template.FuncMap{
		"nonce": func() template.HTMLAttr {
			return template.HTMLAttr(nonce) //nolint:gosec // the nonce is not user-provided.
		},
		"csrf": func() template.HTML {
			return template.HTML(csrf) //nolint:gosec // the csrf input is not user-provided.
		},
	})

	rootTemplate := "base"
	expandFragment := ssr.ExpandDocument
	if app.htmx.NewHandler(w, r).IsHxRequest() {
		rootTemplate = "page"
		expandFragment = ssr.ReplaceCustomElements
	}
	if err = t.ExecuteTemplate(buf, rootTemplate, data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "execute template", slog.String("template", file)))
		return
	}

	expanded := new(bytes.Buffer)
	if err = expandFragment(expanded, buf); err != nil {
		app.serverError(w, r, errors.Wrap(err, "expand custom elements", slog.String("template", file)))
		return
	}

	w.WriteHeader(status)

	_, _ = expanded.WriteTo(w)
}

type dashboardTemplateData struct {
	BaseTemplateData
	View views.View
	// Errors and Form are set when a submission failed validation and the
	// form screen re-renders with the submitted values.
	Errors []string
	Form   any
}
