// Package ssr expands the custom elements used in the page templates into
// plain HTML before it reaches the browser. Keeping the expansion server-side
// means the dashboards work without any client-side component runtime.
package ssr

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/models"
	"github.com/carewell/eldercare/internal/styling"
	"golang.org/x/net/html"
)

// ReplaceCustomElements rewrites the custom elements in an HTML fragment.
// Only the body content of the parsed fragment is written back, which keeps
// htmx partials free of the implied <html> wrapper. Attributes select the
// styling table:
//
//	<status-badge kind="resident" status="needs-attention"></status-badge>
//	<category-icon category="medicine"></category-icon>
func ReplaceCustomElements(writer io.Writer, reader io.Reader) error {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return errors.Wrap(err, "parse html")
	}

	expand(doc)

	// Render only the body children to recover the fragment.
	body := doc.Find("body")
	if len(body.Nodes) > 0 {
		for c := body.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
			if err = html.Render(writer, c); err != nil {
				return errors.Wrap(err, "render html")
			}
		}
	}
	return nil
}

// ExpandDocument rewrites the custom elements in a complete HTML document,
// doctype and head included.
func ExpandDocument(writer io.Writer, reader io.Reader) error {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return errors.Wrap(err, "parse html")
	}

	expand(doc)

	if err = html.Render(writer, doc.Nodes[0]); err != nil {
		return errors.Wrap(err, "render html")
	}
	return nil
}

func expand(doc *goquery.Document) {
	doc.Find("status-badge").Each(func(_ int, s *goquery.Selection) {
		status := s.AttrOr("status", "")
		style := badgeStyle(s.AttrOr("kind", ""), status)
		s.Nodes[0].Data = "span"
		s.Nodes[0].Attr = nil
		s.SetAttr("class", "badge badge-"+style.Token)
		s.SetText(style.Label)
	})

	doc.Find("category-icon").Each(func(_ int, s *goquery.Selection) {
		style := styling.ReminderCategory(models.ReminderCategory(s.AttrOr("category", "")))
		s.Nodes[0].Data = "span"
		s.Nodes[0].Attr = nil
		s.SetAttr("class", "icon icon-"+style.Token)
		s.SetAttr("aria-hidden", "true")
		s.SetText(style.Icon)
	})
}

func badgeStyle(kind string, status string) styling.Style {
	switch kind {
	case "resident":
		return styling.ResidentStatus(models.ResidentStatus(status))
	case "vital":
		return styling.VitalStatus(models.VitalStatus(status))
	case "reminder":
		return styling.ReminderStatus(models.ReminderStatus(status))
	case "contact":
		return styling.ContactCategory(models.ContactCategory(status))
	default:
		return styling.Neutral()
	}
}
