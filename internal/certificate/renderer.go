// Package certificate renders module certificates and the course diploma.
// Rendering is a consumer of engine events, never called by the engine.
package certificate

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"
)

// Document is an opaque rendered certificate.
type Document struct {
	Name string
	Body string
}

// Renderer turns an achievement into a document. PDF or image renderers
// can replace the text renderer behind this interface.
type Renderer interface {
	Render(learnerName, achievement string, issuedAt time.Time) (Document, error)
}

var (
	gold = lipgloss.Color("#EAB308")

	plaque = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(gold).
		Padding(1, 4).
		Align(lipgloss.Center)

	heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(gold)
)

// TextRenderer renders a terminal-printable certificate plaque.
type TextRenderer struct{}

// Render produces the plaque for one achievement.
func (TextRenderer) Render(learnerName, achievement string, issuedAt time.Time) (Document, error) {
	body := fmt.Sprintf("%s\n\nawarded to\n\n%s\n\n%s",
		heading.Render(achievement),
		learnerName,
		issuedAt.Format("2 January 2006"),
	)
	return Document{
		Name: achievement,
		Body: plaque.Render(body),
	}, nil
}
