// Package view renders the HTML pages. Handlers pass one of the page types
// below; templates never see models directly.
package view

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	FeedPageName     = "feed.html"
	LoginPageName    = "login.html"
	RegisterPageName = "register.html"
)

// Renderer holds one parsed template set per page, each on top of the
// shared layout. It implements gin's render.HTMLRender.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	pages := make(map[string]*template.Template)
	for _, page := range []string{FeedPageName, LoginPageName, RegisterPageName} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		pages[page] = t
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Instance(name string, data any) render.Render {
	return render.HTML{
		Template: r.pages[name],
		Name:     "layout",
		Data:     data,
	}
}
