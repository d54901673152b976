// Package web holds the embedded templates and static assets.
package web

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = []string{
	"index.html",
	"create.html",
	"update.html",
	"view.html",
	"login.html",
	"register.html",
	"error.html",
}

type TemplateRegistry struct {
	templates map[string]*template.Template
}

func NewTemplateRegistry() (*TemplateRegistry, error) {
	t := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		tmpl, err := template.ParseFS(templatesFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, err
		}
		t[name] = tmpl
	}
	return &TemplateRegistry{templates: t}, nil
}

func (t *TemplateRegistry) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.templates[name]
	if !ok {
		err := errors.New("template not found: " + name)
		return err
	}

	return tmpl.ExecuteTemplate(w, "base.html", data)
}

func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var ugcPolicy = bluemonday.UGCPolicy()

func mdToHTML(md string) []byte {
	// create markdown parser with extensions
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(md))

	// create HTML renderer with extensions
	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	return markdown.Render(doc, renderer)
}

// SafeMarkdown renders a post body as markdown and strips anything unsafe from
// the resulting HTML.
func SafeMarkdown(content string) template.HTML {
	return template.HTML(ugcPolicy.SanitizeBytes(mdToHTML(content)))
}
