package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer executes the embedded view templates.
type Renderer struct {
	tmpl    *template.Template
	metrics *Metrics
}

func NewRenderer(metrics *Metrics) (*Renderer, error) {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	tmpl, err := template.New("views").Funcs(Funcs()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse view templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, metrics: metrics}, nil
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"icon": func(i Icon) template.HTML { return i.SVG() },
	}
}

// Template exposes the parsed set so gin can render fragments with c.HTML.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

func (r *Renderer) Fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		r.metrics.RenderErrors.WithLabelValues(name).Inc()
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	r.metrics.Renders.WithLabelValues(name).Inc()
	return template.HTML(buf.String()), nil
}

func (r *Renderer) Tabs(v TabSelectorView) (template.HTML, error) {
	return r.Fragment("tabs", v)
}

func (r *Renderer) StatCard(v StatCardView) (template.HTML, error) {
	return r.Fragment("stat_card", v)
}

// Gallery renders nothing for a nil view.
func (r *Renderer) Gallery(v *GalleryView) (template.HTML, error) {
	if v == nil {
		return "", nil
	}
	return r.Fragment("gallery", v)
}
