package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskboard/internal/auth"
	"taskboard/internal/form"
	"taskboard/internal/model"
)

// Page templates.
const (
	LoginPage    = "login.html"
	RegisterPage = "register.html"
	TasksPage    = "tasks.html"
	ErrorPage    = "error.html"
)

const layoutFile = "layout.html"

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(form.DateLayout)
	},
	"timestamp": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04")
	},
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

// Renderer implements echo.Renderer over the embedded page templates. Each
// page is parsed together with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every embedded page.
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, file := range files {
		name := strings.TrimPrefix(file, "templates/")
		if name == layoutFile {
			continue
		}
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/"+layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// TaskRow is a task plus whether the viewer may complete or delete it.
type TaskRow struct {
	model.Task
	CanModify bool
}

// Page is the data every template receives.
type Page struct {
	Title     string
	Principal auth.Principal
	Flashes   []auth.Flash
	CSRFToken string

	// Error is a page-level message shown above the form.
	Error  string
	Form   interface{}
	Errors form.Errors

	Open       []TaskRow
	Closed     []TaskRow
	Priorities []model.Priority

	Status  int
	Message string
}

// NewPage builds page data for the current request. Pending flashes are
// consumed, so each is shown on exactly one rendered page.
func NewPage(c echo.Context, title string) *Page {
	p := &Page{
		Title:      title,
		Principal:  auth.PrincipalFrom(c),
		Flashes:    auth.SessionFrom(c).PopFlashes(),
		Priorities: model.Priorities,
		Errors:     form.Errors{},
	}
	if token, ok := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string); ok {
		p.CSRFToken = token
	}
	return p
}

// SetTasks fills the open and closed lists, marking the rows the page's
// principal may modify.
func (p *Page) SetTasks(open, closed []model.Task) {
	p.Open = rows(open, p.Principal)
	p.Closed = rows(closed, p.Principal)
}

func rows(tasks []model.Task, viewer auth.Principal) []TaskRow {
	out := make([]TaskRow, 0, len(tasks))
	for i := range tasks {
		out = append(out, TaskRow{Task: tasks[i], CanModify: viewer.CanModify(&tasks[i])})
	}
	return out
}
