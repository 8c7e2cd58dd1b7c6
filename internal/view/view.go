package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"letterboxd/internal/data/entity"
	"letterboxd/pkg/utils"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutFile   = "templates/layout.html"
	partialsFile = "templates/partials.html"
)

// Page is the data every template receives.
type Page struct {
	AppName string
	Title   string
	Active  string
	User    string
	Data    any
}

// Renderer executes the page templates. Each page is parsed together with
// the shared layout and partials.
type Renderer struct {
	appName string
	pages   map[string]*template.Template
	log     *zap.Logger
}

func New(appName string, log *zap.Logger) (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, layoutFile, partialsFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template)
	for _, file := range files {
		if file == layoutFile || file == partialsFile {
			continue
		}
		tpl, err := template.Must(base.Clone()).ParseFS(templateFS, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		pages[strings.TrimSuffix(path.Base(file), ".html")] = tpl
	}

	return &Renderer{
		appName: appName,
		pages:   pages,
		log:     log.With(zap.String("component", "view")),
	}, nil
}

// Render writes page with status. Output is buffered so a template error
// still produces a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, name string, page Page) {
	tpl, ok := r.pages[name]
	if !ok {
		r.log.Error("Unknown template", zap.String("template", name))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page.AppName = r.appName
	if user, ok := utils.GetUserNameFromContext(req.Context()); ok {
		page.User = user
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout.html", page); err != nil {
		r.log.Error("Failed to render template",
			zap.String("template", name),
			zap.String("request_id", utils.GetRequestIDFromContext(req.Context())),
			zap.Error(err),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

var funcs = template.FuncMap{
	"poster": func(img *entity.Image) string {
		return img.Src("w=400&auto=format,compress")
	},
	"backdrop": func(img *entity.Image) string {
		return img.Src("w=1600&auto=format,compress")
	},
	"stars":     Stars,
	"plural":    Plural,
	"join":      strings.Join,
	"stripHTML": utils.StripHTML,
	"truncate":  utils.Truncate,
	"contains":  contains,
	"embed":     utils.YouTubeEmbedURL,
	"tags":      func(l entity.MovieList) []string { return l.TagList() },
	"cast":      func(m entity.Movie) []string { return m.CastList() },
}

// Stars renders a 0-10 rating as five stars with halves.
func Stars(rating int) string {
	if rating <= 0 {
		return ""
	}
	if rating > 10 {
		rating = 10
	}
	s := strings.Repeat("★", rating/2)
	if rating%2 == 1 {
		s += "½"
	}
	return s
}

// Plural formats n with singular or plural noun.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
