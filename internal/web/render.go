package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"multivendor-shop/internal/logger"
	"multivendor-shop/internal/session"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:embed templates
var templateFS embed.FS

const layoutFile = "templates/layout.html"

type views struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
}

// loadViews parses each page together with the shared layout.
func loadViews() (*views, error) {
	files, err := fs.Glob(templateFS, "templates/*/*.html")
	if err != nil {
		return nil, err
	}

	v := &views{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		name := path.Join(path.Base(path.Dir(f)), path.Base(f))
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

// page is what every template receives.
type page struct {
	Session *session.Session
	Flashes []string
	Data    any
}

// render pops pending flashes into the page, saves the session when that
// changed it, and writes the page with status.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	t, ok := h.views.pages[name]
	if !ok {
		h.serverError(w, r, fmt.Errorf("unknown template %q", name))
		return
	}

	s := session.FromContext(r.Context())
	p := page{Session: s, Data: data}
	if s != nil {
		p.Flashes = s.PopFlashes()
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", p); err != nil {
		h.serverError(w, r, fmt.Errorf("render %s: %w", name, err))
		return
	}

	if len(p.Flashes) > 0 {
		if err := h.Sessions.Save(r.Context(), w, s); err != nil {
			h.serverError(w, r, err)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// redirect saves the session first so flashes and cart changes survive.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, s *session.Session, to string) {
	if err := h.Sessions.Save(r.Context(), w, s); err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromCtx(r.Context()).Error("request failed",
		zap.String("layer", "web"),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
