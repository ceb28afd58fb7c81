// Package dispatch routes intents to structured lookups or the fallback resolver chain.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"campusfaq/internal/config"
	"campusfaq/internal/db"
	"campusfaq/internal/faq"
	"campusfaq/internal/keywords"
	"campusfaq/internal/models"
	"campusfaq/internal/validation"
)

// StudentStore looks up structured student records.
type StudentStore interface {
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
}

// Fallback is one link of the fallback chain.
type Fallback struct {
	Name    string // recorded as the response source
	Resolve func(ctx context.Context, query string) (string, bool)
}

// FAQFallback answers from the best matching FAQ entry.
func FAQFallback(r *faq.Resolver) Fallback {
	return Fallback{
		Name: models.ResponseFAQ,
		Resolve: func(ctx context.Context, query string) (string, bool) {
			m, ok := r.FindBest(ctx, query)
			if !ok {
				return "", false
			}
			return m.Entry.Answer, true
		},
	}
}

// KeywordFallback answers from the keyword feed.
func KeywordFallback(r *keywords.Resolver) Fallback {
	return Fallback{
		Name: models.ResponseKeyword,
		Resolve: func(ctx context.Context, query string) (string, bool) {
			m, ok := r.Find(ctx, query)
			if !ok {
				return "", false
			}
			return m.Answer, true
		},
	}
}

type structuredHandler func(ctx context.Context, req models.IntentRequest) models.IntentResponse

// Dispatcher maps each request to exactly one response. It keeps no state between requests.
type Dispatcher struct {
	students  StudentStore
	fallbacks []Fallback
	handlers  map[string]structuredHandler
	tmpl      *template.Template
}

var templateFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"date":  func(t time.Time) string { return t.Format("2 Jan 2006") },
}

// New creates a dispatcher. Fallbacks are tried in order; cfg supplies intent
// names and response templates.
func New(students StudentStore, cfg *config.YAMLConfig, fallbacks ...Fallback) (*Dispatcher, error) {
	if cfg == nil {
		cfg = config.DefaultYAMLConfig()
	}

	tmpl := template.New("responses").Funcs(templateFuncs)
	for name, src := range map[string]string{
		"finance":            cfg.Responses.Finance,
		"dashboard":          cfg.Responses.Dashboard,
		"attendance":         cfg.Responses.Attendance,
		"missing_student_id": cfg.Responses.MissingStudentID,
		"student_not_found":  cfg.Responses.StudentNotFound,
		"unavailable":        cfg.Responses.Unavailable,
		"unknown":            cfg.Responses.Unknown,
	} {
		if _, err := tmpl.New(name).Parse(src); err != nil {
			return nil, fmt.Errorf("failed to parse %s response template: %w", name, err)
		}
	}

	d := &Dispatcher{
		students:  students,
		fallbacks: fallbacks,
		tmpl:      tmpl,
	}
	d.handlers = map[string]structuredHandler{
		cfg.Intents.Finance:    d.studentLookup("finance"),
		cfg.Intents.Dashboard:  d.studentLookup("dashboard"),
		cfg.Intents.Attendance: d.studentLookup("attendance"),
	}
	return d, nil
}

// IsStructured reports whether intent is answered by a structured handler.
func (d *Dispatcher) IsStructured(intent string) bool {
	_, ok := d.handlers[intent]
	return ok
}

// Dispatch produces the single response for req.
func (d *Dispatcher) Dispatch(ctx context.Context, req models.IntentRequest) models.IntentResponse {
	if h, ok := d.handlers[req.IntentName]; ok {
		return h(ctx, req)
	}
	return d.fallback(ctx, req)
}

func (d *Dispatcher) fallback(ctx context.Context, req models.IntentRequest) models.IntentResponse {
	query := req.QueryText
	if strings.TrimSpace(query) == "" {
		query = req.Param("query", "text", "question")
	}
	query = validation.NormalizeQuery(query)

	if query != "" {
		for _, f := range d.fallbacks {
			if text, ok := f.Resolve(ctx, query); ok {
				return models.IntentResponse{ResponseText: text, Source: f.Name}
			}
		}
	}
	return d.respond("unknown", nil, models.ResponseUnknown)
}

func (d *Dispatcher) studentLookup(templateName string) structuredHandler {
	return func(ctx context.Context, req models.IntentRequest) models.IntentResponse {
		id := validation.NormalizeStudentID(req.Param("studentId", "student_id", "id"))
		if id == "" {
			return d.respond("missing_student_id", nil, models.ResponseNotFound)
		}
		if !validation.ValidateStudentID(id) {
			return d.respond("student_not_found", id, models.ResponseNotFound)
		}

		student, err := d.students.GetStudentByID(ctx, id)
		if err != nil {
			if errors.Is(err, db.ErrStudentNotFound) {
				return d.respond("student_not_found", id, models.ResponseNotFound)
			}
			slog.Error("student lookup failed", "intent", req.IntentName, "student_id", id, "error", err)
			return d.respond("unavailable", nil, models.ResponseError)
		}

		return d.respond(templateName, student, models.ResponseStructured)
	}
}

// respond renders a response template. Rendering failures fall back to the unavailable message.
func (d *Dispatcher) respond(name string, data any, source string) models.IntentResponse {
	var b strings.Builder
	if err := d.tmpl.ExecuteTemplate(&b, name, data); err != nil {
		slog.Error("failed to render response", "template", name, "error", err)
		b.Reset()
		if name == "unavailable" || d.tmpl.ExecuteTemplate(&b, "unavailable", nil) != nil {
			return models.IntentResponse{ResponseText: "Sorry, something went wrong.", Source: models.ResponseError}
		}
		source = models.ResponseError
	}
	return models.IntentResponse{ResponseText: b.String(), Source: source}
}
