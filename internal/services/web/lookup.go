package web

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/oakleafmed/medterm/internal/platform/branding"
	"github.com/oakleafmed/medterm/internal/services/web/i18n"
	"github.com/oakleafmed/medterm/internal/services/web/platform/flash"
	"github.com/oakleafmed/medterm/internal/services/web/platform/htmx"
	"github.com/oakleafmed/medterm/internal/services/web/routepath"
	"github.com/oakleafmed/medterm/internal/services/web/templates"
)

func (s *Server) handleLookupPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}

	ensureClientID(w, r)
	loc := i18n.Printer()

	var toast *templates.ToastView
	if notice, ok := flash.ReadAndClear(w, r); ok {
		toast = &templates.ToastView{
			Kind:    string(notice.Kind),
			Message: templates.T(loc, notice.Key),
		}
	}

	s.renderPage(w, r, lookupPageView{Toast: toast})
}

func (s *Server) handleLookupSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	term := strings.TrimSpace(r.PostFormValue("term"))

	explanation, err := s.lookups.Lookup(r.Context(), clientID(r), term)
	if err != nil {
		s.renderLookupError(w, r, term, err)
		return
	}

	loc := i18n.Printer()
	result := &templates.ResultView{Term: term, Explanation: explanation}

	if htmx.IsHTMXRequest(r) {
		s.renderFragment(w, r, loc, nil, result)
		return
	}
	s.renderPage(w, r, lookupPageView{Term: term, Result: result})
}

func (s *Server) renderLookupError(w http.ResponseWriter, r *http.Request, term string, err error) {
	notice := noticeForError(err)
	if notice.Kind == flash.KindError {
		log.Printf("lookup %q: %v", term, err)
	}

	if htmx.IsHTMXRequest(r) {
		loc := i18n.Printer()
		toast := &templates.ToastView{
			Kind:    string(notice.Kind),
			Message: templates.T(loc, notice.Key),
		}
		s.renderFragment(w, r, loc, toast, nil)
		return
	}

	flash.Write(w, r, notice)
	http.Redirect(w, r, routepath.Root, http.StatusSeeOther)
}

func noticeForError(err error) flash.Notice {
	switch {
	case errors.Is(err, ErrEmptyTerm):
		return flash.NoticeWarning("lookup.error.empty_term")
	case errors.Is(err, ErrLookupInFlight):
		return flash.NoticeWarning("lookup.error.in_flight")
	default:
		return flash.NoticeError("lookup.error.request_failed")
	}
}

type lookupPageView struct {
	Term   string
	Toast  *templates.ToastView
	Result *templates.ResultView
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, view lookupPageView) {
	loc := i18n.Printer()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := templates.LookupPage(templates.LookupPageParams{
		Loc:      loc,
		Lang:     i18n.Default().String(),
		AppName:  branding.AppName,
		Term:     view.Term,
		Examples: ExampleTerms,
		Toast:    view.Toast,
		Result:   view.Result,
	})
	if err := page.Render(r.Context(), w); err != nil {
		log.Printf("render lookup page: %v", err)
	}
}

func (s *Server) renderFragment(w http.ResponseWriter, r *http.Request, loc templates.Localizer, toast *templates.ToastView, result *templates.ResultView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.LookupOutput(loc, toast, result).Render(r.Context(), w); err != nil {
		log.Printf("render lookup fragment: %v", err)
	}
}
