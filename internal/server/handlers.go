package server

import (
	"bytes"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mernsite/internal/blog"
	"mernsite/internal/contact"
	"mernsite/internal/site"
)

const maxFormBytes = 64 << 10

// render buffers the page so a template error can still become a 500.
func (s *Server) render(w http.ResponseWriter, st *site.Site, status int, data site.PageData) {
	var buf bytes.Buffer
	if err := st.Render(&buf, data); err != nil {
		log.Printf("Error rendering %s: %v", data.Template, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	st := s.Site()
	s.render(w, st, http.StatusOK, st.HomePage())
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	st := s.Site()
	s.render(w, st, http.StatusOK, st.AboutPage())
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	st := s.Site()
	s.render(w, st, http.StatusOK, st.ServicesPage())
}

func (s *Server) handleService(w http.ResponseWriter, r *http.Request) {
	st := s.Site()
	data, ok := st.ServicePage(chi.URLParam(r, "slug"))
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	s.render(w, st, http.StatusOK, data)
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	st := s.Site()
	s.render(w, st, http.StatusOK, st.ProjectsPage())
}

func (s *Server) handleBlogList(w http.ResponseWriter, r *http.Request) {
	s.serveBlogList(w, r, blog.ParseViewState(r.URL.Query()))
}

// handleBlogPage serves /blog/page/{n}. Page 1 redirects to /blog.
func (s *Server) handleBlogPage(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil || n < 1 {
		s.handleNotFound(w, r)
		return
	}
	state := blog.ParseViewState(r.URL.Query())
	state.CurrentPage = n
	if n == 1 {
		http.Redirect(w, r, state.ListURL(), http.StatusMovedPermanently)
		return
	}
	s.serveBlogList(w, r, state)
}

// serveBlogList redirects to the first page when the requested page does not
// exist for the current filters.
func (s *Server) serveBlogList(w http.ResponseWriter, r *http.Request, state blog.ViewState) {
	st := s.Site()
	data, got := st.BlogListPage(state)
	if got.CurrentPage != state.CurrentPage {
		http.Redirect(w, r, got.ListURL(), http.StatusFound)
		return
	}
	s.render(w, st, http.StatusOK, data)
}

func (s *Server) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	st := s.Site()
	data, ok := st.BlogPostPage(blog.ParseViewState(r.URL.Query()), chi.URLParam(r, "slug"))
	status := http.StatusOK
	if !ok {
		status = http.StatusNotFound
	}
	s.render(w, st, status, data)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	st := s.Site()
	s.render(w, st, http.StatusOK, st.ContactPage(contact.Form{}, nil, ""))
}

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	st := s.Site()
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := contact.FormFromValues(r.PostForm)
	sub, errs, err := contact.Accept(r.Context(), s.sink, form, s.now())
	if err != nil {
		log.Printf("Error accepting contact form: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if errs != nil {
		s.render(w, st, http.StatusUnprocessableEntity, st.ContactPage(form, errs, ""))
		return
	}
	s.render(w, st, http.StatusOK, st.ContactPage(contact.Form{}, nil, sub.Reference()))
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	fileServer := http.FileServer(http.FS(s.Site().Static))
	http.StripPrefix("/static/", fileServer).ServeHTTP(w, r)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	st := s.Site()
	s.render(w, st, http.StatusNotFound, st.NotFoundPage(r.URL.Path))
}
