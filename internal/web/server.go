// internal/web/server.go

// Package web exposes the editor's HTTP API: config CRUD, asset listing and
// upload, raw asset serving, and the PNG export/preview endpoint. Rendering
// itself stays a synchronous call into the engine; the HTTP layer is the
// scheduling boundary the engine leaves to its callers.
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/menukit/menukit/menu"
	"github.com/menukit/menukit/render"
	"github.com/menukit/menukit/storage"
)

type Server struct {
	store    *storage.Store
	renderer *render.Renderer
	token    string
	mux      *http.ServeMux
}

// New wires the API routes. An empty token disables the gate (local use).
func New(store *storage.Store, renderer *render.Renderer, token string) *Server {
	s := &Server{store: store, renderer: renderer, token: token, mux: http.NewServeMux()}

	s.mux.HandleFunc("GET /api/config", s.auth(s.getConfig))
	s.mux.HandleFunc("POST /api/config", s.auth(s.saveConfig))
	s.mux.HandleFunc("GET /api/assets", s.auth(s.getAssets))
	s.mux.HandleFunc("GET /api/fonts", s.auth(s.getFonts))
	s.mux.HandleFunc("POST /api/upload", s.auth(s.upload))
	s.mux.HandleFunc("POST /api/export_image", s.auth(s.exportImage))

	// Raw asset serving stays open so the editor page can preview files.
	dirs := store.Dirs()
	s.mux.Handle("GET /raw_assets/backgrounds/", http.StripPrefix("/raw_assets/backgrounds/", http.FileServer(http.Dir(dirs.Backgrounds))))
	s.mux.Handle("GET /raw_assets/icons/", http.StripPrefix("/raw_assets/icons/", http.FileServer(http.Dir(dirs.Icons))))
	s.mux.Handle("GET /raw_assets/widgets/", http.StripPrefix("/raw_assets/widgets/", http.FileServer(http.Dir(dirs.Widgets))))
	s.mux.Handle("GET /fonts/", http.StripPrefix("/fonts/", http.FileServer(http.Dir(dirs.Fonts))))

	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

// auth gates a handler behind the configured token, accepted as a bearer
// header or a cookie set by the editor page.
func (s *Server) auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.token != "" && !s.tokenOK(r) {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next(w, r)
	}
}

func (s *Server) tokenOK(r *http.Request) bool {
	if h := r.Header.Get("Authorization"); strings.TrimPrefix(h, "Bearer ") == s.token && h != "" {
		return true
	}
	if c, err := r.Cookie("token"); err == nil && c.Value == s.token {
		return true
	}
	return false
}

func (s *Server) getConfig(w http.ResponseWriter, r *http.Request) {
	lib, err := s.store.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, lib)
}

func (s *Server) saveConfig(w http.ResponseWriter, r *http.Request) {
	lib, err := menu.ReadLibrary(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.Save(lib); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getAssets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListAssets())
}

func (s *Server) getFonts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListFonts())
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "bad multipart form")
		return
	}
	kind := r.FormValue("type")
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file")
		return
	}
	defer file.Close()

	filename, err := s.store.SaveAsset(kind, header.Filename, file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "filename": filename})
}

// exportImage renders the posted menu config (the editor's preview payload,
// not the stored one) and streams it back as a PNG attachment.
func (s *Server) exportImage(w http.ResponseWriter, r *http.Request) {
	cfg, err := menu.ReadConfig(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	data, err := s.renderer.RenderPNG(cfg)
	if err != nil {
		log.Printf("ERROR: web export render failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	name := cfg.Name
	if name == "" {
		name = "menu"
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.png"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("WARN: write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
