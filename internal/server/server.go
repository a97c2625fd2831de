package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/spatialeval/scenegen/pkg/defs"
	"github.com/spatialeval/scenegen/pkg/generate"
	"github.com/spatialeval/scenegen/pkg/materials"
	"github.com/spatialeval/scenegen/pkg/spec"
	"github.com/spatialeval/scenegen/pkg/validation"
)

// Server is the local preview server: it regenerates the scene for the
// project on each request so spec edits show up on refresh.
type Server struct {
	projectPath string
	port        int
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	r := mux.NewRouter()

	r.HandleFunc("/api/scene", s.handleScene).Methods(http.MethodGet)
	r.HandleFunc("/api/spec", s.handleSpec).Methods(http.MethodGet)
	r.HandleFunc("/api/validation", s.handleValidation).Methods(http.MethodGet)
	r.HandleFunc("/api/materials", s.handleMaterials).Methods(http.MethodGet)
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("scenegen server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>scenegen</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>scenegen</h1>
<p>Preview renderer not embedded. Fetch <code>/api/scene</code> for the generated scene JSON.</p>
</div>
</body></html>`)
}

func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	genSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sc, report, err := generate.Scene(genSpec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, map[string]any{
		"scene":      sc,
		"validation": report,
	})
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	genSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, genSpec)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	genSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, validation.ValidateSchema(genSpec))
}

func (s *Server) handleMaterials(w http.ResponseWriter, _ *http.Request) {
	catalog := map[string]any{}
	for _, category := range materials.CategoryNames() {
		catalog[category] = materials.In(category)
	}
	writeJSON(w, map[string]any{
		"categories": catalog,
		"shapes":     defs.DefaultRegistry().Types(),
	})
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
