package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"dirinfo/internal/inspect"
	"dirinfo/internal/model"
)

// EntryRecord is the JSON shape of one inspected entry.
type EntryRecord struct {
	Name string `json:"name"`
	Path string `json:"path"`
	model.Metadata
	Err string `json:"error,omitempty"`
}

// StartServer starts the JSON API on port 8080 and blocks.
func StartServer() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ls", handleLs)
	mux.HandleFunc("/api/info", handleInfo)

	port := "8080"
	fmt.Printf("Starting dirinfo web server at http://localhost:%s\n", port)
	fmt.Printf("Endpoints: /api/ls?path=<dir>  /api/info?path=<entry>\n")

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Printf("Server failed: %v", err)
		return err
	}
	return nil
}

func queryPath(r *http.Request) string {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "."
	}
	return path
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Printf("Encode failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// handleLs lists a directory: one record per entry, unreadable entries kept
// with their error string instead of metadata.
func handleLs(w http.ResponseWriter, r *http.Request) {
	dir := queryPath(r)

	entries, err := os.ReadDir(dir)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	records := make([]EntryRecord, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}
		path := filepath.Join(dir, name)
		rec := EntryRecord{Name: name, Path: path}
		if meta, err := inspect.Resolve(path); err != nil {
			rec.Err = err.Error()
		} else {
			rec.Metadata = meta
		}
		records = append(records, rec)
	}
	writeJSON(w, records)
}

// handleInfo returns the record for a single entry.
func handleInfo(w http.ResponseWriter, r *http.Request) {
	path := queryPath(r)

	meta, err := inspect.Resolve(path)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, EntryRecord{Name: filepath.Base(path), Path: path, Metadata: meta})
}
