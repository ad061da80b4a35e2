// Command remap-server provides a REST API for coverage analysis.
//
// Usage:
//
//	remap-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/seqremap/remap-go/api/handlers"
	"github.com/seqremap/remap-go/api/middleware"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/coverage", func(r chi.Router) {
			r.Post("/merge", handlers.MergeHandler)
			r.Post("/lengths", handlers.LengthsHandler)
		})

		r.Route("/gaps", func(r chi.Router) {
			r.Post("/extract", handlers.GapsHandler)
		})

		r.Route("/relocate", func(r chi.Router) {
			r.Post("/record", handlers.RelocateHandler)
		})

		r.Post("/analyze", handlers.AnalyzeHandler)
	})

	// Home page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>remap API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>remap API</h1>
    <p>A REST API for alignment coverage analysis.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/coverage/merge</code>
        <p>Merge per-sequence alignment intervals into covered regions.</p>
        <pre>{"sequences": {"contig_1": [{"start": 10, "stop": 20}, {"start": 15, "stop": 30}]}}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/coverage/lengths</code>
        <p>Sum covered bases per sequence and in total.</p>
        <pre>{"regions": {"contig_1": [{"start": 10, "stop": 30}]}}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/gaps/extract</code>
        <p>Extract poorly mapped regions with context padding.</p>
        <pre>{"regions": {"contig_1": [{"start": 100, "stop": 350}]}, "lengths": {"contig_1": 1000}, "sequence_context": 50, "minimum_size": 100}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/relocate/record</code>
        <p>Rewrite a fragment-relative alignment onto its parent sequence.</p>
        <pre>{"subject": "contig_1_segment_start_100_stop_200", "start": 10, "stop": 50}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/analyze</code>
        <p>Run the full coverage pipeline on tokenized records.</p>
        <pre>{"records": [...], "lengths": {...}, "references": ["chr1"]}</pre>
    </div>
</body>
</html>`))
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("remap API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
