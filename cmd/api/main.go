// Command api runs the applicant intake HTTP server.
package main

import (
	"errors"
	"log"
	"net/http"

	"AnonHire-backend/internal/server"
)

// @title AnonHire API
// @description Anonymous job-application intake service
// @BasePath /api
func main() {
	srv := server.NewServer()

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server stopped unexpectedly: %s", err)
	}
}
