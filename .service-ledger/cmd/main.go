package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nikolaev/service-ledger/internal/api/attest"
)

func main() {
	port := os.Getenv("LEDGER_PORT")
	if port == "" {
		port = "9090"
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Method(http.MethodPost, "/attestations", attest.New())

	log.Printf("ledger stub listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
