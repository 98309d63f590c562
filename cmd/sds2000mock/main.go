// Command sds2000mock runs the mock SDS2000 SCPI server.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/scope-control/scc/internal/mockscope"
)

func main() {
	log.Println("Starting SDS2000 mock instrument...")

	cfg, err := mockscope.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	srv := mockscope.NewServer(cfg)
	if err := srv.Listen(); err != nil {
		log.Fatalf("Failed to bind listener: %v", err)
	}
	log.Printf("SCPI server listening on %s", srv.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-shutdown:
		log.Printf("Received signal %v, shutting down...", sig)
	case err := <-serveErr:
		if err != nil {
			log.Printf("Server error: %v", err)
		}
	}

	if err := srv.Close(); err != nil {
		log.Printf("Error closing server: %v", err)
	}
	log.Println("SDS2000 mock instrument stopped")
}
