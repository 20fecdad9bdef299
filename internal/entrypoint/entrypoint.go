package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/noteharvester/noteharvester/internal/applebooks"
	"github.com/noteharvester/noteharvester/internal/config"
	http_controllers "github.com/noteharvester/noteharvester/internal/http"
)

// Run starts the HTTP server and blocks until an interrupt signal arrives,
// then shuts down gracefully within the configured timeout.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting NoteHarvester v%s", version)

	extractor, err := applebooks.NewExtractor(cfg.Stores.BookStorePath, cfg.Stores.AnnotationStorePath)
	if err != nil {
		log.Fatalf("Failed to resolve Apple Books stores: %v", err)
	}
	log.Printf("Book store: %s", extractor.BookStorePath())
	log.Printf("Annotation store: %s", extractor.AnnotationStorePath())

	if err := applebooks.VerifyStore(applebooks.StoreBooks, extractor.BookStorePath()); err != nil {
		log.Printf("WARNING: %v", err)
	}
	if err := applebooks.VerifyStore(applebooks.StoreAnnotations, extractor.AnnotationStorePath()); err != nil {
		log.Printf("WARNING: %v", err)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		BookStorePath:       extractor.BookStorePath(),
		AnnotationStorePath: extractor.AnnotationStorePath(),
	})

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}
