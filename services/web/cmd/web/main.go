package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/sarthakSixt/rental/pkg/config"
	"github.com/sarthakSixt/rental/services/web/internal/gateway"
	"github.com/sarthakSixt/rental/services/web/internal/session"
	"github.com/sarthakSixt/rental/services/web/internal/ui"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.LoadWeb()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	gw := gateway.New(cfg.APIBaseURL, time.Duration(cfg.RequestTOMsec)*time.Millisecond)
	srv := ui.New(gw, session.NewManager(cfg.SecureCookies))

	log.Printf("web listening on %s (api: %s)", cfg.WebHTTPAddr, cfg.APIBaseURL)
	if err := srv.Router().Run(cfg.WebHTTPAddr); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
