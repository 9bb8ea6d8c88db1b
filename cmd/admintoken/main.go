// admintoken выпускает JWT для админских маршрутов по секрету из конфигурации сервиса.
//
//	CONFIG_PATH=config.toml go run ./cmd/admintoken -subject owner -ttl 12h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/VenueBookingService/internal/api/middleware"
	"github.com/m04kA/VenueBookingService/internal/config"
	"github.com/m04kA/VenueBookingService/pkg/logger"
)

func main() {
	subject := flag.String("subject", "", "administrator identifier written to the sub claim")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	if *subject == "" || *ttl <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	configPath := "config.toml"
	if p, ok := os.LookupEnv("CONFIG_PATH"); ok && p != "" {
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	auth := middleware.NewAdminAuth(cfg.Auth.JWTSecret, cfg.Auth.Issuer, logger.Nop())
	token, err := auth.Issue(*subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
