package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Fulturate/bot/commontypes"
	"github.com/Fulturate/bot/modules"
	"github.com/Fulturate/bot/modules/currency"
	"github.com/Fulturate/bot/settings"
)

const (
	httpPort       = ":8080"
	requestTimeout = 20 * time.Second
	warmUpTimeout  = time.Minute
)

var (
	registeredModules []modules.Module
	chatSettings      settings.Store
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using environment as-is: %v", err)
	}

	cfg := currency.LoadConfig()
	converter, err := currency.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize currency converter: %v", err)
	}

	// Pre-fill the rate cache so the first message does not pay the
	// upstream latency. Failure is tolerable: the cache refills on demand.
	warmCtx, cancel := context.WithTimeout(context.Background(), warmUpTimeout)
	if err := converter.WarmUp(warmCtx); err != nil {
		log.Printf("Initial rates fetch failed, will retry on first request: %v", err)
	}
	cancel()

	registeredModules = append(registeredModules, converter)
	chatSettings = settings.NewMemoryStore()

	mux := http.NewServeMux()
	mux.HandleFunc("/", handleMessage)

	server := &http.Server{
		Addr:         httpPort,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Message receiver listening on %s", httpPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v", httpPort, err)
	}
}

func handleMessage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	text := r.URL.Query().Get("text")
	chatID := r.URL.Query().Get("chat_id")

	targets := chatSettings.Codes(chatID)
	if override := r.URL.Query().Get("targets"); override != "" {
		targets = targets[:0]
		for _, code := range strings.Split(override, ",") {
			if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
				targets = append(targets, code)
			}
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var response commontypes.QueryResponse
	for _, mod := range registeredModules {
		results, err := mod.ProcessMessage(ctx, text, targets)
		if err != nil {
			log.Printf("Module %q failed for chat %s: %v", mod.Name(), chatID, err)
			continue
		}
		response.Results = append(response.Results, results...)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}
