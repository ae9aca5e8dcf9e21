package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"

	apiacademy "adm_academy/pkg/api/academy"
	apicatalog "adm_academy/pkg/api/catalog"
	apiconfig "adm_academy/pkg/api/config"
	apimentor "adm_academy/pkg/api/mentor"
	apireport "adm_academy/pkg/api/report"
	"adm_academy/pkg/core/agent"
	"adm_academy/pkg/core/llm"
	"adm_academy/pkg/core/mentor"
	"adm_academy/pkg/core/prompt"
	"adm_academy/pkg/core/session"
	"adm_academy/pkg/logger"
)

func main() {
	// Load environment variables
	godotenv.Load()

	log := logger.New(logger.Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("LOG_PRETTY") == "true",
	})

	// Initialize Prompt Library
	// Determine resources path (relative to executable or working directory)
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		// Try from executable directory
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		log.Warn().Err(err).Msg("Failed to load prompt library, falling back to built-in prompts")
	} else {
		log.Info().Int("prompts", prompt.Get().Count()).Msg("Prompt library loaded")
	}

	// Load agent configuration
	agentConfig := loadAgentConfig(log)
	agentMgr := agent.NewManager(agentConfig)
	// A persistent Gemini client avoids per-request dialing; registered as an
	// extra provider when the key is configured.
	if direct, err := llm.NewDirectGemini(context.Background(), ""); err == nil {
		agentMgr.RegisterProvider("gemini-live", direct)
		defer direct.Close()
	} else {
		log.Debug().Err(err).Msg("Persistent Gemini client unavailable")
	}
	log.Info().Str("provider", agentMgr.GetActiveProvider()).Msg("Agent manager initialized")

	// Session store
	dataDir := os.Getenv("ACADEMY_DATA_DIR")
	store, err := session.NewFileStore(dataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize session store")
	}

	// Services and handlers
	mentorSvc := mentor.NewService(agentMgr, log)
	academyHandler := apiacademy.NewHandler(store, log)
	catalogHandler := apicatalog.NewHandler()
	mentorHandler := apimentor.NewHandler(mentorSvc, academyHandler)
	reportHandler := apireport.NewHandler(academyHandler, mentorSvc, log)
	configHandler := apiconfig.NewHandler(agentMgr)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/academy", func(r chi.Router) {
			r.Get("/state", academyHandler.HandleState)
			r.Post("/action", academyHandler.HandleAction)
			r.Post("/gate", academyHandler.HandleGate)
			r.Post("/reset", academyHandler.HandleReset)
			r.Get("/theme", academyHandler.HandleTheme)
			r.Put("/theme", academyHandler.HandleTheme)
		})
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/companies", catalogHandler.HandleCompanies)
			r.Get("/companies/{name}/indicators", catalogHandler.HandleCompanyIndicators)
			r.Get("/companies/{name}/statements", catalogHandler.HandleStatements)
			r.Get("/comparison", catalogHandler.HandleComparison)
			r.Get("/missions", catalogHandler.HandleMissions)
			r.Get("/case", catalogHandler.HandleCase)
			r.Get("/boardroom", catalogHandler.HandleBoardroom)
		})
		r.Route("/mentor", func(r chi.Router) {
			r.Post("/indicator", mentorHandler.HandleIndicator)
			r.Post("/diagnosis", mentorHandler.HandleDiagnosis)
			r.Post("/allocation", mentorHandler.HandleAllocation)
			r.Post("/summary", mentorHandler.HandleSummary)
		})
		r.Get("/report", reportHandler.HandleReport)
		r.Get("/report/html", reportHandler.HandleReportHTML)
		r.Get("/config", configHandler.HandleConfig)
		r.Post("/config/switch", configHandler.HandleSwitch)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // mentor calls can be slow
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Adm Academy API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
}

// loadAgentConfig reads config/models.yaml; a missing or broken file falls
// back to Gemini-only defaults.
func loadAgentConfig(log zerolog.Logger) agent.Config {
	defaults := agent.Config{ActiveProvider: "gemini"}

	data, err := os.ReadFile(filepath.Join("config", "models.yaml"))
	if err != nil {
		log.Warn().Err(err).Msg("No agent config found, using defaults")
		return defaults
	}
	var cfg agent.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warn().Err(err).Msg("Invalid agent config, using defaults")
		return defaults
	}
	if cfg.ActiveProvider == "" {
		cfg.ActiveProvider = "gemini"
	}
	return cfg
}
