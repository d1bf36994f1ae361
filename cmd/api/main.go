package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/splitpot/backend/docs"
	"github.com/splitpot/backend/internal/activity"
	"github.com/splitpot/backend/internal/balance"
	"github.com/splitpot/backend/internal/config"
	"github.com/splitpot/backend/internal/database"
	"github.com/splitpot/backend/internal/expense"
	expensesplit "github.com/splitpot/backend/internal/expense/split"
	"github.com/splitpot/backend/internal/group"
	mw "github.com/splitpot/backend/pkg/middleware"
)

// @title Splitpot API
// @version 1.0
// @description Shared expense tracking for anonymous groups
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Connected to database successfully")

	// Split Strategy Factory (Factory Pattern)
	splitFactory := expensesplit.NewFactory()

	// Activity feature (recorded into by the others)
	activityRepo := activity.NewRepository(db)
	activityService := activity.NewService(activityRepo)
	activityHandler := activity.NewHandler(activityService)

	// Group feature
	groupRepo := group.NewRepository(db)

	// Expense feature (with split factory injected)
	expenseRepo := expense.NewRepository(db)

	groupService := group.NewService(groupRepo, expenseRepo, activityService)
	groupHandler := group.NewHandler(groupService)

	expenseService := expense.NewService(expenseRepo, groupRepo, splitFactory, activityService)
	expenseHandler := expense.NewHandler(expenseService)

	// Balance feature (read-only, derived from expenses)
	balanceService := balance.NewService(groupRepo, expenseRepo)
	balanceHandler := balance.NewHandler(balanceService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", mw.ActiveParticipantHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))
	r.Use(mw.ActiveParticipant)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/groups", groupHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/balances", balanceHandler.Routes())
		r.Mount("/activities", activityHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
