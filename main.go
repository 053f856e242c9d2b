package main

import (
	"database/sql"
	"log"
	"os"
	"strings"
	"time"

	"github.com/knixan/b-movies/handlers"
	"github.com/knixan/b-movies/initializers"
	"github.com/knixan/b-movies/middleware"
	"github.com/knixan/b-movies/pkg/notify"
	"github.com/knixan/b-movies/repository"
	"github.com/knixan/b-movies/websocket"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if len(jwtSecret) < 32 {
		log.Fatal("JWT_SECRET must be set and at least 32 characters")
	}

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("postgres", dbURL)
		if err == nil {
			err = db.Ping()
			if err == nil {
				break
			}
		}
		log.Printf("DB connection failed: %v, retrying in 2s...", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatal("Could not connect to database:", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal("Migration driver error:", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		log.Fatal("Migration init error:", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("Migration failed:", err)
	}

	if err := initializers.InitDefaults(db); err != nil {
		log.Fatal("Failed to initialize default data:", err)
	}

	if err := initializers.InitMinio(); err != nil {
		log.Fatal("Failed to initialize Minio:", err)
	}

	moviesRepo := repository.NewMoviesRepository(db)
	peopleRepo := repository.NewPeopleRepository(db)
	genresRepo := repository.NewGenresRepository(db)
	ordersRepo := repository.NewOrdersRepository(db)
	usersRepo := repository.NewUsersRepository(db)
	postersRepo := repository.NewPostersRepository(db)

	// Set Gin to release mode in production
	if os.Getenv("GIN_MODE") == "release" || strings.ToLower(os.Getenv("APP_ENV")) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Structured request ID and JSON access logs
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	// Panic recovery
	r.Use(gin.Recovery())

	// Configure trusted proxies for correct client IP handling in production
	trustedProxies := os.Getenv("TRUSTED_PROXIES")
	if trustedProxies != "" {
		parts := strings.Split(trustedProxies, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if err := r.SetTrustedProxies(parts); err != nil {
			log.Fatalf("Invalid TRUSTED_PROXIES: %v", err)
		}
	} else {
		// Default to loopback only; override via TRUSTED_PROXIES in production
		_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})
	}

	r.Use(middleware.CORSMiddleware())
	// Apply rate limiting globally after CORS but before routes
	r.Use(middleware.RateLimitMiddleware())

	// WebSocket hub feeding the admin dashboard with order events
	hub := websocket.NewHub()
	notifier := &notify.WSNotifier{Hub: hub}

	authHandler := handlers.NewAuthHandler(usersRepo, jwtSecret)
	moviesHandler := handlers.NewMoviesHandler(moviesRepo)
	peopleHandler := handlers.NewPeopleHandler(peopleRepo)
	genresHandler := handlers.NewGenresHandler(genresRepo)
	ordersHandler := handlers.NewOrdersHandler(ordersRepo).WithNotifier(notifier)
	postersHandler := handlers.NewPostersHandler(postersRepo, moviesRepo)

	// Public endpoints
	r.GET("/health", handlers.HealthCheck)

	authPublic := r.Group("/", middleware.RateLimitAuthMiddleware())
	authPublic.POST("/register", authHandler.Register)
	authPublic.POST("/login", authHandler.Login)

	// Public storefront: catalog browsing and checkout
	r.GET("/movies", moviesHandler.GetMovies)
	r.GET("/movies/:id", moviesHandler.GetMovie)
	r.GET("/genres", genresHandler.GetGenres)
	r.GET("/people", peopleHandler.GetPeople)
	r.GET("/people/:id", peopleHandler.GetPerson)
	r.GET("/posters/:id", postersHandler.GetPoster)
	r.POST("/orders", ordersHandler.CreateOrder)

	// Admin endpoints: store management
	admin := r.Group("/", handlers.AuthMiddleware(jwtSecret), handlers.AdminOnly())
	{
		admin.GET("/ws", websocket.ServeWS(hub))

		admin.POST("/movies", moviesHandler.CreateMovie)
		admin.PATCH("/movies/:id", moviesHandler.UpdateMovie)
		admin.PATCH("/movies/:id/delete", moviesHandler.DeleteMovie)
		admin.PATCH("/movies/:id/restore", moviesHandler.RestoreMovie)
		admin.PUT("/movies/:id/credits", moviesHandler.SetCredit)
		admin.DELETE("/movies/:id/credits/:personId", moviesHandler.RemoveCredit)

		admin.POST("/people", peopleHandler.CreatePerson)
		admin.PATCH("/people/:id", peopleHandler.UpdatePerson)
		admin.PATCH("/people/:id/delete", peopleHandler.DeletePerson)
		admin.PATCH("/people/:id/restore", peopleHandler.RestorePerson)

		admin.POST("/genres", genresHandler.CreateGenre)

		admin.GET("/orders", ordersHandler.GetOrders)
		admin.GET("/orders/:id", ordersHandler.GetOrder)
		admin.PATCH("/orders/:id", ordersHandler.UpdateOrderStatus)
		admin.PATCH("/orders/:id/delete", ordersHandler.DeleteOrder)
		admin.PATCH("/orders/:id/restore", ordersHandler.RestoreOrder)

		admin.POST("/upload", postersHandler.UploadPoster)
	}

	r.Run(":8080")
}
