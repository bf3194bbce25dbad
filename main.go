package main

import (
	"strings"
	"time"

	"quest-read-service/internal/cache"
	"quest-read-service/internal/config"
	"quest-read-service/internal/db"
	"quest-read-service/internal/event"
	"quest-read-service/internal/handlers"
	"quest-read-service/internal/logger"
	"quest-read-service/internal/metrics"
	"quest-read-service/internal/repository"
	"quest-read-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	// .env is optional; system env is used either way.
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New("quest-read-service", cfg.LogLevel)

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoURI)
	defer db.Disconnect()

	// RabbitMQ lifecycle publisher, optional.
	var publisher *event.Publisher
	if cfg.RabbitURL != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Info("RabbitMQ not configured, lifecycle events will not be published")
	}

	database := db.Client.Database(cfg.MongoDatabase)
	sessionRepo := repository.NewSessionRepository(database)
	roundRepo := repository.NewRoundRepository(database)
	eventRepo := repository.NewEventRepository(database)

	sessionService := service.NewSessionService(sessionRepo, roundRepo, eventRepo)
	eventService := service.NewEventService(sessionRepo, roundRepo, eventRepo)

	// Redis round cache, optional.
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		sessionService.WithRoundCache(cache.NewRoundCache(redisClient, 24*time.Hour))
		log.WithField("addr", cfg.RedisAddr).Info("Round cache enabled")
	}

	sessionHandler := handlers.NewSessionHandler(sessionService)
	eventHandler := handlers.NewEventHandler(eventService)

	m := metrics.New("api")

	r := gin.Default()
	r.Use(m.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", sessionHandler.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/session/start", func(c *gin.Context) {
			sessionHandler.StartSession(c)
			if publisher != nil {
				publisher.Publish(event.SessionStarted, gin.H{
					"status":    c.Writer.Status(),
					"timestamp": time.Now(),
				})
			}
		})

		api.GET("/round/:id", func(c *gin.Context) {
			sessionHandler.GetRound(c)
			if publisher != nil {
				publisher.Publish(event.RoundFetched, gin.H{
					"round_id":  c.Param("id"),
					"status":    c.Writer.Status(),
					"timestamp": time.Now(),
				})
			}
		})

		api.POST("/event", func(c *gin.Context) {
			eventHandler.LogEvent(c)
			if publisher != nil {
				publisher.Publish(event.EventLogged, gin.H{
					"status":    c.Writer.Status(),
					"timestamp": time.Now(),
				})
			}
		})

		api.POST("/session/:id/finish", func(c *gin.Context) {
			sessionHandler.FinishSession(c)
			if publisher != nil {
				publisher.Publish(event.SessionFinished, gin.H{
					"session_id": c.Param("id"),
					"status":     c.Writer.Status(),
					"timestamp":  time.Now(),
				})
			}
		})
	}

	log.WithField("port", cfg.ServerPort).Info("Starting server")
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
