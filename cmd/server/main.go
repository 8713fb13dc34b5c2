package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/cache"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/config"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/repository"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/service"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/transport/rest"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/transport/ws"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Repositories
	questionnaireRepo := repository.NewQuestionnaireRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	activityRepo := repository.NewActivityLogRepo(db)

	// Unique index backing one-response-per-participant
	if err := responseRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create response indexes:", err)
	}

	// Caches
	statsCache := cache.NewStatisticsCache(rdb)

	// Services
	activitySvc := service.NewActivityService(activityRepo)
	authSvc := service.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret, activitySvc)
	questionnaireSvc := service.NewQuestionnaireService(questionnaireRepo, activitySvc)
	responseSvc := service.NewResponseService(responseRepo, questionnaireRepo, statsCache, activitySvc)
	statsSvc := service.NewStatisticsService(responseRepo, questionnaireRepo, statsCache, activitySvc)

	// Inject notifier (wsHub implements service.Notifier)
	questionnaireSvc.SetNotifier(wsHub)
	responseSvc.SetNotifier(wsHub)

	container := &rest.Container{
		AuthService:          authSvc,
		QuestionnaireService: questionnaireSvc,
		ResponseService:      responseSvc,
		StatisticsService:    statsSvc,
		ActivityService:      activitySvc,
		WSHub:                wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
