package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "github.com/adiwarta/warta/internal/repository/mysql"
	redisRepo "github.com/adiwarta/warta/internal/repository/redis"
	"github.com/adiwarta/warta/internal/rest"
	"github.com/adiwarta/warta/internal/rest/middleware"
	"github.com/adiwarta/warta/internal/usecase/comment"
	"github.com/adiwarta/warta/internal/usecase/like"
	"github.com/adiwarta/warta/internal/usecase/moderation"
	"github.com/adiwarta/warta/internal/usecase/notification"
	"github.com/adiwarta/warta/internal/workers"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	defaultCacheDB     = 0
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Asia/Jakarta")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare repositories
	txManager := mysqlRepo.NewTxManager(db)
	userRepo := mysqlRepo.NewUserRepository(db)
	articleRepo := mysqlRepo.NewArticleRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	articleLikeRepo := mysqlRepo.NewArticleLikeRepository(db)
	commentLikeRepo := mysqlRepo.NewCommentLikeRepository(db)
	notificationRepo := mysqlRepo.NewNotificationRepository(db)
	forbiddenTermRepo := mysqlRepo.NewForbiddenTermRepository(db)
	siteConfig := mysqlRepo.NewSiteConfigRepository(db)
	auditRepo := mysqlRepo.NewAuditLogRepository(db)
	rateLimiter := redisRepo.NewRateLimiter(client)

	// Start workers
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	auditWorker := workers.NewAuditLogWorker(auditRepo)
	go auditWorker.Start(ctx)

	// Build service layer
	moderationSvc := moderation.NewService(forbiddenTermRepo)
	notificationSvc := notification.NewService(notificationRepo, userRepo)
	likeSvc := like.NewService(txManager, articleRepo, commentRepo, articleLikeRepo, commentLikeRepo, notificationSvc)
	commentSvc := comment.NewService(
		txManager, commentRepo, articleRepo, commentLikeRepo, userRepo,
		moderationSvc, notificationSvc, rateLimiter, siteConfig, auditWorker,
	)

	commentHandler := rest.NewCommentHandler(commentSvc)
	likeHandler := rest.NewLikeHandler(likeSvc)
	notificationHandler := rest.NewNotificationHandler(notificationSvc)
	moderationHandler := rest.NewModerationHandler(moderationSvc)

	jwtSecret := os.Getenv("JWT_SECRET")
	authMiddleware := middleware.AuthMiddleware(jwtSecret)
	optionalAuth := middleware.OptionalAuthMiddleware(jwtSecret)

	// Register routes
	route.GET("/articles/:id/comments", optionalAuth, commentHandler.FetchCommentsByArticle)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/articles/:id/comments", commentHandler.CreateComment)
		authorized.POST("/articles/:id/like", likeHandler.ToggleArticleLike)
		authorized.POST("/comments/:id/like", likeHandler.ToggleCommentLike)

		authorized.GET("/notifications", notificationHandler.FetchNotifications)
		authorized.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		authorized.POST("/notifications/read", notificationHandler.MarkRead)

		authorized.GET("/moderation/terms", moderationHandler.FetchTerms)
		authorized.POST("/moderation/terms", moderationHandler.AddTerm)
		authorized.DELETE("/moderation/terms/:id", moderationHandler.RemoveTerm)
	}

	// Start server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
