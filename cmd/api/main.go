package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/ChiniHendi2004/appointment-api/internal/config"
	dbpkg "github.com/ChiniHendi2004/appointment-api/internal/db"
	"github.com/ChiniHendi2004/appointment-api/internal/middleware"
	"github.com/ChiniHendi2004/appointment-api/internal/routes"
	"github.com/ChiniHendi2004/appointment-api/internal/storage"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var files storage.FileStore
	if cfg.S3Bucket != "" {
		files = storage.NewS3(cfg)
		log.Printf("content store: s3 bucket %s", cfg.S3Bucket)
	} else {
		files = storage.NewLocal(cfg.UploadDir)
		log.Printf("content store: local dir %s", cfg.UploadDir)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		log.Printf("availability cache: redis %s", cfg.RedisAddr)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded files are public content, addressed by relative path.
	if cfg.S3Bucket == "" {
		r.Static("/storage", cfg.UploadDir)
	}

	routes.RegisterRoutes(r, db, cfg, files, rdb)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
