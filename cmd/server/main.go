package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"taskboard/internal/app/router"
	authadapters "taskboard/internal/feature/auth/adapters"
	authentity "taskboard/internal/feature/auth/domain/entity"
	authhandler "taskboard/internal/feature/auth/transport/handler"
	authusecase "taskboard/internal/feature/auth/usecase"
	taskadapters "taskboard/internal/feature/tasks/adapters"
	taskentity "taskboard/internal/feature/tasks/domain/entity"
	taskhandler "taskboard/internal/feature/tasks/transport/handler"
	taskusecase "taskboard/internal/feature/tasks/usecase"
	"taskboard/internal/platform/db"
	"taskboard/internal/platform/session"
)

const defaultSessionTTL = 24 * time.Hour

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	conn := db.Open()

	if err := conn.AutoMigrate(
		&authentity.User{},
		&taskentity.Task{},
		&session.SessionModel{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Session store: Redis when configured and reachable, otherwise the
	// main database.
	var sessions authusecase.SessionStore
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redisv9.NewClient(&redisv9.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Println("[WARN] Redis unavailable. Falling back to database sessions.")
			sessions = session.NewGormStore(conn)
		} else {
			sessions = session.NewRedisStore(rdb, "session")
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
		cancel()
	} else {
		store := session.NewGormStore(conn)
		if n, err := store.DeleteExpired(context.Background()); err != nil {
			log.Println("[WARN] Failed to purge expired sessions:", err)
		} else if n > 0 {
			log.Printf("purged %d expired sessions", n)
		}
		sessions = store
	}

	// Repository
	userRepo := authadapters.NewUserGorm(conn)
	taskRepo := taskadapters.NewTaskGorm(conn)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessions, defaultSessionTTL)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)

	r := router.New(authH, taskH, authUC)
	r.LoadHTMLGlob("templates/*.html")

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
