package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"distchat/db"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimiterrorHandler(c *gin.Context, info ratelimit.Info) {
	c.String(429, "Too many requests. Try again in "+time.Until(info.ResetTime).String())
}

func main() {
	_ = godotenv.Load()

	port := os.Getenv("CHAT_SERVER_PORT")
	if port == "" {
		port = "8000"
	}
	host := os.Getenv("CHAT_SERVER_HOST")
	if host == "" {
		host = "localhost"
	}
	binderAddr := os.Getenv("BINDER_ADDR")
	if binderAddr == "" {
		binderAddr = "localhost:5000"
	}
	dbName := os.Getenv("CHAT_DB_FILE")
	if dbName == "" {
		dbName = "./user_data.db"
	}

	logFile, err := setupLogging()
	if err != nil {
		log.Fatal("Error setting up log file:", err)
	}
	defer logFile.Close()

	db.UserDB, err = db.InitSQLite(dbName)
	if err != nil {
		log.Fatal("Error opening user database:", err)
	}
	defer db.CloseDB(db.UserDB)
	if err := ensureUserSchema(); err != nil {
		log.Fatal("Error ensuring user schema:", err)
	}

	server := NewChatServer()
	users, err := loadUsers()
	if err != nil {
		log.Fatal("Error loading user data:", err)
	}
	server.users = users
	log.Printf("Loaded %d registered users", len(users))

	r := gin.Default()

	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{Rate: time.Second, Limit: 150})
	r.Use(ratelimit.RateLimiter(store, &ratelimit.Options{ErrorHandler: rateLimiterrorHandler, KeyFunc: keyFunc}))
	r.Use(cors.Default())
	r.Use(requestLogger())

	registerRoutes(r, server)

	portNumber, err := strconv.Atoi(port)
	if err != nil {
		log.Fatal("Invalid CHAT_SERVER_PORT:", err)
	}
	if err := registerWithBinder(binderAddr, host, portNumber); err != nil {
		log.Fatal("Error registering with binder:", err)
	}

	reaperStop := make(chan struct{})
	go server.startReaper(reaperInterval, roomIdleTimeout, reaperStop)

	httpServer := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		log.Printf("Chat server is running on port %s", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down chat server...")
	close(reaperStop)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("chat server forced shutdown: %v", err)
	}
}
