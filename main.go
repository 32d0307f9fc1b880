package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wordrush/auth"
	"wordrush/config"
	"wordrush/crypto"
	"wordrush/game"
	"wordrush/migrations"
	"wordrush/profile"
	"wordrush/storage"
	"wordrush/words"
)

func CreateServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/health", func(ctx *gin.Context) { ctx.String(http.StatusOK, "healthy") })

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")
		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.String(http.StatusForbidden, "forbidden origin")
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Authorization",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func main() {

	// logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if err := migrations.Migrate(cfg.PostgresURL); err != nil {
		log.Fatal(err)
	}

	// Dependencies
	pgRepo, err := storage.NewPostgresRepo(context.Background(), cfg.PostgresURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pgRepo.Close()

	tokenAge := time.Hour * 24 * 7 // 7 days
	passwordHasher := crypto.NewArgon2idHasher(3, 1024*64, 32, 16, 1)
	tokenManager := crypto.NewJWTManager(cfg.JWTKey, tokenAge)

	authService := auth.NewService(pgRepo, passwordHasher, tokenManager)
	authHandler := auth.NewAuthHandler(authService, tokenAge)

	dictionary := words.NewDictionary()
	gameService := game.NewService(dictionary, pgRepo, tokenManager, pgRepo)
	gameHandler := game.NewGameHandler(gameService)

	profileHandler := profile.NewProfileHandler(pgRepo)

	r := CreateServer(cfg.AllowedOrigins)

	{
		authGroup := r.Group("/auth")
		authGroup.POST("/signup", authHandler.SignupHandler)
		authGroup.POST("/login", authHandler.LoginHandler)
		authGroup.POST("/logout", authHandler.LogoutHandler)
		authGroup.GET("/refresh", authHandler.RefreshSessionHandler)
	}

	{
		api := r.Group("/api")
		api.POST("/create-room", gameHandler.CreateRoomHandler)
		api.GET("/ws/:code", gameHandler.WSHandler)
		api.GET("/leaderboard", profileHandler.LeaderboardHandler)

		authed := api.Group("")
		authed.Use(authHandler.RequireAuthMiddleware())
		authed.GET("/profile", profileHandler.ProfileHandler)
	}

	r.Run(cfg.Addr)
}
