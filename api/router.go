// Package api contains all endpoints available
package api

import (
	"bitwise74/review-api/db"
	"bitwise74/review-api/pkg/middleware"
	"bitwise74/review-api/service"
	"fmt"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"
	"github.com/go-redis/redis/v8"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store persist.CacheStore = persist.NewMemoryStore(time.Minute)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Mail   service.MailSender
}

func NewRouter() (*API, error) {
	a := &API{}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = database

	makeLogger()

	if viper.GetString("cache.store") == "redis" {
		store = persist.NewRedisStore(redis.NewClient(&redis.Options{
			Addr: viper.GetString("cache.redis_addr"),
		}))
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v, ok := c.Get("userID"); ok {
					fields = append(fields, zap.Any("userID", v))
				}

				return fields
			},
		}),
	)

	// Unregistered verbs on known paths (PUT everywhere, DELETE on some
	// collections) must return 405, not 404
	router.HandleMethodNotAllowed = true

	auth := middleware.NewAuthMiddleware(database)

	main := router.Group("/api", middleware.BodySizeLimiter(1<<20))
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)
	}

	authRoutes := main.Group("/auth")
	{
		// POST /api/auth/signup 	-> Registers (or re-registers) an identity and mails a confirmation code
		authRoutes.POST("/signup", a.AuthSignup)

		// POST /api/auth/token 	-> Exchanges a confirmation code for a session token pair
		authRoutes.POST("/token", a.AuthToken)
	}

	titles := main.Group("/titles", auth, a.gate(titlePerms))
	{
		titles.GET("", a.TitleFetchBulk)
		titles.POST("", a.TitleCreate)
		titles.GET("/:titleID", a.TitleFetch)
		titles.PATCH("/:titleID", a.TitleUpdate)
		titles.DELETE("/:titleID", a.TitleDelete)
	}

	reviews := main.Group("/titles/:titleID/reviews", auth, a.gate(reviewPerms))
	{
		reviews.GET("", a.ReviewFetchBulk)
		reviews.POST("", a.ReviewCreate)
		reviews.GET("/:reviewID", a.ReviewFetch)
		reviews.PATCH("/:reviewID", a.ReviewUpdate)
		reviews.DELETE("/:reviewID", a.ReviewDelete)
	}

	comments := main.Group("/titles/:titleID/reviews/:reviewID/comments", auth, a.gate(reviewPerms))
	{
		comments.GET("", a.CommentFetchBulk)
		comments.POST("", a.CommentCreate)
		comments.GET("/:commentID", a.CommentFetch)
		comments.PATCH("/:commentID", a.CommentUpdate)
		comments.DELETE("/:commentID", a.CommentDelete)
	}

	genres := main.Group("/genres", auth, a.gate(titlePerms))
	{
		genres.GET("", cacheFor(30), a.GenreFetchBulk)
		genres.POST("", a.GenreCreate)
		genres.DELETE("/:slug", a.GenreDelete)
	}

	categories := main.Group("/categories", auth, a.gate(titlePerms))
	{
		categories.GET("", cacheFor(30), a.CategoryFetchBulk)
		categories.POST("", a.CategoryCreate)
		categories.DELETE("/:slug", a.CategoryDelete)
	}

	users := main.Group("/users", auth, a.gate(userPerms))
	{
		users.GET("", a.UserFetchBulk)
		users.POST("", a.UserCreate)

		// ":username" doubles as the reserved "me" segment for the
		// caller's own record
		users.GET("/:username", a.UserFetch)
		users.PATCH("/:username", a.UserUpdate)
		users.DELETE("/:username", a.UserDelete)
	}

	a.Mail = service.NewMailSender()

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
