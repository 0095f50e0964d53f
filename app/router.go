// Package app wires the HTTP surface together
package app

import (
	"time"

	a "contacts-api/aws"
	"contacts-api/app/auth"
	"contacts-api/app/contact"
	"contacts-api/app/root"
	"contacts-api/app/user"
	"contacts-api/config"
	"contacts-api/db"
	"contacts-api/internal"
	"contacts-api/internal/service"
	"contacts-api/internal/store"
	"contacts-api/pkg/middleware"
	"contacts-api/pkg/security"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

// NewRouter connects to Postgres and S3 and builds the full engine.
func NewRouter(cfg *config.Config) (*gin.Engine, error) {
	gdb, err := db.New(cfg)
	if err != nil {
		return nil, err
	}

	s3c, err := a.NewS3(cfg)
	if err != nil {
		return nil, err
	}

	return newRouter(cfg, gdb, s3c), nil
}

func newRouter(cfg *config.Config, gdb *gorm.DB, s3c *a.S3Client) *gin.Engine {
	makeLogger()

	argon := security.NewArgon()
	tokens := security.NewTokens(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.VerifyTTL)

	mail := service.NewMailQueue(cfg)
	mail.StartWorkerPool()

	d := &internal.Deps{
		Cfg:      cfg,
		DB:       gdb,
		Users:    service.NewUserService(store.NewUserStore(gdb), argon, tokens, mail, s3c),
		Contacts: service.NewContactService(store.NewContactStore(gdb)),
		Mail:     mail,
	}

	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
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

				if v := c.GetUint("userID"); v != 0 {
					fields = append(fields, zap.Uint("user_id", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	jwt := middleware.NewJWTMiddleware(gdb, tokens)
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit,
		Burst:             cfg.RateLimit * 2,
	})

	m := router.Group("/api", rateLimiter)
	{
		// HEAD /api/heartbeat			-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)
	}

	au := m.Group("/auth", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/auth/register		-> Registers a new unverified user
		au.POST("/register", func(c *gin.Context) { auth.Register(c, d) })

		// POST /api/auth/login			-> Logs in a user and returns an access token
		au.POST("/login", func(c *gin.Context) { auth.Login(c, d) })

		// GET /api/auth/confirmed_email/:token	-> Confirms a user's email address
		au.GET("/confirmed_email/:token", func(c *gin.Context) { auth.Confirm(c, d) })

		// POST /api/auth/request_email		-> Requests another verification email
		au.POST("/request_email", func(c *gin.Context) { auth.Resend(c, d) })
	}

	u := m.Group("/users", jwt)
	{
		// GET /api/users/me			-> Returns the authenticated user
		u.GET("/me", func(c *gin.Context) { user.Fetch(c, d) })

		// PATCH /api/users/avatar		-> Uploads a new avatar image
		u.PATCH("/avatar", middleware.BodySizeLimiter(5<<20), func(c *gin.Context) { user.Avatar(c, d) })
	}

	ct := m.Group("/contacts", jwt, middleware.BodySizeLimiter(1<<20))
	{
		// GET /api/contacts			-> Lists the owner's contacts with filters
		ct.GET("", func(c *gin.Context) { contact.List(c, d) })

		// POST /api/contacts			-> Creates a new contact
		ct.POST("", func(c *gin.Context) { contact.Create(c, d) })

		// GET /api/contacts/birthdays		-> Lists contacts with upcoming birthdays
		ct.GET("/birthdays", func(c *gin.Context) { contact.Birthdays(c, d) })

		// GET /api/contacts/:id		-> Returns a contact owned by the user
		ct.GET("/:id", func(c *gin.Context) { contact.Fetch(c, d) })

		// PUT /api/contacts/:id		-> Replaces a contact owned by the user
		ct.PUT("/:id", func(c *gin.Context) { contact.Update(c, d) })

		// DELETE /api/contacts/:id		-> Deletes a contact owned by the user
		ct.DELETE("/:id", func(c *gin.Context) { contact.Delete(c, d) })
	}

	return router
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
