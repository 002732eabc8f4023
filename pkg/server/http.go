package server

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/Depado/ginprom"
	"github.com/glowmate/api/app/api/routes"
	"github.com/glowmate/api/pkg/clients"
	"github.com/glowmate/api/pkg/config"
	"github.com/glowmate/api/pkg/database"
	"github.com/glowmate/api/pkg/mailer"
	"github.com/glowmate/api/pkg/redis"
	"github.com/glowmate/api/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glowmate/api/pkg/domains/ai"
	"github.com/glowmate/api/pkg/domains/auth"
	"github.com/glowmate/api/pkg/domains/ingredient"
	"github.com/glowmate/api/pkg/domains/premium"
	"github.com/glowmate/api/pkg/domains/product"
	"github.com/glowmate/api/pkg/domains/review"
	"github.com/glowmate/api/pkg/domains/user"
	"github.com/glowmate/api/pkg/domains/waitlist"
	"github.com/glowmate/api/pkg/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func LaunchHttpServer(cfg *config.Config) {
	log.Println("Starting HTTP Server...")
	gin.SetMode(gin.DebugMode)
	utils.RegisterGinValidations()

	app := gin.New()
	app.Use(gin.LoggerWithFormatter(func(log gin.LogFormatterParams) string {
		return fmt.Sprintf("[%s] - %s \"%s %s %s %d %s\"\n",
			log.TimeStamp.Format("2006-01-02 15:04:05"),
			log.ClientIP,
			log.Method,
			log.Path,
			log.Request.Proto,
			log.StatusCode,
			log.Latency,
		)
	}))
	app.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	app.Use(gin.Recovery())
	app.Use(otelgin.Middleware(cfg.App.Name))
	app.Use(middleware.ClaimIp())
	allows := cfg.Allows
	if len(allows.Methods) == 0 {
		allows.Methods = []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete, http.MethodOptions}
	}
	if len(allows.Headers) == 0 {
		allows.Headers = []string{"Content-Type", "Authorization", "X-Requested-With", "Origin", "Accept"}
	}
	if len(allows.Origins) == 0 {
		allows.Origins = []string{"*"}
	}
	app.Use(cors.New(cors.Config{
		AllowMethods:     allows.Methods,
		AllowHeaders:     allows.Headers,
		AllowOrigins:     allows.Origins,
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	p := ginprom.New(
		ginprom.Engine(app),
		ginprom.Subsystem("gin"),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/docs/*any"),
	)
	app.Use(p.Instrument())

	db := database.DBClient()
	rdb := redis.Client()
	notifier := mailer.NewSMTPClient(cfg.SMTP, cfg.App)
	secret := cfg.Auth.Secret

	routes.HealthRoutes(app, cfg.App)
	api := app.Group("/api/v1")

	// Auth Routes
	auth_repo := auth.NewRepo(db)
	auth_service := auth.NewService(auth_repo, notifier, auth.Config{Secret: secret, Pepper: cfg.Auth.Pepper})
	routes.AuthRoutes(api.Group("/auth"), auth_service)

	// Waitlist Routes (rate limited per client IP)
	waitlist_repo := waitlist.NewRepo(db)
	waitlist_service := waitlist.NewService(waitlist_repo, notifier)
	waitlist_group := api.Group("/waitlist", middleware.RateLimit(rdb, "waitlist", 20, 15*time.Minute))
	routes.WaitlistRoutes(waitlist_group, waitlist_service)

	// User Routes
	user_repo := user.NewRepo(db)
	user_service := user.NewService(user_repo)

	// Product + Review Routes
	product_repo := product.NewRepo(db)
	product_service := product.NewService(product_repo, user_repo, clients.NewOpenBeautyFactsClient())
	review_repo := review.NewRepo(db)
	review_service := review.NewService(review_repo, product_repo)
	routes.ProductRoutes(api.Group("/products"), product_service, review_service, secret)
	routes.UserRoutes(api.Group("/users", middleware.CheckAuth(secret)), user_service, review_service)
	routes.ReviewRoutes(api.Group("/reviews", middleware.CheckAuth(secret)), review_service)

	// Premium Routes
	premium_service := premium.NewService(db)
	routes.PremiumRoutes(api.Group("/premium", middleware.CheckAuth(secret)), premium_service)

	// AI Routes
	ai_service := ai.NewService(db, product_repo, user_repo)
	routes.AIRoutes(api.Group("/ai", middleware.CheckAuth(secret)), ai_service)

	// Ingredient Routes
	ingredient_repo := ingredient.NewRepo(db)
	ingredient_service := ingredient.NewService(ingredient_repo)
	routes.IngredientRoutes(api.Group("/ingredients"), ingredient_service)

	fmt.Println("Server is running on port " + cfg.App.Port)
	if err := app.Run(net.JoinHostPort(cfg.App.Host, cfg.App.Port)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
