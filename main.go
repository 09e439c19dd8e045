package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"careon/api-gateway/config"
	"careon/api-gateway/handlers"
	"careon/api-gateway/internal/authtoken"
	"careon/api-gateway/internal/cartstore"
	"careon/api-gateway/internal/notify"
	"careon/api-gateway/internal/smsclient"
	"careon/api-gateway/middleware"
	"careon/api-gateway/store"
)

func main() {
	config.InitLogger()

	adminCfg, err := config.LoadAdminConfig()
	if err != nil {
		log.Fatalf("Invalid admin configuration: %v", err)
	}

	supabase, err := config.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Failed to initialize Supabase: %v", err)
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	cart := cartstore.New(redisAddr, os.Getenv("REDIS_PASSWORD"))
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := cart.Ping(pingCtx); err != nil {
		cancel()
		log.Fatalf("Failed to reach Redis at %s: %v", redisAddr, err)
	}
	cancel()

	h := handlers.NewApplicationHandler(config.Log)
	h.Pages = store.NewSupabasePageStore(supabase, config.Log)
	h.Products = store.NewSupabaseProductStore(supabase, config.Log)
	h.Reviews = store.NewSupabaseReviewStore(supabase, config.Log)
	h.Legal = store.NewSupabaseLegalStore(supabase, config.Log)
	h.Consultations = store.NewSupabaseConsultationStore(supabase, config.Log)
	h.Cart = cart
	h.Tokens = authtoken.New(adminCfg.SecretKey)
	h.Admin = adminCfg
	h.SMS = config.LoadSMSConfig()
	h.FrontendURL = os.Getenv("FRONTEND_URL")

	if h.SMS.Enabled() {
		sms := smsclient.New(h.SMS.BaseURL, h.SMS.APIKey, h.SMS.UserID, h.SMS.Sender, config.Log)
		dispatcher := notify.NewDispatcher(sms, 2, 64, config.Log)
		dispatcher.Run()
		defer dispatcher.Stop()
		h.Notifier = dispatcher
	} else {
		config.Log.Warn("SMS gateway not configured; notification routes disabled")
	}

	app := fiber.New()

	// Middleware. Credentials (the admin cookie) are only allowed across
	// origins when an explicit origin list is configured; the wildcard
	// default stays credential-less.
	corsCfg := cors.Config{AllowHeaders: "Origin, Content-Type, Accept"}
	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	app.Use(cors.New(corsCfg))
	app.Use(middleware.RequestLogger())

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "CareOn API is healthy",
		})
	})

	// OAuth provider redirect target
	app.Get("/auth/callback", h.OAuthCallback)

	api := app.Group("/api")

	// Page-builder routes
	api.Get("/pages", h.ListPages)
	api.Get("/pages/:slug", h.GetPage)
	api.Post("/pages", h.SavePage)

	// Product catalog
	api.Get("/products", h.ListProducts)
	api.Get("/products/:slug", h.GetProduct)

	// Reviews
	api.Get("/reviews", h.ListReviews)
	api.Post("/reviews", h.CreateReview)

	// Legal documents
	api.Get("/legal/:slug", h.GetLegalDocument)

	// Consultation requests
	api.Post("/consultations", h.CreateConsultation)

	// SMS notifications
	api.Post("/notify/sms", h.SendSMS)

	// Shopping cart
	cartRoutes := api.Group("/cart/:cartId")
	cartRoutes.Get("", h.GetCart)
	cartRoutes.Post("/items", h.AddCartItem)
	cartRoutes.Delete("/items/:productId", h.RemoveCartItem)
	cartRoutes.Delete("", h.ClearCart)

	// Admin routes; everything past the session endpoints requires the cookie.
	adminAuth := middleware.AdminRequired(h.Tokens, adminCfg.Username)
	admin := api.Group("/admin")
	admin.Post("/login", h.AdminLogin)
	admin.Post("/logout", h.AdminLogout)
	admin.Get("/check-auth", h.AdminCheckAuth)
	admin.Delete("/pages/:id", adminAuth, h.DeletePage)
	admin.Get("/reviews", adminAuth, h.ListAllReviews)
	admin.Patch("/reviews/:id", adminAuth, h.ModerateReview)
	admin.Delete("/reviews/:id", adminAuth, h.DeleteReview)
	admin.Put("/legal/:slug", adminAuth, h.SaveLegalDocument)
	admin.Get("/consultations", adminAuth, h.ListConsultations)
	admin.Patch("/consultations/:id", adminAuth, h.UpdateConsultation)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting CareOn API on port %s...", port)
	log.Fatal(app.Listen(":" + port))
}
