package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"

	analyticshandler "beautybar/internal/analytics/handler"
	analyticsrepository "beautybar/internal/analytics/repository"
	analyticsservice "beautybar/internal/analytics/service"
	authhandler "beautybar/internal/auth/handler"
	authrepository "beautybar/internal/auth/repository"
	authservice "beautybar/internal/auth/service"
	"beautybar/internal/auth/token"
	bookingshandler "beautybar/internal/bookings/handler"
	bookingsrepository "beautybar/internal/bookings/repository"
	bookingsservice "beautybar/internal/bookings/service"
	contenthandler "beautybar/internal/content/handler"
	contentrepository "beautybar/internal/content/repository"
	contentservice "beautybar/internal/content/service"
	healthhandler "beautybar/internal/health/handler"
	"beautybar/internal/notify"
	seedhandler "beautybar/internal/seed/handler"
	seedservice "beautybar/internal/seed/service"
	"beautybar/pkg/app"
	"beautybar/pkg/client"
	"beautybar/pkg/config"
	httputil "beautybar/pkg/http"
	"beautybar/pkg/middleware"
)

const ServiceName = "beautybar"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting BeautyBar609 API")

	mongo := client.NewMongoClient(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
	db := mongo.Client.Database(cfg.MongoDatabaseName)

	limiter := middleware.NewIPRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.Log)

	sms := notify.NewTermiiClient(cfg.TermiiAPIKey, cfg.TermiiSenderID, cfg.Log)
	mailer := notify.NewSendGridClient(cfg.SendGridAPIKey, cfg.SenderEmail, cfg.Log)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	userRepo := authrepository.NewMongoUserRepository(db, cfg)
	resetRepo := authrepository.NewMongoPasswordResetRepository(db, cfg)
	bookingRepo := bookingsrepository.NewMongoBookingRepository(db, cfg)
	serviceRepo := contentrepository.NewMongoServiceRepository(db, cfg)
	priceRepo := contentrepository.NewMongoPriceRepository(db, cfg)
	testimonialRepo := contentrepository.NewMongoTestimonialRepository(db, cfg)
	promotionRepo := contentrepository.NewMongoPromotionRepository(db, cfg)
	galleryRepo := contentrepository.NewMongoGalleryRepository(db, cfg)
	eventRepo := analyticsrepository.NewMongoEventRepository(db, cfg)

	authSvc := authservice.NewAuthService(userRepo, resetRepo, tokens, mailer, cfg)
	protect := authhandler.RequireAuth(authSvc, cfg.Log)

	apiRouter := httprouter.New()
	registerRootRoute(apiRouter, cfg)

	authhandler.NewAuthHandler(authSvc, limiter, cfg.Log).RegisterRoutes(apiRouter, protect)

	bookingSvc := bookingsservice.NewBookingService(bookingRepo, sms, mailer, cfg)
	bookingshandler.NewBookingHandler(bookingSvc, cfg.Log).RegisterRoutes(apiRouter, protect)

	contenthandler.NewServiceHandler(contentservice.NewServiceCatalog(serviceRepo), cfg.Log).RegisterRoutes(apiRouter, protect)
	contenthandler.NewPriceHandler(contentservice.NewPriceService(priceRepo), cfg.Log).RegisterRoutes(apiRouter, protect)
	contenthandler.NewTestimonialHandler(contentservice.NewTestimonialService(testimonialRepo), cfg.Log).RegisterRoutes(apiRouter, protect)
	contenthandler.NewPromotionHandler(contentservice.NewPromotionService(promotionRepo, cfg.Log), cfg.Log).RegisterRoutes(apiRouter, protect)
	contenthandler.NewGalleryHandler(contentservice.NewGalleryService(galleryRepo), cfg.Log).RegisterRoutes(apiRouter, protect)

	analyticshandler.NewAnalyticsHandler(analyticsservice.NewAnalyticsService(eventRepo), cfg.Log).RegisterRoutes(apiRouter, protect)

	seedSvc := seedservice.NewSeedService(serviceRepo, priceRepo, testimonialRepo, promotionRepo, galleryRepo, cfg.Log)
	seedhandler.NewSeedHandler(seedSvc, cfg.Log).RegisterRoutes(apiRouter, protect)

	healthRouter := httprouter.New()
	healthhandler.NewHealthHandler(mongo, cfg.Log).RegisterRoutes(healthRouter)

	serverApp := app.NewApplication(cfg, mongo, limiter)
	serverApp.SetRouters(apiRouter, healthRouter)
	serverApp.Run()
}

func registerRootRoute(router *httprouter.Router, cfg *config.Config) {
	router.GET("/api/", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if err := httputil.WriteMessage(w, "BeautyBar609 API"); err != nil {
			cfg.Log.Error("failed to write response", "handler", "Root", "error", err)
		}
	})
}
