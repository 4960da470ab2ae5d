package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"librio/cmd/fx/account_fx"
	"librio/cmd/fx/book_fx"
	"librio/cmd/fx/controllers_fx"
	"librio/cmd/fx/db_fx"
	"librio/cmd/fx/library_fx"
	"librio/cmd/fx/mail_fx"
	"librio/cmd/fx/memcache_fx"
	"librio/cmd/fx/notifier_fx"
	"librio/cmd/fx/payment_service_fx"
	"librio/cmd/fx/point_fx"
	"librio/cmd/fx/recommendation_fx"
	"librio/cmd/fx/reminder_fx"
	"librio/cmd/fx/review_fx"
	"librio/cmd/fx/subscription_fx"
	"librio/internal/api/controllers"
	"librio/internal/infra"
	"librio/internal/services"
	"librio/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		notifier_fx.Module,
		account_fx.Module,
		book_fx.Module,
		review_fx.Module,
		library_fx.Module,
		subscription_fx.Module,
		point_fx.Module,
		payment_service_fx.Module,
		recommendation_fx.Module,
		reminder_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartWorkers),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func StartWorkers(lc fx.Lifecycle, notifier *services.MailNotifier, reminder *services.ReminderService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			notifier.Start()
			return reminder.Start()
		},
		OnStop: func(ctx context.Context) error {
			reminder.Stop()
			notifier.Stop()
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	bookController *controllers.BookController,
	reviewController *controllers.ReviewController,
	libraryController *controllers.LibraryController,
	subscriptionController *controllers.SubscriptionController,
	paymentController *controllers.PaymentController,
	recommendationController *controllers.RecommendationController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		bookController,
		reviewController,
		libraryController,
		subscriptionController,
		paymentController,
		recommendationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	bookController *controllers.BookController,
	reviewController *controllers.ReviewController,
	libraryController *controllers.LibraryController,
	subscriptionController *controllers.SubscriptionController,
	paymentController *controllers.PaymentController,
	recommendationController *controllers.RecommendationController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/forgot-password", accountController.ForgotPassword)
	authGroup.POST("/reset-password", accountController.ResetPassword)

	adminGroup := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.GET("/accounts", accountController.GetAllAccounts)

	booksGroup := r.Group("/books")
	booksGroup.GET("", bookController.ListBooks)
	booksGroup.GET("/search", bookController.SearchBooks)
	booksGroup.GET("/recommendations", middleware.JWTAuthMiddleware(), recommendationController.GetRecommendations)
	booksGroup.GET("/:id", bookController.GetBookById)
	booksGroup.GET("/:id/reviews", reviewController.GetReviews)
	booksGroup.POST("/:id/reviews", middleware.JWTAuthMiddleware(), reviewController.AddReview)

	libraryGroup := r.Group("/library", middleware.JWTAuthMiddleware())
	libraryGroup.GET("/shelf", libraryController.GetShelf)
	libraryGroup.POST("/shelf", libraryController.AddToShelf)
	libraryGroup.PATCH("/shelf/:bookId", libraryController.UpdateShelfItem)
	libraryGroup.DELETE("/shelf/:bookId", libraryController.RemoveFromShelf)
	libraryGroup.GET("/wishlist", libraryController.GetWishlist)
	libraryGroup.POST("/wishlist", libraryController.AddToWishlist)
	libraryGroup.DELETE("/wishlist/:bookId", libraryController.RemoveFromWishlist)

	subGroup := r.Group("/subscription", middleware.JWTAuthMiddleware())
	subGroup.GET("", subscriptionController.GetSubscription)
	subGroup.POST("/subscribe", subscriptionController.Subscribe)
	subGroup.POST("/cancel", subscriptionController.Cancel)

	pointsGroup := r.Group("/points", middleware.JWTAuthMiddleware())
	pointsGroup.GET("/balance", paymentController.GetBalance)
	pointsGroup.GET("/history", paymentController.GetHistory)
	pointsGroup.POST("/topup", paymentController.CreateTopUpCheckout)

	// payOS calls back without auth; the payload signature is verified instead.
	r.POST("/webhooks/payos", paymentController.HandleWebhook)
}
