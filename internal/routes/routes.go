package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-shop/internal/audit"
	cartstore "github.com/BruksfildServices01/barber-shop/internal/cart"
	"github.com/BruksfildServices01/barber-shop/internal/config"
	"github.com/BruksfildServices01/barber-shop/internal/handlers"
	"github.com/BruksfildServices01/barber-shop/internal/imagestore"
	infraRepo "github.com/BruksfildServices01/barber-shop/internal/infra/repository"
	"github.com/BruksfildServices01/barber-shop/internal/invoice"
	"github.com/BruksfildServices01/barber-shop/internal/middleware"
	"github.com/BruksfildServices01/barber-shop/internal/models"
	"github.com/BruksfildServices01/barber-shop/internal/payment"
	ucBooking "github.com/BruksfildServices01/barber-shop/internal/usecase/booking"
	ucPurchase "github.com/BruksfildServices01/barber-shop/internal/usecase/purchase"
)

// Deps agrupa a infraestrutura montada no main.
type Deps struct {
	Cart     *cartstore.Store
	Images   imagestore.Store
	Invoices *invoice.Renderer
	Payments payment.Processor
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	purchaseRepo := infraRepo.NewPurchaseGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — AGENDAMENTOS
	// ======================================================
	bookUC := ucBooking.NewBook(bookingRepo, auditDispatcher)
	rescheduleUC := ucBooking.NewReschedule(bookingRepo, auditDispatcher)
	cancelAppointmentUC := ucBooking.NewCancel(bookingRepo, auditDispatcher)
	listAppointmentsUC := ucBooking.NewList(bookingRepo)

	// ======================================================
	// 🧠 USE CASES — COMPRAS
	// ======================================================
	checkoutUC := ucPurchase.NewCheckout(
		purchaseRepo,
		auditDispatcher,
		deps.Payments,
		deps.Invoices,
	)

	checkoutCartUC := ucPurchase.NewCheckoutCart(
		purchaseRepo,
		auditDispatcher,
		deps.Payments,
		deps.Invoices,
	)

	cancelPurchaseUC := ucPurchase.NewCancel(purchaseRepo, auditDispatcher)
	listPurchasesUC := ucPurchase.NewList(purchaseRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barberHandler := handlers.NewBarberHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		rescheduleUC,
		cancelAppointmentUC,
		listAppointmentsUC,
	)

	productHandler := handlers.NewProductHandler(db, deps.Images)
	cartHandler := handlers.NewCartHandler(db, deps.Cart)

	purchaseHandler := handlers.NewPurchaseHandler(
		db,
		checkoutUC,
		checkoutCartUC,
		cancelPurchaseUC,
		listPurchasesUC,
		deps.Cart,
		deps.Invoices,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/signin", authHandler.Signin)

		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Get)
		api.GET("/products/:id/image", productHandler.Image)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// AGENDAMENTOS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Book)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id", appointmentHandler.Reschedule)
			secured.DELETE("/appointments/:id", appointmentHandler.Cancel)

			// ------------------------------
			// PRODUTOS
			// ------------------------------
			secured.GET("/products", productHandler.List)

			barberOnly := secured.Group("/")
			barberOnly.Use(middleware.RequireRole(models.RoleBarber))
			{
				barberOnly.POST("/products", productHandler.Create)
				barberOnly.PATCH("/products/:id", productHandler.Update)
				barberOnly.DELETE("/products/:id", productHandler.Delete)
			}

			// ------------------------------
			// CARRINHO + COMPRAS
			// ------------------------------
			secured.GET("/purchases", purchaseHandler.List)
			secured.DELETE("/purchases/:id", purchaseHandler.Cancel)
			secured.GET("/purchases/:id/invoice", purchaseHandler.Invoice)

			clientOnly := secured.Group("/")
			clientOnly.Use(middleware.RequireRole(models.RoleClient))
			{
				clientOnly.GET("/cart", cartHandler.Get)
				clientOnly.POST("/cart", cartHandler.Add)
				clientOnly.DELETE("/cart/:productID", cartHandler.RemoveEntry)
				clientOnly.DELETE("/cart", cartHandler.Clear)

				clientOnly.POST("/purchases", purchaseHandler.Checkout)
				clientOnly.POST("/purchases/checkout", purchaseHandler.CheckoutCart)
			}
		}
	}
}
