package routes

import (
	"homeservice-booking/config"
	"homeservice-booking/constants"
	"homeservice-booking/controllers/booking"
	"homeservice-booking/logger"
	"homeservice-booking/middleware"
	"homeservice-booking/services/checkout"
	"homeservice-booking/services/ledger"
	"homeservice-booking/services/lifecycle"
	"homeservice-booking/services/notify"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	asyncLogger := logger.NewAsyncLogger(db)
	auth := middleware.NewAuth(cfg.JWTSecret)
	events := notify.NewDispatcher()
	assembler := checkout.NewAssembler(db, cfg.Fee, events)
	engine := lifecycle.NewEngine(db, events)
	paymentLedger := ledger.NewLedger(db)
	bookingController := booking.NewBookingController(db, assembler, engine, paymentLedger, asyncLogger)

	// Start the async workers
	go asyncLogger.ProcessLog()
	go events.Process()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "homeservice-booking",
			"status":  "ok",
		})
	})

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	api := app.Group("/api")
	bookingGroup := api.Group("/booking")

	api.Post("/checkout", auth.RequireRoles(
		constants.RoleClient,
	), bookingController.Checkout)

	bookingGroup.Post("/:id/transition", auth.RequireRoles(
		constants.RoleClient, constants.RoleProvider, constants.RoleAdmin,
	), bookingController.Transition)

	bookingGroup.Get("/settlements", auth.RequireRoles(
		constants.RoleProvider, constants.RoleAdmin,
	), bookingController.ListSettlements)

	bookingGroup.Get("/pending-fees", auth.RequireRoles(
		constants.RoleAdmin,
	), bookingController.PendingFees)

	bookingGroup.Get("/:id/ledger", auth.RequireRoles(
		constants.RoleAdmin,
	), bookingController.LedgerHistory)

	bookingGroup.Get("/:id", auth.RequireAuthentication(), bookingController.Show)
}
