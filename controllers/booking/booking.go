package booking

import (
	"errors"
	"fmt"
	"time"

	"homeservice-booking/constants"
	"homeservice-booking/logger"
	bookingModel "homeservice-booking/models/booking"
	catalogModel "homeservice-booking/models/catalog"
	userModel "homeservice-booking/models/user"
	"homeservice-booking/money"
	"homeservice-booking/services/checkout"
	"homeservice-booking/services/ledger"
	"homeservice-booking/services/lifecycle"
	"homeservice-booking/types"
	bookingTypes "homeservice-booking/types/booking"
	"homeservice-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	DB        *gorm.DB
	Assembler *checkout.Assembler
	Engine    *lifecycle.Engine
	Ledger    *ledger.Ledger
	Logger    *logger.AsyncLogger
}

// NewBookingController creates a new booking controller
func NewBookingController(db *gorm.DB, assembler *checkout.Assembler, engine *lifecycle.Engine, paymentLedger *ledger.Ledger, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		DB:        db,
		Assembler: assembler,
		Engine:    engine,
		Ledger:    paymentLedger,
		Logger:    asyncLogger,
	}
}

// logAPIRequest pushes a snapshot of the current request and response onto
// the async log worker.
func (bc *BookingController) logAPIRequest(c *fiber.Ctx) {
	logEntry := utils.CreateLogEntry(c)
	bc.Logger.Log(logEntry)
}

// sendResponseWithLog writes the response and records the exchange in the
// request log.
func (bc *BookingController) sendResponseWithLog(c *fiber.Ctx, statusCode int, response types.ApiResponse) error {
	result := c.Status(statusCode).JSON(response)
	bc.logAPIRequest(c)
	return result
}

// Checkout creates one pending booking per cart line item.
func (bc *BookingController) Checkout(c *fiber.Ctx) error {
	var req bookingTypes.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	caller, err := bc.currentUser(c)
	if err != nil {
		return bc.authErrorResponse(c, err)
	}

	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking_date, expected YYYY-MM-DD",
			Data:    nil,
		})
	}

	items := make([]checkout.Line, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, checkout.Line{ServiceID: item.ServiceID, Quantity: item.Quantity})
	}

	bookings, err := bc.Assembler.Checkout(checkout.Input{
		ClientID:      caller.ID,
		BookingDate:   bookingDate,
		BookingTime:   req.BookingTime,
		Address:       req.Address,
		Phone:         req.Phone,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
	})
	if err != nil {
		return bc.checkoutErrorResponse(c, err)
	}

	return bc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Checkout completed successfully",
		Data:    bookings,
	})
}

// Transition applies a lifecycle event (confirm/start/complete/cancel) to a booking.
func (bc *BookingController) Transition(c *fiber.Ctx) error {
	bookingID, err := c.ParamsInt("id")
	if err != nil || bookingID <= 0 {
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
			Data:    nil,
		})
	}

	var req bookingTypes.TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	event, err := bookingModel.ParseEvent(req.Event)
	if err != nil {
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	caller, err := bc.currentUser(c)
	if err != nil {
		return bc.authErrorResponse(c, err)
	}

	var b bookingModel.Booking
	if err := bc.DB.First(&b, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find booking", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	if !bc.mayTransition(caller, &b, event) {
		return bc.sendResponseWithLog(c, fiber.StatusForbidden, types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Not allowed to transition this booking",
			Data:    nil,
		})
	}

	updated, err := bc.Engine.Transition(uint(bookingID), event, fmt.Sprintf("%d", caller.ID))
	if err != nil {
		return bc.transitionErrorResponse(c, err)
	}

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking transitioned successfully",
		Data:    updated,
	})
}

// mayTransition enforces the authorization contract on transitions: the
// booking's provider or an admin may drive the workflow; the booking's client
// may additionally cancel.
func (bc *BookingController) mayTransition(caller *userModel.User, b *bookingModel.Booking, event bookingModel.Event) bool {
	if caller.Role == constants.RoleAdmin {
		return true
	}

	if caller.Role == constants.RoleProvider {
		var provider catalogModel.Provider
		if err := bc.DB.Where("user_id = ?", caller.ID).First(&provider).Error; err != nil {
			return false
		}
		return provider.ID == b.ProviderID
	}

	if event == bookingModel.EventCancel {
		return caller.ID == b.ClientID
	}
	return false
}

// currentUser resolves the caller from the JWT claims placed by the auth
// middleware. errUnauthorized marks failures that should map to 401.
var errUnauthorized = errors.New("unauthorized")

func (bc *BookingController) currentUser(c *fiber.Ctx) (*userModel.User, error) {
	claims, err := utils.ClaimsFromContext(c)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user claims", errUnauthorized)
	}

	userUUID, err := utils.UUIDFromClaims(claims)
	if err != nil {
		return nil, fmt.Errorf("%w: user UUID not found in token", errUnauthorized)
	}

	userInfo, err := utils.GetUserByUUID(userUUID)
	if err != nil {
		logger.Error("Error finding user by UUID", err)
		if err.Error() == "user not found" {
			return nil, fmt.Errorf("%w: user not found", errUnauthorized)
		}
		return nil, err
	}

	return userInfo, nil
}

func (bc *BookingController) authErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, errUnauthorized) {
		return bc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
			Data:    nil,
		})
	}
	return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Database error",
		Data:    nil,
	})
}

func (bc *BookingController) checkoutErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, bookingModel.ErrServiceUnavailable):
		return bc.sendResponseWithLog(c, fiber.StatusUnprocessableEntity, types.ApiResponse{
			Status:  fiber.StatusUnprocessableEntity,
			Message: err.Error(),
			Data:    nil,
		})
	case errors.Is(err, money.ErrInvalidPricing), errors.Is(err, money.ErrFeeExceedsTotal):
		return bc.sendResponseWithLog(c, fiber.StatusUnprocessableEntity, types.ApiResponse{
			Status:  fiber.StatusUnprocessableEntity,
			Message: err.Error(),
			Data:    nil,
		})
	default:
		logger.Error("Checkout failed", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to complete checkout",
			Data:    nil,
		})
	}
}

func (bc *BookingController) transitionErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, bookingModel.ErrNotFound):
		return bc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Booking not found",
			Data:    nil,
		})
	case errors.Is(err, bookingModel.ErrInvalidTransition),
		errors.Is(err, bookingModel.ErrTerminalState),
		errors.Is(err, bookingModel.ErrConcurrencyConflict):
		return bc.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: err.Error(),
			Data:    nil,
		})
	default:
		logger.Error("Transition failed", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to transition booking",
			Data:    nil,
		})
	}
}
