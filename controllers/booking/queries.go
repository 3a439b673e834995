package booking

import (
	"errors"
	"time"

	"homeservice-booking/constants"
	"homeservice-booking/logger"
	bookingModel "homeservice-booking/models/booking"
	catalogModel "homeservice-booking/models/catalog"
	"homeservice-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Show returns one booking. Only the booking's client, its provider or an
// admin may read it.
func (bc *BookingController) Show(c *fiber.Ctx) error {
	bookingID, err := c.ParamsInt("id")
	if err != nil || bookingID <= 0 {
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
			Data:    nil,
		})
	}

	caller, err := bc.currentUser(c)
	if err != nil {
		return bc.authErrorResponse(c, err)
	}

	var b bookingModel.Booking
	if err := bc.DB.Preload("Client").Preload("Service").First(&b, bookingID).Error; err != nil {
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

	if !bc.mayRead(caller.ID, caller.Role, &b) {
		return bc.sendResponseWithLog(c, fiber.StatusForbidden, types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Not allowed to read this booking",
			Data:    nil,
		})
	}

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking retrieved successfully",
		Data:    b,
	})
}

// ListSettlements returns a provider's settlements in a date range. Providers
// see their own; admins may pass any provider_id.
func (bc *BookingController) ListSettlements(c *fiber.Ctx) error {
	caller, err := bc.currentUser(c)
	if err != nil {
		return bc.authErrorResponse(c, err)
	}

	var providerID uint
	switch caller.Role {
	case constants.RoleAdmin:
		id := c.QueryInt("provider_id")
		if id <= 0 {
			return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "provider_id query parameter is required",
				Data:    nil,
			})
		}
		providerID = uint(id)
	case constants.RoleProvider:
		var provider catalogModel.Provider
		if err := bc.DB.Where("user_id = ?", caller.ID).First(&provider).Error; err != nil {
			return bc.sendResponseWithLog(c, fiber.StatusForbidden, types.ApiResponse{
				Status:  fiber.StatusForbidden,
				Message: "No provider profile for this user",
				Data:    nil,
			})
		}
		providerID = provider.ID
	default:
		return bc.sendResponseWithLog(c, fiber.StatusForbidden, types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Insufficient permissions",
			Data:    nil,
		})
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	settlements, err := bc.Ledger.PayableSettlements(providerID, from, to)
	if err != nil {
		logger.Error("Failed to list settlements", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list settlements",
			Data:    nil,
		})
	}

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Settlements retrieved successfully",
		Data:    settlements,
	})
}

// PendingFees is the billing reconciliation feed: live bookings whose fee has
// not been captured yet. Admin only (enforced on the route).
func (bc *BookingController) PendingFees(c *fiber.Ctx) error {
	bookings, err := bc.Ledger.PendingFeeBookings()
	if err != nil {
		logger.Error("Failed to list pending fee bookings", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list pending fees",
			Data:    nil,
		})
	}

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Pending fee bookings retrieved successfully",
		Data:    bookings,
	})
}

// LedgerHistory returns the payment audit trail of one booking for dispute
// resolution. Admin only (enforced on the route).
func (bc *BookingController) LedgerHistory(c *fiber.Ctx) error {
	bookingID, err := c.ParamsInt("id")
	if err != nil || bookingID <= 0 {
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
			Data:    nil,
		})
	}

	entries, err := bc.Ledger.History(uint(bookingID))
	if err != nil {
		logger.Error("Failed to load ledger history", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to load ledger history",
			Data:    nil,
		})
	}

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Ledger history retrieved successfully",
		Data:    entries,
	})
}

func (bc *BookingController) mayRead(userID uint, role string, b *bookingModel.Booking) bool {
	if role == constants.RoleAdmin {
		return true
	}
	if userID == b.ClientID {
		return true
	}
	if role == constants.RoleProvider {
		var provider catalogModel.Provider
		if err := bc.DB.Where("user_id = ?", userID).First(&provider).Error; err != nil {
			return false
		}
		return provider.ID == b.ProviderID
	}
	return false
}

func parseDateQuery(c *fiber.Ctx, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.New("invalid " + key + " date, expected YYYY-MM-DD")
	}
	return t, nil
}
