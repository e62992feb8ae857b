package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"bank/internal/models"
	"bank/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles HTTP requests for account management.
type AccountHandler struct {
	service  *services.AccountService
	validate *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *services.AccountService) *AccountHandler {
	return &AccountHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the account routes with the Fiber app.
func (h *AccountHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/create_account", h.HandleCreateAccount)
	router.Post("/update_balance", h.HandleUpdateBalance)
	router.Post("/delete_account", h.HandleDeleteAccount)
	router.Post("/get_balance", h.HandleGetBalance)
}

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Amount   int64  `json:"amount" validate:"gte=0"`
}

// HandleCreateAccount creates a new account and mails the generated unique
// ID to the owner.
func (h *AccountHandler) HandleCreateAccount(c *fiber.Ctx) error {
	var req CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create account request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	account, notified, err := h.service.CreateAccount(req.Username, req.Email, req.Amount)
	if err != nil {
		log.Printf("Error creating account for %s: %v", req.Email, err)
		if errors.Is(err, models.ErrDuplicateEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "This email is already associated with an account. Please delete the old account or use a different email.",
			})
		}
		if errors.Is(err, models.ErrConstraintViolation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Integrity error: %v", err),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Database error: %v", err),
		})
	}

	message := "Account created successfully! Check your email for the unique ID."
	if !notified {
		message = "Account created, but email failed to send."
	}

	// The unique ID is echoed here for testing convenience only. It is the
	// login credential, so a production deployment must not return it.
	return c.JSON(fiber.Map{
		"message":   message,
		"unique_id": account.UniqueID,
	})
}

// UpdateBalanceRequest represents the request body for a balance update.
type UpdateBalanceRequest struct {
	UniqueID string `json:"unique_id" validate:"required"`
	Action   string `json:"action" validate:"required"`
	Amount   int64  `json:"amount" validate:"gte=0"`
}

// HandleUpdateBalance applies a deposit or withdrawal to an account.
func (h *AccountHandler) HandleUpdateBalance(c *fiber.Ctx) error {
	var req UpdateBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update balance request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	balance, err := h.service.UpdateBalance(req.UniqueID, req.Action, req.Amount)
	if err != nil {
		log.Printf("Error updating balance for account %s: %v", req.UniqueID, err)
		if errors.Is(err, models.ErrAccountNotFound) {
			return accountNotFoundResponse(c)
		}
		if errors.Is(err, models.ErrInsufficientBalance) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Insufficient balance!",
			})
		}
		if errors.Is(err, models.ErrUnknownAction) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Unknown action! Use 'deposit' or 'withdraw'.",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Database error: %v", err),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%s successful!", capitalize(req.Action)),
		"balance": balance,
	})
}

// DeleteAccountRequest represents the request body for account deletion.
type DeleteAccountRequest struct {
	UniqueID string `json:"unique_id" validate:"required"`
}

// HandleDeleteAccount permanently deletes an account.
func (h *AccountHandler) HandleDeleteAccount(c *fiber.Ctx) error {
	var req DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing delete account request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.DeleteAccount(req.UniqueID); err != nil {
		log.Printf("Error deleting account %s: %v", req.UniqueID, err)
		if errors.Is(err, models.ErrAccountNotFound) {
			return accountNotFoundResponse(c)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Database error: %v", err),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Account deleted successfully!",
	})
}

// GetBalanceRequest represents the request body for a balance query.
type GetBalanceRequest struct {
	UniqueID string `json:"unique_id" validate:"required"`
}

// HandleGetBalance returns the current balance of an account.
func (h *AccountHandler) HandleGetBalance(c *fiber.Ctx) error {
	var req GetBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing get balance request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	balance, err := h.service.GetBalance(req.UniqueID)
	if err != nil {
		log.Printf("Error getting balance for account %s: %v", req.UniqueID, err)
		if errors.Is(err, models.ErrAccountNotFound) {
			return accountNotFoundResponse(c)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Database error: %v", err),
		})
	}

	return c.JSON(fiber.Map{
		"balance": balance,
	})
}

// validationErrorResponse renders validator failures as a per-field error map.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

func accountNotFoundResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Account not found! Please check your unique ID.",
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
