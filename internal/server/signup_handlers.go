package server

import (
	"errors"

	"dev404/internal/models"
	"dev404/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateSignup handles POST /signup
func (s *Server) CreateSignup(c *fiber.Ctx) error {
	var req struct {
		Email    string          `json:"email"`
		Interest models.Interest `json:"interest"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email is required"))
	}
	if req.Interest == "" {
		req.Interest = models.InterestGeneral
	} else if !req.Interest.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Interest must be one of: comics, movies, series, general"))
	}

	signup := &models.Signup{
		Email:            req.Email,
		Interest:         req.Interest,
		VerificationCode: uuid.NewString(),
	}

	// Single atomic insert: the store's unique index decides the winner
	// between concurrent submissions for the same address.
	if err := s.signupRepo.Create(c.Context(), signup); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return models.RespondWithError(c, fiber.StatusConflict,
				models.NewConflictError("Email already signed up"))
		}
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Successfully signed up",
		"id":      signup.ID,
	})
}

// GetSignups handles GET /signup (admin only, unprotected placeholder)
func (s *Server) GetSignups(c *fiber.Ctx) error {
	signups, err := s.signupRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(signups)
}
