package server

import (
	"dev404/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateContact handles POST /contact
func (s *Server) CreateContact(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Subject is the only optional field.
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing required fields"))
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.contactRepo.Create(c.Context(), msg); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Contact form submitted",
		"id":      msg.ID,
	})
}

// GetContacts handles GET /contact (admin only, unprotected placeholder)
func (s *Server) GetContacts(c *fiber.Ctx) error {
	msgs, err := s.contactRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(msgs)
}
