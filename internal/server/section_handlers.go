package server

import (
	"errors"

	"dev404/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetSections handles GET /sections
func (s *Server) GetSections(c *fiber.Ctx) error {
	sections, err := s.sectionRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(sections)
}

// GetSection handles GET /sections/:key
func (s *Server) GetSection(c *fiber.Ctx) error {
	key := models.SectionKey(c.Params("key"))

	section, err := s.sectionRepo.GetByKey(c.Context(), key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Section"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(section)
}

// CreateSection handles POST /sections
func (s *Server) CreateSection(c *fiber.Ctx) error {
	var req struct {
		Key          models.SectionKey    `json:"key"`
		Title        string               `json:"title"`
		Description  string               `json:"description"`
		Status       models.SectionStatus `json:"status"`
		HeroText     string               `json:"heroText"`
		ThemeVariant string               `json:"themeVariant"`
		Icon         string               `json:"icon"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if !req.Key.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Key must be one of: music, videos, comics, movies, series"))
	}
	if req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required"))
	}
	if req.Status == "" {
		req.Status = models.SectionStatusComingSoon
	} else if !req.Status.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Status must be live or comingSoon"))
	}
	if req.ThemeVariant == "" {
		req.ThemeVariant = "default"
	}

	section := &models.Section{
		Key:          req.Key,
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		HeroText:     req.HeroText,
		ThemeVariant: req.ThemeVariant,
		Icon:         req.Icon,
	}

	if err := s.sectionRepo.Create(c.Context(), section); err != nil {
		// A duplicate key surfaces here as the store's translated uniqueness
		// violation and is rendered as a 400 validation error, matching the
		// original behavior.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Section with this key already exists"))
		}
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(section)
}

// UpdateSection handles PUT /sections/:key
func (s *Server) UpdateSection(c *fiber.Ctx) error {
	key := models.SectionKey(c.Params("key"))

	// Pointer fields distinguish "absent" from "set to zero value"; supplied
	// fields replace the stored ones wholesale.
	var req struct {
		Title        *string               `json:"title"`
		Description  *string               `json:"description"`
		Status       *models.SectionStatus `json:"status"`
		HeroText     *string               `json:"heroText"`
		ThemeVariant *string               `json:"themeVariant"`
		Icon         *string               `json:"icon"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Status != nil && !req.Status.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Status must be live or comingSoon"))
	}

	section, err := s.sectionRepo.GetByKey(c.Context(), key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Section"))
		}
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if req.Title != nil {
		section.Title = *req.Title
	}
	if req.Description != nil {
		section.Description = *req.Description
	}
	if req.Status != nil {
		section.Status = *req.Status
	}
	if req.HeroText != nil {
		section.HeroText = *req.HeroText
	}
	if req.ThemeVariant != nil {
		section.ThemeVariant = *req.ThemeVariant
	}
	if req.Icon != nil {
		section.Icon = *req.Icon
	}

	// Update always refreshes updatedAt, even for a no-op body.
	if err := s.sectionRepo.Update(c.Context(), section); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(section)
}
