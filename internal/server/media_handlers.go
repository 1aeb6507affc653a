package server

import (
	"errors"

	"dev404/internal/models"
	"dev404/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetMedia handles GET /media?sectionKey=&featured=
func (s *Server) GetMedia(c *fiber.Ctx) error {
	filter := repository.MediaFilter{
		SectionKey: models.SectionKey(c.Query("sectionKey")),
		// Only the literal "true" narrows to featured items.
		Featured: c.Query("featured") == "true",
	}

	items, err := s.mediaRepo.List(c.Context(), filter)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(items)
}

// GetMediaItem handles GET /media/:id
func (s *Server) GetMediaItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Media"))
	}

	item, err := s.mediaRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Media"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(item)
}

// CreateMedia handles POST /media
func (s *Server) CreateMedia(c *fiber.Ctx) error {
	var req struct {
		Type        models.MediaType  `json:"type"`
		SectionKey  models.SectionKey `json:"sectionKey"`
		Title       string            `json:"title"`
		YoutubeID   string            `json:"youtubeId"`
		PlaylistID  string            `json:"playlistId"`
		Description string            `json:"description"`
		Tags        []string          `json:"tags"`
		Featured    bool              `json:"featured"`
		Order       int               `json:"order"`
		Thumbnail   string            `json:"thumbnail"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if !req.Type.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Type must be youtube_video or youtube_playlist"))
	}
	// Membership in the section key set is checked; whether a section with
	// that key exists is not. Dangling references are permitted.
	if !req.SectionKey.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("SectionKey must be one of: music, videos, comics, movies, series"))
	}
	if req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required"))
	}

	item := &models.MediaItem{
		Type:        req.Type,
		SectionKey:  req.SectionKey,
		Title:       req.Title,
		YoutubeID:   req.YoutubeID,
		PlaylistID:  req.PlaylistID,
		Description: req.Description,
		Tags:        req.Tags,
		Featured:    req.Featured,
		Order:       req.Order,
		Thumbnail:   req.Thumbnail,
	}

	if err := s.mediaRepo.Create(c.Context(), item); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateMedia handles PUT /media/:id
func (s *Server) UpdateMedia(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
	}

	var req struct {
		Type        *models.MediaType  `json:"type"`
		SectionKey  *models.SectionKey `json:"sectionKey"`
		Title       *string            `json:"title"`
		YoutubeID   *string            `json:"youtubeId"`
		PlaylistID  *string            `json:"playlistId"`
		Description *string            `json:"description"`
		Tags        *[]string          `json:"tags"`
		Featured    *bool              `json:"featured"`
		Order       *int               `json:"order"`
		Thumbnail   *string            `json:"thumbnail"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Type != nil && !req.Type.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Type must be youtube_video or youtube_playlist"))
	}
	if req.SectionKey != nil && !req.SectionKey.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("SectionKey must be one of: music, videos, comics, movies, series"))
	}

	item, err := s.mediaRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Media"))
		}
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.SectionKey != nil {
		item.SectionKey = *req.SectionKey
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.YoutubeID != nil {
		item.YoutubeID = *req.YoutubeID
	}
	if req.PlaylistID != nil {
		item.PlaylistID = *req.PlaylistID
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Tags != nil {
		item.Tags = *req.Tags
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	if req.Thumbnail != nil {
		item.Thumbnail = *req.Thumbnail
	}

	if err := s.mediaRepo.Update(c.Context(), item); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(item)
}

// DeleteMedia handles DELETE /media/:id
func (s *Server) DeleteMedia(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Media"))
	}

	if err := s.mediaRepo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Media"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"message": "Media deleted"})
}
