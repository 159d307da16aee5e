package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-parser/internal/models"
	"alfredoptarigan/resume-parser/internal/services"
)

type ParseHandler struct {
	parser services.ResumeParserService
}

func NewParseHandler(parser services.ResumeParserService) *ParseHandler {
	return &ParseHandler{
		parser: parser,
	}
}

// HandleParseResume handles POST /parse-resume/
func (h *ParseHandler) HandleParseResume(c *fiber.Ctx) error {
	var req models.ParseResumeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: "Invalid request payload",
		})
	}

	if req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: "url is required",
		})
	}

	result, err := h.parser.ParseResume(c.Context(), req.URL)
	if err != nil {
		var fetchErr *services.FetchError
		if errors.As(err, &fetchErr) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Detail: err.Error(),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Detail: err.Error(),
		})
	}

	return c.JSON(result)
}

// HandleHealth handles GET /health
func (h *ParseHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "OK",
	})
}
