package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Manav933/Feedback/internal/api/dto"
	"github.com/Manav933/Feedback/internal/export"
	"github.com/Manav933/Feedback/internal/service"
	"github.com/Manav933/Feedback/internal/validation"
	apperrors "github.com/Manav933/Feedback/pkg/util"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// FeedbackHandler exposes the feedback resource.
type FeedbackHandler struct {
	service *service.FeedbackService
}

// NewFeedbackHandler constructs handler.
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: feedbackService}
}

// Create POST /feedback. Open to anonymous submitters.
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	feedback, err := h.service.Submit(c.Context(), validation.FeedbackInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Rating:  req.Rating,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewFeedbackResponse(feedback)})
}

// List GET /feedback.
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	params, err := parseListParams(c)
	if err != nil {
		return err
	}
	records, err := h.service.List(c.Context(), params)
	if err != nil {
		return err
	}
	items := make([]dto.FeedbackResponse, 0, len(records))
	for i := range records {
		items = append(items, dto.NewFeedbackResponse(&records[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /feedback/:id.
func (h *FeedbackHandler) Get(c *fiber.Ctx) error {
	feedback, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFeedbackResponse(feedback)})
}

// Update PUT /feedback/:id.
func (h *FeedbackHandler) Update(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	feedback, err := h.service.Update(c.Context(), c.Params("id"), validation.FeedbackInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Rating:  req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFeedbackResponse(feedback)})
}

// Delete DELETE /feedback/:id.
func (h *FeedbackHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Stats GET /feedback/stats. Aggregates over the unfiltered table.
func (h *FeedbackHandler) Stats(c *fiber.Ctx) error {
	summary, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(summary)
}

// ExportCSV GET /feedback/export_csv. Honors the same query parameters as
// the list endpoint.
func (h *FeedbackHandler) ExportCSV(c *fiber.Ctx) error {
	params, err := parseListParams(c)
	if err != nil {
		return err
	}
	data, err := h.service.ExportCSV(c.Context(), params)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.CSVFilename))
	return c.Send(data)
}

// ExportExcel GET /feedback/export_excel.
func (h *FeedbackHandler) ExportExcel(c *fiber.Ctx) error {
	params, err := parseListParams(c)
	if err != nil {
		return err
	}
	data, err := h.service.ExportExcel(c.Context(), params)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, excelContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.ExcelFilename))
	return c.Send(data)
}

func parseListParams(c *fiber.Ctx) (service.ListParams, error) {
	params := service.ListParams{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}
	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			return service.ListParams{}, apperrors.NewValidationError("rating must be an integer", nil)
		}
		params.Rating = &rating
	}
	return params, nil
}
