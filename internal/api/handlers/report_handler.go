package handlers

import (
	"github.com/gofiber/fiber/v2"

	"Recetario-Backend/domain"
	"Recetario-Backend/internal/api/presenters"
	"Recetario-Backend/pkg/report"
)

type (
	ReportHandler interface {
		GetProfitability(c *fiber.Ctx) error
		GetRecipesByMenu(c *fiber.Ctx) error
		GetMostUsedIngredients(c *fiber.Ctx) error
		GetIngredientsByCategory(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
	}
)

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandler{reportService: reportService}
}

func (h *reportHandler) GetProfitability(c *fiber.Ctx) error {
	res, err := h.reportService.GetProfitability(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProfitability, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfitability)
}

func (h *reportHandler) GetRecipesByMenu(c *fiber.Ctx) error {
	res, err := h.reportService.GetRecipesByMenu(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipesByMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipesByMenu)
}

func (h *reportHandler) GetMostUsedIngredients(c *fiber.Ctx) error {
	res, err := h.reportService.GetMostUsedIngredients(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredientUse, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredientUse)
}

func (h *reportHandler) GetIngredientsByCategory(c *fiber.Ctx) error {
	res, err := h.reportService.GetIngredientsByCategory(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategoryStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategoryStats)
}
