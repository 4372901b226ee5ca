package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/blushy/internal/services"
	"go.uber.org/zap"
)

func (handler *Handler) Chat(c *fiber.Ctx) error {
	var request chatRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	var prediction services.CyclePrediction
	if view, err := handler.calendarService.PredictionView(handler.today()); err != nil {
		handler.logger.Warn("companion prediction context unavailable", zap.Error(err))
	} else if view.HasCycleStart {
		prediction = view.Prediction
	}

	reply, err := handler.companion.Reply(c.UserContext(), currentLanguage(c), request.Message, prediction)
	if err != nil {
		if errors.Is(err, services.ErrEmptyChatMessage) {
			return apiError(c, fiber.StatusBadRequest, "message is required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to reply")
	}
	return c.JSON(reply)
}

func (handler *Handler) GetChatHistory(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return apiError(c, fiber.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	messages, err := handler.companion.History(limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load chat history")
	}
	return c.JSON(chatHistoryResponse{
		Greeting: handler.companion.Greeting(currentLanguage(c)),
		Messages: messages,
	})
}

func (handler *Handler) ClearChatHistory(c *fiber.Ctx) error {
	if err := handler.repositories.ChatMessages.DeleteAll(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear chat history")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
