package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bank-crm/internal/api/dto"
	"github.com/spec-kit/bank-crm/internal/chatbot"
)

// ChatHandler drives the caller's assistant widget.
type ChatHandler struct {
	chats *chatbot.Registry
}

func NewChatHandler(chats *chatbot.Registry) *ChatHandler {
	return &ChatHandler{chats: chats}
}

func (h *ChatHandler) widget(c *fiber.Ctx) (*chatbot.Widget, error) {
	p, err := principal(c)
	if err != nil {
		return nil, err
	}
	return h.chats.Get(p.SessionID), nil
}

func chatState(w *chatbot.Widget) dto.ChatResponse {
	return dto.ChatResponse{Open: w.IsOpen(), Pending: w.Pending(), Messages: w.Messages()}
}

// Transcript handles GET /chat.
func (h *ChatHandler) Transcript(c *fiber.Ctx) error {
	w, err := h.widget(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": chatState(w)})
}

// Send handles POST /chat/messages. Blank text is accepted but ignored.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	w, err := h.widget(c)
	if err != nil {
		return err
	}
	var req dto.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	msg, ok := w.Send(req.Text)
	if !ok {
		return c.Status(http.StatusAccepted).JSON(fiber.Map{
			"data": dto.ChatSendResponse{ChatResponse: chatState(w)},
		})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.ChatSendResponse{Sent: &msg, ChatResponse: chatState(w)},
	})
}

// Open handles POST /chat/open.
func (h *ChatHandler) Open(c *fiber.Ctx) error {
	w, err := h.widget(c)
	if err != nil {
		return err
	}
	w.Open()
	return c.JSON(fiber.Map{"data": chatState(w)})
}

// Close handles POST /chat/close. The transcript is kept.
func (h *ChatHandler) Close(c *fiber.Ctx) error {
	w, err := h.widget(c)
	if err != nil {
		return err
	}
	w.Close()
	return c.JSON(fiber.Map{"data": chatState(w)})
}
