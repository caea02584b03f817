package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"members-only/helper"
	"members-only/middleware"
	"members-only/models"
	"members-only/services"
)

var messageMessages = map[string]string{
	"title": "Title must not be empty.",
	"text":  "Text must not be empty.",
}

type MessageHandler struct {
	messageService services.MessageService
	Helper         *helper.HTTPHelper
}

func NewMessageHandler(messageService services.MessageService, h *helper.HTTPHelper) *MessageHandler {
	return &MessageHandler{messageService: messageService, Helper: h}
}

func (h *MessageHandler) ShowBoard(c *gin.Context) {
	messages, err := h.messageService.ListMessages()
	if err != nil {
		h.Helper.SendServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":       "Members Only Board",
		"messages":    messages,
		"currentUser": middleware.GetCurrentUser(c),
	})
}

func (h *MessageHandler) PostMessage(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/log-in")
		return
	}

	var form models.NewMessageForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.SendServerError(c, err)
		return
	}
	form.Sanitize()

	if fieldErrors := h.Helper.ValidateForm(form, messageMessages); len(fieldErrors) > 0 {
		// Nothing is persisted; the board is re-rendered with the rejected
		// draft and its errors alongside the existing messages.
		messages, err := h.messageService.ListMessages()
		if err != nil {
			h.Helper.SendServerError(c, err)
			return
		}

		c.HTML(http.StatusOK, "index.html", gin.H{
			"title":       "Members Only Board",
			"messages":    messages,
			"currentUser": user,
			"newMessage":  form,
			"errors":      fieldErrors,
		})
		return
	}

	if _, err := h.messageService.CreateMessage(form, user); err != nil {
		h.Helper.SendServerError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *MessageHandler) ConfirmDelete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	message, err := h.messageService.GetMessage(uint(id))
	if err != nil {
		var notFound models.ErrorNotFound
		if errors.As(err, &notFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.Helper.SendServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "delete-message.html", gin.H{
		"title":       "Delete Message",
		"message":     message,
		"currentUser": middleware.GetCurrentUser(c),
	})
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.messageService.DeleteMessage(uint(id)); err != nil {
		h.Helper.SendServerError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}
