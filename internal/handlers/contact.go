package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skinglow/skinglow-backend/internal/pkg/errors"
	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
	"github.com/skinglow/skinglow-backend/internal/services"
)

type ContactHandler struct {
	contactService services.ContactService
	log            *logger.Logger
}

func NewContactHandler(contactService services.ContactService, log *logger.Logger) *ContactHandler {
	return &ContactHandler{contactService: contactService, log: log.With("handler", "ContactHandler")}
}

type SubmitContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type UpdateContactInput struct {
	Status string `json:"status"`
}

// POST /api/contact
func (ch *ContactHandler) SubmitContact(c *gin.Context) {
	var input SubmitContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondMessage(c, http.StatusBadRequest, "All fields required")
		return
	}

	contact, err := ch.contactService.Submit(c.Request.Context(), input.Name, input.Email, input.Message)
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		RespondMessage(c, http.StatusBadRequest, "All fields required")
	case err != nil:
		ch.log.Error("SubmitContact failed", "error", err)
		RespondMessage(c, http.StatusInternalServerError, "Internal server error")
	default:
		RespondOK(c, gin.H{
			"message":   "Thank you for contacting us! We will get back to you soon.",
			"contactId": contact.ID,
		})
	}
}

// GET /api/contact
func (ch *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := ch.contactService.List(c.Request.Context())
	if err != nil {
		ch.log.Error("ListContacts failed", "error", err)
		RespondMessage(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	RespondOK(c, contacts)
}

// GET /api/contact/:id
func (ch *ContactHandler) GetContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		RespondMessage(c, http.StatusNotFound, "Contact not found")
		return
	}

	contact, err := ch.contactService.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		RespondMessage(c, http.StatusNotFound, "Contact not found")
	case err != nil:
		ch.log.Error("GetContact failed", "contact_id", id, "error", err)
		RespondMessage(c, http.StatusInternalServerError, "Internal server error")
	default:
		RespondOK(c, contact)
	}
}

// PUT /api/contact/:id
func (ch *ContactHandler) UpdateContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		RespondMessage(c, http.StatusNotFound, "Contact not found")
		return
	}

	var input UpdateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondMessage(c, http.StatusBadRequest, "Status required")
		return
	}

	contact, err := ch.contactService.UpdateStatus(c.Request.Context(), id, input.Status)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		RespondMessage(c, http.StatusNotFound, "Contact not found")
	case err != nil:
		ch.log.Error("UpdateContact failed", "contact_id", id, "error", err)
		RespondMessage(c, http.StatusInternalServerError, "Internal server error")
	default:
		RespondOK(c, gin.H{"message": "Contact status updated", "contact": contact})
	}
}

// DELETE /api/contact/:id
func (ch *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		RespondMessage(c, http.StatusNotFound, "Contact not found")
		return
	}

	err := ch.contactService.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		RespondMessage(c, http.StatusNotFound, "Contact not found")
	case err != nil:
		ch.log.Error("DeleteContact failed", "contact_id", id, "error", err)
		RespondMessage(c, http.StatusInternalServerError, "Internal server error")
	default:
		RespondOK(c, gin.H{"message": "Contact deleted"})
	}
}
