package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tazhibayda/contact-service/internal/contact"
	"github.com/tazhibayda/contact-service/internal/log"
	"github.com/tazhibayda/contact-service/internal/metrics"
)

type Handler struct {
	Store contact.Store
	Proc  *contact.Processor
	// Dev adds a stack field to 500 envelopes with the underlying cause.
	Dev bool
}

func NewHandler(store contact.Store, proc *contact.Processor, dev bool) *Handler {
	return &Handler{Store: store, Proc: proc, Dev: dev}
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ListContacts godoc
// @Summary List submissions, newest first
// @Tags contact
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/contact [get]
func (h *Handler) ListContacts(c *gin.Context) {
	items, err := h.Store.ListContacts(c.Request.Context())
	if err != nil {
		log.Errorf("list contacts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch contacts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

// SubmitContact godoc
// @Summary Accept a contact form submission
// @Tags contact
// @Accept json
// @Produce json
// @Param payload body contactReq true "name, email, subject, message"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/contact [post]
func (h *Handler) SubmitContact(c *gin.Context) {
	var in contactReq
	// Malformed JSON leaves the fields empty and fails validation below,
	// same envelope as a missing field.
	_ = c.ShouldBindJSON(&in)

	ct, err := h.Proc.Process(c.Request.Context(), contact.Input{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	})
	if err != nil {
		var rej *contact.RejectError
		if errors.As(err, &rej) {
			metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": rej.Message})
			return
		}
		metrics.SubmissionsTotal.WithLabelValues("failed").Inc()
		log.Errorf("contact form: %v", err)
		body := gin.H{"success": false, "error": err.Error()}
		var fe *contact.FailError
		if h.Dev && errors.As(err, &fe) && fe.Err != nil {
			body["stack"] = fe.Err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message sent successfully",
		"data":    gin.H{"contactId": ct.ID.Hex()},
	})
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (h *Handler) Health(c *gin.Context) {
	db := "connected"
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		db = "disconnected"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"database":  db,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
