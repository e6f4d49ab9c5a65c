package handlers

import (
	"errors"
	"net/http"

	"quickbite-api/store"
	"quickbite-api/tracking"

	"github.com/gin-gonic/gin"
)

var (
	engine  *store.Store
	tracker *tracking.Simulator
)

// Init wires the handler package to the application state store and the
// tracking simulator. Handlers are a thin view layer: they read the
// store's outputs and dispatch actions, nothing more.
func Init(s *store.Store, t *tracking.Simulator) {
	engine = s
	tracker = t
}

// respondError maps engine errors onto HTTP responses. All engine
// failures are local and recoverable; they become user-facing messages,
// never 500s.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrItemNotFound),
		errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidCoupon),
		errors.Is(err, store.ErrEmptyCart),
		errors.Is(err, store.ErrMissingAddress):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		var minErr *store.MinimumNotMetError
		if errors.As(err, &minErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":           minErr.Error(),
				"min_order_value": minErr.Min,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
