package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-server/usecases"
	"booking-server/verify"
)

// VerifyHandler resolves booking snapshots for the public verification
// page. The token in the data parameter is the primary source of truth;
// the store is only consulted when no token is present.
type VerifyHandler struct {
	bookings *usecases.BookingUseCase
	users    *usecases.AuthUseCase
}

func NewVerifyHandler(bookings *usecases.BookingUseCase, users *usecases.AuthUseCase) *VerifyHandler {
	return &VerifyHandler{bookings: bookings, users: users}
}

// Verify handles GET /verify/:id?data=<token>
func (h *VerifyHandler) Verify(c *gin.Context) {
	if token := c.Query("data"); token != "" {
		snap, err := verify.Decode(token)
		if err != nil {
			// Malformed tokens read as a missing booking, never a crash.
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"booking": snap, "source": "token"})
		return
	}

	booking, err := h.bookings.GetBooking(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	owner, err := h.users.GetUser(booking.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": verify.NewSnapshot(booking, owner), "source": "store"})
}
