package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-server/entities"
	"booking-server/usecases"
	"booking-server/verify"
)

type BookingHandler struct {
	useCase *usecases.BookingUseCase
	users   *usecases.AuthUseCase
	baseURL string
}

func NewBookingHandler(useCase *usecases.BookingUseCase, users *usecases.AuthUseCase, baseURL string) *BookingHandler {
	return &BookingHandler{useCase: useCase, users: users, baseURL: baseURL}
}

// List handles GET /api/v1/bookings. Admins see every booking, users only
// their own.
func (h *BookingHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	var bookings []entities.Booking
	var err error
	if user.IsAdmin() {
		bookings, err = h.useCase.ListAll()
	} else {
		bookings, err = h.useCase.ListByUser(user.ID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

type createBookingRequest struct {
	Service  string `json:"service" binding:"required"`
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
}

// Create handles POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	booking, err := h.useCase.CreateBooking(CurrentUser(c), req.Service, req.Date, req.TimeSlot)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PATCH /api/v1/bookings/:id/status (admin only,
// enforced by middleware).
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	booking, err := h.useCase.UpdateStatus(CurrentUser(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

type rescheduleRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
}

// Reschedule handles PATCH /api/v1/bookings/:id/schedule. Owners and
// admins may move a booking; status is untouched.
func (h *BookingHandler) Reschedule(c *gin.Context) {
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if !h.ownsBooking(c, c.Param("id")) {
		return
	}

	booking, err := h.useCase.Reschedule(c.Param("id"), req.Date, req.TimeSlot)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

type reviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// Review handles POST /api/v1/bookings/:id/review
func (h *BookingHandler) Review(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if !h.ownsBooking(c, c.Param("id")) {
		return
	}

	booking, err := h.useCase.AttachReview(c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// QRCode handles GET /api/v1/bookings/:id/qrcode and returns a PNG
// receipt embedding the verification URL.
func (h *BookingHandler) QRCode(c *gin.Context) {
	if !h.ownsBooking(c, c.Param("id")) {
		return
	}

	booking, err := h.useCase.GetBooking(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	owner, err := h.users.GetUser(booking.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	png, err := verify.QRCodePNG(h.baseURL, booking, owner, 300)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// ownsBooking allows the booking's owner and any admin; other callers get
// a 403 and false.
func (h *BookingHandler) ownsBooking(c *gin.Context, bookingID string) bool {
	user := CurrentUser(c)
	if user.IsAdmin() {
		return true
	}
	booking, err := h.useCase.GetBooking(bookingID)
	if err != nil {
		respondError(c, err)
		return false
	}
	if booking.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return false
	}
	return true
}
