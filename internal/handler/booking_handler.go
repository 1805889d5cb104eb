package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/confirmation"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/dto"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/service"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/booking"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// RegisterRoutes wires the booking API. requireAdmin guards every mutation
// of an existing booking; submission and listing stay open so the booking
// form and the admin dashboard share them.
func (h *BookingHandler) RegisterRoutes(e *echo.Echo, requireAdmin echo.MiddlewareFunc) {
	api := e.Group("/api/v1/bookings")
	api.POST("", h.SubmitBooking)
	api.GET("", h.ListBookings)
	api.GET("/reference/:ref/confirmation", h.ConfirmationCard)

	api.POST("/:index/confirm", h.ConfirmBooking, requireAdmin)
	api.POST("/:index/reject", h.RejectBooking, requireAdmin)
	api.DELETE("/:index", h.DeleteBooking, requireAdmin)
	api.DELETE("", h.ClearAllBookings, requireAdmin)
}

func (h *BookingHandler) SubmitBooking(c echo.Context) error {
	var req booking.Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	req = req.Normalized()
	if verr := booking.Validate(req); verr != nil {
		return c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Message: "validation failed",
			Fields:  verr.Fields,
		})
	}

	idemKey := c.Request().Header.Get("X-Idempotency-Key")

	b, err := h.svc.SubmitBooking(c.Request().Context(), req, idemKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.SubmitBookingResponse{
		Accepted: true,
		Booking:  dto.ToBooking(b),
	})
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.svc.ListBookings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToBookings(bookings))
}

func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	index, err := bookingIndex(c)
	if err != nil {
		return err
	}

	b, err := h.svc.ConfirmBooking(c.Request().Context(), index)
	if err != nil {
		return statusMutationError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBooking(b))
}

func (h *BookingHandler) RejectBooking(c echo.Context) error {
	index, err := bookingIndex(c)
	if err != nil {
		return err
	}

	b, err := h.svc.RejectBooking(c.Request().Context(), index)
	if err != nil {
		return statusMutationError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBooking(b))
}

func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	index, err := bookingIndex(c)
	if err != nil {
		return err
	}

	if _, err := h.svc.DeleteBooking(c.Request().Context(), index); err != nil {
		return statusMutationError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BookingHandler) ClearAllBookings(c echo.Context) error {
	if err := h.svc.ClearAllBookings(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// ConfirmationCard renders the printable booking-confirmation PDF looked up
// by the stable reference assigned at creation.
func (h *BookingHandler) ConfirmationCard(c echo.Context) error {
	ref := c.Param("ref")

	b, err := h.svc.GetByReference(c.Request().Context(), ref)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "booking not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	pdf, err := confirmation.Build(b)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`inline; filename="booking-%s.pdf"`, b.Reference))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func bookingIndex(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid booking index")
	}
	return index, nil
}

func statusMutationError(err error) error {
	if errors.Is(err, service.ErrBookingNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
