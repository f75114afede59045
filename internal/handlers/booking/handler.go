package booking

import (
	"net/http"
	"suitespot/infras/otel"
	"suitespot/internal/domains/booking/model"
	"suitespot/internal/domains/booking/model/dto"
	"suitespot/internal/domains/booking/service"
	"suitespot/shared"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/validator"
	"suitespot/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	requestParamGuestID  = "guestId"
	requestParamRoomType = "room_type"
)

var sortableFields = []string{
	model.FieldCheckInDate,
	model.FieldCheckOutDate,
	model.FieldStatus,
	model.FieldTotalAmount,
	constant.FieldCreatedAt,
}

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/availability", handler.SearchAvailableRooms)
		routerGroup.Post("/search", handler.SearchBookings)
		routerGroup.Get("/guest/{guestId}", handler.GetGuestBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
		routerGroup.Patch("/{id}/status", handler.UpdateBookingStatus)
		routerGroup.Post("/{id}/confirm", handler.ConfirmBooking)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Reserve a room for a guest. The room must be free for the whole stay.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + shared.Operator(ctx))

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param guest_id query string false "Filter by guest ID"
// @Param room_id query string false "Filter by room ID"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Sanitize(constant.FieldCreatedAt, sortableFields...)

	query := r.URL.Query()

	filter := dto.BookingFilter{
		Status:  query.Get(model.FieldStatus),
		GuestID: query.Get(model.FieldGuestID),
		RoomID:  query.Get(model.FieldRoomID),
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking with its guest and room.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingDetailResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.GetWithRelations(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

func (handler *Handler) GetGuestBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestBookings")
	defer scope.End()

	bookings, err := handler.service.GetByGuest(ctx, chi.URLParam(r, requestParamGuestID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// UpdateBooking changes dates, room, guest, status, requests or discount of a booking.
// @Summary Update a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id} [patch]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully by user " + shared.Operator(ctx))

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBookingStatus writes a status directly. Unknown statuses are rejected.
// @Summary Set a booking status
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "Update Booking Status Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.UpdateStatus(ctx, id, model.Status(req.Status))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

func (handler *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	booking, err := handler.service.Confirm(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	booking, err := handler.service.Cancel(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking removes a booking that has not been billed.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted successfully by user " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// SearchAvailableRooms lists active rooms free for the whole requested stay.
// @Summary Search available rooms
// @Tags Booking
// @Produce json
// @Param check_in_date query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out_date query string true "Check-out date (YYYY-MM-DD)"
// @Param room_type query string false "Room type"
// @Success 200 {object} response.Data[dto.AvailableRoomsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/availability [get]
func (handler *Handler) SearchAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchAvailableRooms")
	defer scope.End()

	query := r.URL.Query()

	req := dto.AvailabilityRequest{
		CheckInDate:  query.Get(model.FieldCheckInDate),
		CheckOutDate: query.Get(model.FieldCheckOutDate),
		RoomType:     query.Get(requestParamRoomType),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability query")

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.SearchAvailableRooms(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search available rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// SearchBookings finds bookings by free text, stay window and statuses.
// @Summary Search bookings
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search Request"
// @Success 200 {object} response.Data[[]dto.BookingDetailResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/search [post]
func (handler *Handler) SearchBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchBookings")
	defer scope.End()

	req := dto.SearchRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}
