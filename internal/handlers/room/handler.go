package room

import (
	"net/http"
	"strconv"
	"suitespot/infras/otel"
	"suitespot/internal/domains/room/model"
	"suitespot/internal/domains/room/model/dto"
	"suitespot/internal/domains/room/service"
	"suitespot/shared"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/failure"
	"suitespot/shared/validator"
	"suitespot/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	requestParamNumber = "number"
	requestParamLimit  = "limit"

	defaultHistoryLimit = 20
)

var sortableFields = []string{
	model.FieldNumber,
	model.FieldType,
	model.FieldStatus,
	model.FieldPrice,
	model.FieldFloor,
	constant.FieldCreatedAt,
}

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/number/{number}", handler.GetRoomByNumber)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
		routerGroup.Patch("/{id}/status", handler.UpdateRoomStatus)
		routerGroup.Get("/{id}/history", handler.GetRoomStatusHistory)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms [post]
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room created successfully by user " + shared.Operator(ctx))

	response.WithJSON(writer, http.StatusCreated, room)
}

// GetRooms retrieves all rooms based on query parameters.
// @Summary Get all rooms
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Param floor query integer false "Filter by floor"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Sanitize(model.FieldNumber, sortableFields...)

	query := r.URL.Query()

	filter := dto.RoomFilter{
		Status: query.Get(model.FieldStatus),
		Type:   query.Get(model.FieldType),
		Active: shared.ConvertStringToBool(query.Get(model.FieldActive)),
	}

	if floor, err := strconv.Atoi(query.Get(model.FieldFloor)); err == nil {
		filter.Floor = &floor
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// GetRoomByNumber retrieves a room by its door number.
// @Summary Get a room by number
// @Tags Room
// @Produce json
// @Param number path string true "Room number"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/number/{number} [get]
func (handler *Handler) GetRoomByNumber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByNumber")
	defer scope.End()

	number := chi.URLParam(r, requestParamNumber)

	room, err := handler.service.GetByNumber(ctx, number)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by number")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates the descriptive fields of a room.
// @Summary Update a room by ID
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [patch]
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room updated successfully by user " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms/{id} [delete]
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deleted successfully by user " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}

// UpdateRoomStatus moves a room through the status machine, or past it when force is set.
// @Summary Change a room status
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomStatusRequest true "Update Room Status Request"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms/{id}/status [patch]
func (handler *Handler) UpdateRoomStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRoomStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	var (
		room dto.RoomResponse
		err  error
	)

	if req.Force {
		room, err = handler.service.ForceUpdateStatus(ctx, id, model.Status(req.Status), req.Reason)
	} else {
		room, err = handler.service.UpdateStatus(ctx, id, model.Status(req.Status))
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// GetRoomStatusHistory lists the most recent status changes of a room.
// @Summary Room status history
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Param limit query integer false "Maximum entries"
// @Success 200 {object} response.Data[[]dto.StatusChangeResponse]
// @Router /v1/rooms/{id}/history [get]
func (handler *Handler) GetRoomStatusHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomStatusHistory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	limit := defaultHistoryLimit

	if value := r.URL.Query().Get(requestParamLimit); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			response.WithError(w, failure.InvalidLimitParam)

			return
		}

		limit = parsed
	}

	history, err := handler.service.StatusHistory(ctx, id, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room status history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, history)
}
