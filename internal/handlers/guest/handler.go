package guest

import (
	"net/http"
	"suitespot/infras/otel"
	"suitespot/internal/domains/guest/model"
	"suitespot/internal/domains/guest/model/dto"
	"suitespot/internal/domains/guest/service"
	"suitespot/shared"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/validator"
	"suitespot/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	requestParamName     = "name"
	requestParamIDNumber = "idNumber"
)

var sortableFields = []string{
	model.FieldFirstName,
	model.FieldLastName,
	model.FieldEmail,
	constant.FieldCreatedAt,
}

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/identity/{idNumber}", handler.GetGuestByIDNumber)
		routerGroup.Get("/{id}", handler.GetGuestByID)
		routerGroup.Patch("/{id}", handler.UpdateGuest)
		routerGroup.Delete("/{id}", handler.DeleteGuest)
	})
}

// CreateGuest registers a guest.
// @Summary Create a guest
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Create Guest Request"
// @Success 201 {object} response.Data[dto.GuestResponse]
// @Failure 400 {object} response.Error
// @Router /v1/guests [post]
func (handler *Handler) CreateGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	guest, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guest created successfully by user " + shared.Operator(ctx))

	response.WithJSON(writer, http.StatusCreated, guest)
}

// GetGuests lists guests, optionally filtered by name.
// @Summary Get all guests
// @Tags Guest
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by first or last name"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetGuestsResponse]
// @Router /v1/guests [get]
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Sanitize(constant.FieldCreatedAt, sortableFields...)

	filter := dto.GuestFilter{
		Name:   r.URL.Query().Get(requestParamName),
		Active: shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)),
	}

	guests, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guests)
}

func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	guest, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}

func (handler *Handler) GetGuestByIDNumber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByIDNumber")
	defer scope.End()

	guest, err := handler.service.SearchByIDNumber(ctx, chi.URLParam(r, requestParamIDNumber))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest by identity number")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}

// UpdateGuest changes the given guest fields.
// @Summary Update a guest
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Update Guest Request"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [patch]
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	req := dto.UpdateGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest updated successfully by user " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Guest updated successfully")
}

// DeleteGuest removes a guest that no booking references.
// @Summary Delete a guest
// @Tags Guest
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/guests/{id} [delete]
func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest deleted successfully by user " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Guest deleted successfully")
}
