package taxi

import (
	"net/http"
	"suitespot/infras/otel"
	"suitespot/internal/domains/taxi/model"
	"suitespot/internal/domains/taxi/model/dto"
	"suitespot/internal/domains/taxi/service"
	"suitespot/shared"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/validator"
	"suitespot/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const requestParamBookingID = "bookingId"

var sortableFields = []string{
	model.FieldRequestedAt,
	model.FieldStatus,
	constant.FieldCreatedAt,
}

type Handler struct {
	service service.Taxi
	otel    otel.Otel
}

func New(service service.Taxi, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/taxi-requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTaxiRequest)
		routerGroup.Get("/", handler.GetTaxiRequests)
		routerGroup.Get("/{id}", handler.GetTaxiRequestByID)
		routerGroup.Post("/{id}/confirm", handler.ConfirmTaxiRequest)
		routerGroup.Patch("/{id}/status", handler.UpdateTaxiStatus)
		routerGroup.Post("/{id}/cancel", handler.CancelTaxiRequest)
		routerGroup.Delete("/{id}", handler.DeleteTaxiRequest)
	})
}

// CreateTaxiRequest books a pending taxi for a booking.
// @Summary Request a taxi
// @Tags Taxi
// @Accept json
// @Produce json
// @Param request body dto.CreateTaxiRequest true "Create Taxi Request"
// @Success 201 {object} response.Data[dto.TaxiResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/taxi-requests [post]
func (handler *Handler) CreateTaxiRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTaxiRequest")
	defer scope.End()

	req := dto.CreateTaxiRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	request, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create taxi request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Taxi requested by user " + shared.Operator(ctx))

	response.WithJSON(w, http.StatusCreated, request)
}

// GetTaxiRequests lists taxi requests, optionally by status or booking.
// @Summary Get all taxi requests
// @Tags Taxi
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param bookingId query string false "Filter by booking"
// @Success 200 {object} response.Data[dto.GetTaxiRequestsResponse]
// @Router /v1/taxi-requests [get]
func (handler *Handler) GetTaxiRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaxiRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Sanitize(model.FieldRequestedAt, sortableFields...)

	query := r.URL.Query()
	filter := dto.TaxiFilter{BookingID: query.Get(requestParamBookingID)}

	if value := query.Get(model.FieldStatus); value != constant.Empty {
		status, err := model.ParseStatus(value)
		if err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		filter.Status = status
	}

	requests, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get taxi requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, requests)
}

func (handler *Handler) GetTaxiRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaxiRequestByID")
	defer scope.End()

	request, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get taxi request by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, request)
}

// ConfirmTaxiRequest assigns a driver to a pending request.
// @Summary Confirm a taxi request
// @Tags Taxi
// @Accept json
// @Produce json
// @Param id path string true "Taxi Request ID"
// @Param request body dto.ConfirmTaxiRequest true "Driver details"
// @Success 200 {object} response.Data[dto.TaxiResponse]
// @Failure 409 {object} response.Error
// @Router /v1/taxi-requests/{id}/confirm [post]
func (handler *Handler) ConfirmTaxiRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmTaxiRequest")
	defer scope.End()

	req := dto.ConfirmTaxiRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	request, err := handler.service.Confirm(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm taxi request")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, request)
}

func (handler *Handler) UpdateTaxiStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTaxiStatus")
	defer scope.End()

	req := dto.UpdateTaxiStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	request, err := handler.service.UpdateStatus(ctx, chi.URLParam(r, constant.RequestParamID), status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update taxi request status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, request)
}

func (handler *Handler) CancelTaxiRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelTaxiRequest")
	defer scope.End()

	request, err := handler.service.Cancel(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel taxi request")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, request)
}

// DeleteTaxiRequest removes a taxi request.
// @Summary Delete a taxi request
// @Tags Taxi
// @Produce json
// @Param id path string true "Taxi Request ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/taxi-requests/{id} [delete]
func (handler *Handler) DeleteTaxiRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTaxiRequest")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete taxi request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Taxi request deleted by user " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Taxi request deleted successfully")
}
