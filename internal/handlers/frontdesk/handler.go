package frontdesk

import (
	"net/http"
	"suitespot/infras/otel"
	"suitespot/internal/domains/frontdesk/model/dto"
	"suitespot/internal/domains/frontdesk/service"
	"suitespot/shared"
	"suitespot/shared/constant"
	"suitespot/shared/validator"
	"suitespot/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const requestParamQuery = "query"

type Handler struct {
	service service.FrontDesk
	otel    otel.Otel
}

func New(service service.FrontDesk, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/frontdesk", func(routerGroup chi.Router) {
		routerGroup.Get("/dashboard", handler.Dashboard)
		routerGroup.Get("/check-in", handler.SearchForCheckIn)
		routerGroup.Post("/check-in", handler.CheckIn)
		routerGroup.Get("/check-out", handler.SearchForCheckOut)
		routerGroup.Post("/check-out", handler.CheckOut)
	})
}

// CheckIn checks a guest in by booking id or by a query that matches exactly one booking.
// @Summary Check a guest in
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Check-In Request"
// @Success 200 {object} response.Data[dto.StayResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/frontdesk/check-in [post]
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.CheckInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	stay, err := handler.service.CheckIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + stay.Booking.ID + " checked in by user " + shared.Operator(ctx))

	response.WithJSON(w, http.StatusOK, stay)
}

// CheckOut bills a stay and checks the guest out.
// @Summary Check a guest out
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Param request body dto.CheckOutRequest true "Check-Out Request"
// @Success 200 {object} response.Data[dto.StayResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/frontdesk/check-out [post]
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	req := dto.CheckOutRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	stay, err := handler.service.CheckOut(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + stay.Booking.ID + " checked out by user " + shared.Operator(ctx))

	response.WithJSON(w, http.StatusOK, stay)
}

func (handler *Handler) SearchForCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchForCheckIn")
	defer scope.End()

	req := dto.SearchRequest{Query: r.URL.Query().Get(requestParamQuery)}

	if err := validator.ValidateStruct(&req); err != nil {
		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.SearchForCheckIn(ctx, req.Query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search bookings for check-in")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

func (handler *Handler) SearchForCheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchForCheckOut")
	defer scope.End()

	req := dto.SearchRequest{Query: r.URL.Query().Get(requestParamQuery)}

	if err := validator.ValidateStruct(&req); err != nil {
		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.SearchForCheckOut(ctx, req.Query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search bookings for check-out")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

func (handler *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dashboard)
}
