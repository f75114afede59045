package billing

import (
	"net/http"
	"suitespot/infras/otel"
	"suitespot/internal/domains/billing/model"
	"suitespot/internal/domains/billing/model/dto"
	"suitespot/internal/domains/billing/service"
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
	model.FieldGeneratedAt,
	model.FieldTotalAmount,
	model.FieldPaymentStatus,
	constant.FieldCreatedAt,
}

type Handler struct {
	service service.Billing
	otel    otel.Otel
}

func New(service service.Billing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bills", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.GenerateBill)
		routerGroup.Get("/", handler.GetBills)
		routerGroup.Post("/discount-eligibility", handler.CheckDiscountEligibility)
		routerGroup.Get("/booking/{bookingId}", handler.GetBillByBooking)
		routerGroup.Get("/{id}", handler.GetBillByID)
		routerGroup.Post("/{id}/discount", handler.ApplyDiscount)
		routerGroup.Post("/{id}/pay", handler.MarkAsPaid)
		routerGroup.Post("/{id}/partial-payment", handler.MarkAsPartialPaid)
	})
}

// GenerateBill bills a booking. A booking that already has a bill gets it back unchanged.
// @Summary Generate a bill
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.GenerateBillRequest true "Generate Bill Request"
// @Success 201 {object} response.Data[dto.BillResponse]
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bills [post]
func (handler *Handler) GenerateBill(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateBill")
	defer scope.End()

	req := dto.GenerateBillRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	bill, err := handler.service.Generate(ctx, req.BookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate bill")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bill generated by user " + shared.Operator(ctx))

	response.WithJSON(writer, http.StatusCreated, bill)
}

// GetBills lists bills, optionally by payment status.
// @Summary Get all bills
// @Tags Billing
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param payment_status query string false "Filter by payment status"
// @Success 200 {object} response.Data[dto.GetBillsResponse]
// @Router /v1/bills [get]
func (handler *Handler) GetBills(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBills")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Sanitize(model.FieldGeneratedAt, sortableFields...)

	filter := dto.BillFilter{PaymentStatus: r.URL.Query().Get(model.FieldPaymentStatus)}

	bills, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bills")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bills)
}

func (handler *Handler) GetBillByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillByID")
	defer scope.End()

	bill, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bill by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bill)
}

func (handler *Handler) GetBillByBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillByBooking")
	defer scope.End()

	bill, err := handler.service.GetByBooking(ctx, chi.URLParam(r, requestParamBookingID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bill by booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bill)
}

// ApplyDiscount sets the bill discount, capped at half the room charges.
// @Summary Apply a discount
// @Tags Billing
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body dto.DiscountRequest true "Discount Request"
// @Success 200 {object} response.Data[dto.BillResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bills/{id}/discount [post]
func (handler *Handler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApplyDiscount")
	defer scope.End()

	req := dto.DiscountRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	bill, err := handler.service.ApplyDiscount(ctx, chi.URLParam(r, constant.RequestParamID), req.Amount)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to apply discount")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bill)
}

func (handler *Handler) MarkAsPaid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkAsPaid")
	defer scope.End()

	bill, err := handler.service.MarkAsPaid(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark bill as paid")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bill)
}

func (handler *Handler) MarkAsPartialPaid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkAsPartialPaid")
	defer scope.End()

	bill, err := handler.service.MarkAsPartialPaid(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark bill as partially paid")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bill)
}

// CheckDiscountEligibility reports whether amount fits under the discount cap of a booking.
// @Summary Check discount eligibility
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.EligibilityRequest true "Eligibility Request"
// @Success 200 {object} response.Data[dto.EligibilityResponse]
// @Router /v1/bills/discount-eligibility [post]
func (handler *Handler) CheckDiscountEligibility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckDiscountEligibility")
	defer scope.End()

	req := dto.EligibilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	eligible, err := handler.service.IsEligibleForDiscount(ctx, req.BookingID, req.Amount)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check discount eligibility")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.EligibilityResponse{
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Eligible:  eligible,
	})
}
