package settings

import (
	"net/http"
	"suitespot/infras/otel"
	"suitespot/internal/domains/settings/model/dto"
	"suitespot/internal/domains/settings/service"
	"suitespot/shared"
	"suitespot/shared/constant"
	"suitespot/shared/validator"
	"suitespot/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Settings
	otel    otel.Otel
}

func New(service service.Settings, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Put("/", handler.UpdateSettings)
		routerGroup.Post("/reset", handler.ResetSettings)
	})
}

func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, settings)
}

// UpdateSettings changes the given hotel settings and keeps the rest.
// @Summary Update hotel settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Update Settings Request"
// @Success 200 {object} response.Data[dto.SettingsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/settings [put]
func (handler *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSettings")
	defer scope.End()

	req := dto.UpdateSettingsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	settings, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settings updated by user " + shared.Operator(ctx))

	response.WithJSON(w, http.StatusOK, settings)
}

func (handler *Handler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetSettings")
	defer scope.End()

	settings, err := handler.service.Reset(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settings reset by user " + shared.Operator(ctx))

	response.WithJSON(w, http.StatusOK, settings)
}
