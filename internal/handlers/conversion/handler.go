package conversion

import (
	"net/http"
	"tzconv/infras/otel"
	"tzconv/internal/domains/conversion/model/dto"
	"tzconv/internal/domains/conversion/service"
	"tzconv/shared/constant"
	"tzconv/shared/failure"
	"tzconv/shared/validator"
	"tzconv/transport/http/middleware"
	"tzconv/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Conversion
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Conversion, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.With(handler.middleware.RateLimit()).Post("/convert", handler.Convert)
}

// Convert converts a datetime between two timezones.
// @Summary Convert a datetime
// @Description Read the datetime in the source timezone and express the same instant in the target timezone.
// @Tags Conversion
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Convert Request"
// @Success 200 {object} response.Result[dto.ConvertResponse]
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /convert [post]
func (handler *Handler) Convert(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Convert")
	defer scope.End()

	req := dto.ConvertRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Convert(ctx, req)
	if err != nil {
		scope.TraceError(err)

		if !failure.IsClientError(err) {
			log.Error().Err(err).Msg("failed to convert datetime")
		}

		response.WithError(writer, err)

		return
	}

	response.WithResult(writer, http.StatusOK, res)
}
