package zone

import (
	"html/template"
	"net/http"
	"tzconv/infras/otel"
	"tzconv/internal/domains/zone/service"
	"tzconv/shared/constant"
	"tzconv/transport/http/response"
	"tzconv/web"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const templateIndex = "index.html"

type Handler struct {
	service service.Zone
	otel    otel.Otel
	pages   *template.Template
}

func New(service service.Zone, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
		pages:   template.Must(template.ParseFS(web.Templates, templateIndex)),
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Index)
	router.Get("/timezones", handler.List)
}

// Index renders the conversion page.
func (handler *Handler) Index(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Index")
	defer scope.End()

	page, err := handler.service.Page(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to prepare page")

		response.WithError(writer, err)

		return
	}

	response.WithHTML(writer, http.StatusOK, handler.pages.Lookup(templateIndex), page)
}

// List returns the known timezone identifiers.
// @Summary List timezones
// @Description List every known IANA timezone identifier in lexicographic order, optionally filtered by a case-insensitive substring.
// @Tags Timezone
// @Produce json
// @Param q query string false "Substring filter"
// @Success 200 {object} response.Result[dto.ListZonesResponse]
// @Failure 500 {object} response.Error
// @Router /timezones [get]
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".List")
	defer scope.End()

	res, err := handler.service.List(ctx, request.URL.Query().Get(constant.RequestParamQuery))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list timezones")

		response.WithError(writer, err)

		return
	}

	response.WithResult(writer, http.StatusOK, res)
}
