package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tzconv/infras/otel"
	"tzconv/internal/domains/conversion/converter"
	"tzconv/internal/domains/conversion/model/dto"
	"tzconv/shared/constant"
	"tzconv/shared/failure"

	"github.com/rs/zerolog/log"
)

type Conversion interface {
	Convert(ctx context.Context, req dto.ConvertRequest) (dto.ConvertResponse, error)
}

type serviceImpl struct {
	converter *converter.Converter
	otel      otel.Otel
}

func New(converter *converter.Converter, otel otel.Otel) Conversion {
	return &serviceImpl{
		converter: converter,
		otel:      otel,
	}
}

func (s *serviceImpl) Convert(ctx context.Context, req dto.ConvertRequest) (res dto.ConvertResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"conversion.source_timezone": req.SourceTimezone,
		"conversion.target_timezone": req.TargetTimezone,
	})

	conversion, err := s.converter.Convert(req.Datetime, req.SourceTimezone, req.TargetTimezone)
	if err != nil {
		scope.TraceError(err)

		if converter.IsInvalidInput(err) {
			log.Debug().Err(err).Str("kind", converter.KindOf(err).String()).Msg("rejected conversion input")

			return res, failure.BadRequest(err)
		}

		log.Error().Err(err).Msg("failed to convert datetime")

		return res, fmt.Errorf("failed to convert datetime: %w", err)
	}

	scope.SetAttribute("conversion.difference", conversion.Difference)
	res.FromModel(conversion)

	return res, nil
}
