package service

import (
	"context"
	"tzconv/infras/otel"
	"tzconv/internal/domains/zone/model/dto"
	"tzconv/internal/domains/zone/repository"
	"tzconv/shared"
	"tzconv/shared/constant"
	"tzconv/shared/timezone"
)

type Zone interface {
	List(ctx context.Context, query string) (dto.ListZonesResponse, error)
	Page(ctx context.Context) (dto.PageResponse, error)
}

type serviceImpl struct {
	repo repository.Zone
	otel otel.Otel
}

func New(repo repository.Zone, otel otel.Otel) Zone {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, query string) (res dto.ListZonesResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()

	scope.SetAttribute("zone.query", query)
	res.FromNames(shared.FilterFold(s.repo.List(), query))

	return res, nil
}

// Page prefills the form with the current time in the application timezone.
func (s *serviceImpl) Page(ctx context.Context) (res dto.PageResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Page")
	defer scope.End()

	now := timezone.Now()

	res.Timezones = s.repo.List()
	res.SourceTimezone = now.Location().String()
	res.TargetTimezone = constant.DefaultTimezone
	res.Datetime = now.Format(constant.DateTimeLocal)

	return res, nil
}
