package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"serenity/infras/backend"
	"serenity/infras/otel"
	"serenity/internal/domains/dashboard/model"
	"serenity/shared"
	"serenity/shared/constant"

	"github.com/rs/zerolog/log"
)

const pathDashboard = "/admin/dashboard"

type Dashboard interface {
	Summary(ctx context.Context) (model.Summary, error)
}

type serviceImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Dashboard {
	return &serviceImpl{
		client: client,
		otel:   otel,
	}
}

func (s *serviceImpl) Summary(ctx context.Context) (res model.Summary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var body model.Response
	if err = s.client.Get(ctx, pathDashboard, shared.ViewerFromContext(ctx).Token, &body); err != nil {
		log.Error().Err(err).Msg("failed to load dashboard stats")

		return res, fmt.Errorf("failed to load dashboard: %w", err)
	}

	return model.Summary{Stats: body.Stats, ThisWeek: body.Stats.ThisWeek()}, nil
}
