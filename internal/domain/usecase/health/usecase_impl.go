package health

import (
	"context"

	"go-shortener/internal/domain/gateway/api"
	"go-shortener/internal/domain/model"
)

// shortener health endpoint reports "pass" when up
const shortenerPass = "pass"

type healthUseCase struct {
	configured       bool
	shortenerGateway api.ShortenerGateway
}

// NewHealthUseCase checks the shortener through its gateway. An unconfigured shortener is reported as UNKNOWN without a call.
func NewHealthUseCase(config model.ShortenerConfig, shortenerGateway api.ShortenerGateway) UseCase {
	return &healthUseCase{
		configured:       config.IsComplete(),
		shortenerGateway: shortenerGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	shortenerHealth := useCase.shortenerHealth(ctx)

	overallStatus := model.StatusUp
	if shortenerHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:    overallStatus,
		Shortener: shortenerHealth,
	}
}

func (useCase *healthUseCase) shortenerHealth(ctx context.Context) model.ComponentHealthStatus {
	if !useCase.configured {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "host or API key not configured"},
		}
	}

	response, err := useCase.shortenerGateway.Health(ctx)
	if err != nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"error": err.Error()},
		}
	}

	status := model.StatusUp
	if response.Status != shortenerPass {
		status = model.StatusDown
	}

	return model.ComponentHealthStatus{
		Status: status,
		Details: map[string]string{
			"status":  response.Status,
			"version": response.Version,
		},
	}
}
