// service/health_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/pcbinspect/client/dao"
	logger "github.com/pcbinspect/client/logging"
)

type IHealthService interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	healthDAO dao.IHealthDAO
}

var _ IHealthService = &HealthService{}

func NewHealthService(healthDAO dao.IHealthDAO) *HealthService {
	return &HealthService{healthDAO: healthDAO}
}

// Ping reports whether the backend answers at all.
func (s *HealthService) Ping(ctx context.Context) error {
	if err := s.healthDAO.Probe(ctx); err != nil {
		logger.Warn("Backend unreachable", zap.Error(err))
		return err
	}
	return nil
}
