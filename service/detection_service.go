// service/detection_service.go
package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pcbinspect/client/dao"
	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
)

type IDetectionService interface {
	Detect(ctx context.Context, imagePath string) (*model.DetectionResult, error)
	SaveResultImage(result *model.DetectionResult, dest string) error
}

type DetectionService struct {
	detectionDAO dao.IDetectionDAO
}

var _ IDetectionService = &DetectionService{}

func NewDetectionService(detectionDAO dao.IDetectionDAO) *DetectionService {
	return &DetectionService{detectionDAO: detectionDAO}
}

// Detect sends a board photo to the detector.
func (s *DetectionService) Detect(ctx context.Context, imagePath string) (*model.DetectionResult, error) {
	if imagePath == "" {
		return nil, fmt.Errorf("%w: image is required", pcb_errors.ErrValidation)
	}
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open image: %v", pcb_errors.ErrValidation, err)
	}
	defer f.Close()

	result, err := s.detectionDAO.Detect(ctx, imagePath, f)
	if err != nil {
		return nil, fmt.Errorf("detection failed: %w", err)
	}
	logger.Info("Detection result received",
		zap.String("image", filepath.Base(imagePath)),
		zap.Int("detections", len(result.Detections)))
	return result, nil
}

// SaveResultImage decodes the data URL of the annotated image into dest.
func (s *DetectionService) SaveResultImage(result *model.DetectionResult, dest string) error {
	if result == nil || result.ResultImage == "" {
		return fmt.Errorf("%w: no result image", pcb_errors.ErrValidation)
	}
	encoded := result.ResultImage
	if i := strings.Index(encoded, ","); strings.HasPrefix(encoded, "data:") && i >= 0 {
		encoded = encoded[i+1:]
	}
	img, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("%w: malformed result image: %v", pcb_errors.ErrServer, err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, img, 0o644)
}
