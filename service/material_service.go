// service/material_service.go
package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pcbinspect/client/dao"
	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/util"
)

var spreadsheetExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

type IMaterialService interface {
	ListMaterials(ctx context.Context, projectID int) ([]model.Material, error)
	UploadResult(ctx context.Context, projectID int, imagePath, spreadsheetPath, description string) error
	DownloadPerformance(ctx context.Context, material model.Material, destDir string) (string, error)
}

type MaterialService struct {
	materialDAO    dao.IMaterialDAO
	validationUtil *util.ValidationUtil
}

var _ IMaterialService = &MaterialService{}

func NewMaterialService(materialDAO dao.IMaterialDAO, validationUtil *util.ValidationUtil) *MaterialService {
	return &MaterialService{materialDAO: materialDAO, validationUtil: validationUtil}
}

func (s *MaterialService) ListMaterials(ctx context.Context, projectID int) ([]model.Material, error) {
	materials, err := s.materialDAO.ListMaterials(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	return materials, nil
}

// UploadResult attaches a result image and its spreadsheet to a project.
// imagePath may also hold a data URL, as produced by detection.
func (s *MaterialService) UploadResult(ctx context.Context, projectID int, imagePath, spreadsheetPath, description string) error {
	if projectID <= 0 || imagePath == "" || spreadsheetPath == "" {
		return fmt.Errorf("%w: project, image and spreadsheet are all required", pcb_errors.ErrValidation)
	}
	ext := strings.ToLower(filepath.Ext(spreadsheetPath))
	if !spreadsheetExtensions[ext] {
		return fmt.Errorf("%w: spreadsheet must be .xlsx, .xls or .csv", pcb_errors.ErrValidation)
	}

	imageData, err := imageDataURL(imagePath)
	if err != nil {
		return err
	}
	excel, err := os.ReadFile(spreadsheetPath)
	if err != nil {
		return fmt.Errorf("%w: failed to read spreadsheet: %v", pcb_errors.ErrValidation, err)
	}

	upload := model.ResultUpload{
		ProjectID:   projectID,
		ImageData:   imageData,
		ExcelData:   base64.StdEncoding.EncodeToString(excel),
		ExcelName:   filepath.Base(spreadsheetPath),
		Description: strings.TrimSpace(description),
	}
	if err := s.validationUtil.ValidateResultUpload(upload); err != nil {
		return err
	}

	if err := s.materialDAO.UploadResult(ctx, upload); err != nil {
		return fmt.Errorf("failed to upload result: %w", err)
	}
	logger.Info("Result uploaded", zap.Int("projectID", projectID), zap.String("excelName", upload.ExcelName))
	return nil
}

func imageDataURL(imagePath string) (string, error) {
	if strings.HasPrefix(imagePath, "data:") {
		return imagePath, nil
	}
	img, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read image: %v", pcb_errors.ErrValidation, err)
	}
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(imagePath)))
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = "image/jpeg"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(img), nil
}

// DownloadFilename names a material's spreadsheet after the tail of its URL.
func DownloadFilename(material model.Material) string {
	fallback := fmt.Sprintf("performance_%d.xlsx", material.ID)
	if material.PerformanceDataURL == "" {
		return fallback
	}

	p := material.PerformanceDataURL
	if u, err := url.Parse(p); err == nil {
		p = u.Path
	}
	name := path.Base(p)
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	name = filepath.Base(name)
	if name == "" || name == "." || name == "/" || name == string(filepath.Separator) {
		return fallback
	}
	return name
}

// DownloadPerformance writes the material's spreadsheet into destDir and
// returns the file path. An existing file is only replaced once the whole
// body has arrived.
func (s *MaterialService) DownloadPerformance(ctx context.Context, material model.Material, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}
	dest := filepath.Join(destDir, DownloadFilename(material))

	f, err := os.CreateTemp(destDir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dest, err)
	}
	tmp := f.Name()

	_, err = s.materialDAO.DownloadPerformance(ctx, material.ID, f)
	err = errors.Join(err, f.Close())
	if err == nil {
		err = os.Rename(tmp, dest)
	}
	if err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to download performance data: %w", err)
	}
	return dest, nil
}
