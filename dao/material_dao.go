// dao/material_dao.go
package dao

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
)

type IMaterialDAO interface {
	ListMaterials(ctx context.Context, projectID int) ([]model.Material, error)
	UploadResult(ctx context.Context, upload model.ResultUpload) error
	DownloadPerformance(ctx context.Context, materialID int, w io.Writer) (int64, error)
}

type MaterialDAO struct {
	client *Client
}

var _ IMaterialDAO = &MaterialDAO{}

func NewMaterialDAO(client *Client) *MaterialDAO {
	return &MaterialDAO{client: client}
}

func (dao *MaterialDAO) ListMaterials(ctx context.Context, projectID int) ([]model.Material, error) {
	query := url.Values{"project_id": {strconv.Itoa(projectID)}}
	raw, err := dao.client.doJSON(ctx, http.MethodGet, "/analysis-materials/", query, nil)
	if err != nil {
		return nil, err
	}
	var materials []model.Material
	if err := decodeList(raw, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

func (dao *MaterialDAO) UploadResult(ctx context.Context, upload model.ResultUpload) error {
	logger.Info("Uploading analysis result",
		zap.Int("projectID", upload.ProjectID),
		zap.String("excelName", upload.ExcelName),
		zap.Int("imageBytes", len(upload.ImageData)),
		zap.Int("excelBytes", len(upload.ExcelData)))

	raw, err := dao.client.doJSON(ctx, http.MethodPost, "/upload-result/", nil, upload)
	if err != nil {
		return err
	}
	_, err = envelope(raw)
	return err
}

// DownloadPerformance streams the spreadsheet of a material into w.
func (dao *MaterialDAO) DownloadPerformance(ctx context.Context, materialID int, w io.Writer) (int64, error) {
	query := url.Values{"material_id": {strconv.Itoa(materialID)}}
	req, err := dao.client.newRequest(ctx, http.MethodGet, "/download-performance/", query, nil, "")
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "*/*")

	resp, err := dao.client.send(ctx, req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return 0, pcb_errors.NewAPIError(resp.StatusCode, errorMessage(raw))
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return n, ctxErr
		}
		return n, fmt.Errorf("%w: download interrupted: %v", pcb_errors.ErrNetwork, err)
	}
	logger.Info("Performance data downloaded", zap.Int("materialID", materialID), zap.Int64("bytes", n))
	return n, nil
}
