// dao/detection_dao.go
package dao

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
)

const probeTimeout = 5 * time.Second

type IDetectionDAO interface {
	Detect(ctx context.Context, filename string, image io.Reader) (*model.DetectionResult, error)
}

type IHealthDAO interface {
	Probe(ctx context.Context) error
}

type DetectionDAO struct {
	client *Client
}

var (
	_ IDetectionDAO = &DetectionDAO{}
	_ IHealthDAO    = &DetectionDAO{}
)

func NewDetectionDAO(client *Client) *DetectionDAO {
	return &DetectionDAO{client: client}
}

// Detect uploads a board photo as the multipart field "image".
func (dao *DetectionDAO) Detect(ctx context.Context, filename string, image io.Reader) (*model.DetectionResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", filepath.Base(filename))
	if err != nil {
		return nil, err
	}
	size, err := io.Copy(part, image)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	logger.Info("Requesting detection", zap.String("file", filepath.Base(filename)), zap.Int64("bytes", size))

	req, err := dao.client.newRequest(ctx, http.MethodPost, "/detect/", nil, &body, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}
	raw, err := dao.client.do(ctx, req)
	if err != nil {
		return nil, err
	}
	env, err := envelope(raw)
	if err != nil {
		return nil, err
	}
	if env.ResultImage == "" {
		return nil, fmt.Errorf("%w: detection response without result image", pcb_errors.ErrServer)
	}

	logger.Info("Detection finished", zap.Int("detections", len(env.Detections)))
	return &model.DetectionResult{ResultImage: env.ResultImage, Detections: env.Detections}, nil
}

// Probe sends OPTIONS to the detection endpoint. Any HTTP answer, even an
// error status, means the backend is reachable.
func (dao *DetectionDAO) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := dao.client.newRequest(ctx, http.MethodOptions, "/detect/", nil, nil, "")
	if err != nil {
		return err
	}
	resp, err := dao.client.send(ctx, req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w: no answer within %s", pcb_errors.ErrNetwork, probeTimeout)
		}
		return err
	}
	resp.Body.Close()
	logger.Info("Backend reachable", zap.Int("status", resp.StatusCode))
	return nil
}
