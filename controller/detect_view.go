// controller/detect_view.go
package controller

import (
	"context"
	"fmt"

	pcb_errors "github.com/pcbinspect/client/errors"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/pdp/engine"
	"github.com/pcbinspect/client/service"
	"github.com/pcbinspect/client/util"
)

// DetectView runs defect detection on a photo and files the result under a project.
type DetectView struct {
	view
	detection service.IDetectionService
	materials service.IMaterialService

	result *model.DetectionResult
}

func NewDetectView(detection service.IDetectionService, materials service.IMaterialService, sessions service.SessionProvider, evaluator *engine.PolicyEvaluator, notifier util.Notifier) *DetectView {
	return &DetectView{view: newView(sessions, evaluator, notifier), detection: detection, materials: materials}
}

func (v *DetectView) Mount(ctx context.Context) error {
	v.mount(ctx)
	return nil
}

func (v *DetectView) Detect(ctx context.Context, imagePath string) (*model.DetectionResult, error) {
	ctx, cancel, err := v.scope(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()
	release, err := v.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	result, err := v.detection.Detect(ctx, imagePath)
	if err := v.finish("Detection failed", err); err != nil {
		return nil, err
	}
	v.mu.Lock()
	v.result = result
	v.mu.Unlock()
	return result, nil
}

func (v *DetectView) Result() *model.DetectionResult {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result
}

// SaveResult writes the annotated image of the last detection to dest.
func (v *DetectView) SaveResult(dest string) error {
	result := v.Result()
	if result == nil {
		return fmt.Errorf("%w: run a detection first", pcb_errors.ErrValidation)
	}
	if err := v.detection.SaveResultImage(result, dest); err != nil {
		v.alert("Save failed", err)
		return err
	}
	return nil
}

// Upload files the last detection result and a spreadsheet under a project.
func (v *DetectView) Upload(ctx context.Context, projectID int, spreadsheetPath, description string) error {
	result := v.Result()
	if result == nil {
		v.notifier.Alert("Missing input", "Run a detection first.")
		return fmt.Errorf("%w: no detection result", pcb_errors.ErrValidation)
	}

	ctx, cancel, err := v.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	release, err := v.acquire()
	if err != nil {
		return err
	}
	defer release()

	err = v.materials.UploadResult(ctx, projectID, result.ResultImage, spreadsheetPath, description)
	if err := v.finish("Upload failed", err); err != nil {
		return err
	}
	v.notifier.Alert("Saved", "The analysis result was saved.")
	return nil
}
