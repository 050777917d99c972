// model/material.go
package model

import "time"

// Material is one detection result attached to a project.
type Material struct {
	ID                 int       `json:"id"`
	DefectImageURL     string    `json:"defect_image_url"`
	PerformanceDataURL string    `json:"performance_data_url"`
	Description        string    `json:"description"`
	CreatedAt          time.Time `json:"created_at"`
}

type ResultUpload struct {
	ProjectID   int    `json:"project_id" validate:"required"`
	ImageData   string `json:"image_data" validate:"required"`
	ExcelData   string `json:"excel_data" validate:"required"`
	ExcelName   string `json:"excel_name" validate:"required"`
	Description string `json:"description"`
}

type Detection struct {
	DisplayID  int     `json:"display_id"`
	Name       string  `json:"name"`
	Class      int     `json:"class"`
	Confidence float64 `json:"confidence"`
	XMin       float64 `json:"xmin"`
	YMin       float64 `json:"ymin"`
	XMax       float64 `json:"xmax"`
	YMax       float64 `json:"ymax"`
}

type DetectionResult struct {
	ResultImage string      `json:"result_image"`
	Detections  []Detection `json:"detections"`
}
