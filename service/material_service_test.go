package service_test

import (
	"context"
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	pcb_errors "github.com/pcbinspect/client/errors"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/service"
	mock_dao "github.com/pcbinspect/client/test/dao_mock"
	"github.com/pcbinspect/client/util"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestDownloadFilename(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"/media/performance_data/1700000000_report.xlsx", "1700000000_report.xlsx"},
		{"http://localhost:8000/media/performance_data/%EA%B2%B0%EA%B3%BC.csv", "결과.csv"},
		{"http://localhost:8000/media/performance_data/a.xlsx?sig=1", "a.xlsx"},
		{"", "performance_12.xlsx"},
		{"/", "performance_12.xlsx"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, service.DownloadFilename(model.Material{ID: 12, PerformanceDataURL: c.url}), c.url)
	}
}

func TestUploadResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	materialDAO := mock_dao.NewMockIMaterialDAO(ctrl)
	materials := service.NewMaterialService(materialDAO, util.NewValidationUtil())
	dir := t.TempDir()
	img := writeFile(t, dir, "board.png", []byte("png bytes"))
	sheet := writeFile(t, dir, "report.xlsx", []byte("xlsx bytes"))

	materialDAO.EXPECT().UploadResult(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u model.ResultUpload) error {
		assert.Equal(t, 5, u.ProjectID)
		assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("png bytes")), u.ImageData)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("xlsx bytes")), u.ExcelData)
		assert.Equal(t, "report.xlsx", u.ExcelName)
		assert.Equal(t, "two shorts", u.Description)
		return nil
	})

	require.NoError(t, materials.UploadResult(context.Background(), 5, img, sheet, " two shorts "))
}

func TestUploadResultValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	materials := service.NewMaterialService(mock_dao.NewMockIMaterialDAO(ctrl), util.NewValidationUtil())
	dir := t.TempDir()
	img := writeFile(t, dir, "board.jpg", []byte("jpg"))
	sheet := writeFile(t, dir, "report.xlsx", []byte("xlsx"))
	notes := writeFile(t, dir, "notes.txt", []byte("txt"))
	ctx := context.Background()

	assert.ErrorIs(t, materials.UploadResult(ctx, 0, img, sheet, ""), pcb_errors.ErrValidation)
	assert.ErrorIs(t, materials.UploadResult(ctx, 5, "", sheet, ""), pcb_errors.ErrValidation)
	assert.ErrorIs(t, materials.UploadResult(ctx, 5, img, "", ""), pcb_errors.ErrValidation)
	assert.ErrorIs(t, materials.UploadResult(ctx, 5, img, notes, ""), pcb_errors.ErrValidation)
	assert.ErrorIs(t, materials.UploadResult(ctx, 5, filepath.Join(dir, "missing.jpg"), sheet, ""), pcb_errors.ErrValidation)
}

func TestDownloadPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	materialDAO := mock_dao.NewMockIMaterialDAO(ctrl)
	materials := service.NewMaterialService(materialDAO, util.NewValidationUtil())
	dir := t.TempDir()
	m := model.Material{ID: 3, PerformanceDataURL: "/media/performance_data/17_report.xlsx"}

	materialDAO.EXPECT().DownloadPerformance(gomock.Any(), 3, gomock.Any()).DoAndReturn(func(_ context.Context, _ int, w io.Writer) (int64, error) {
		n, err := io.Copy(w, strings.NewReader("sheet"))
		return n, err
	})

	path, err := materials.DownloadPerformance(context.Background(), m, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "17_report.xlsx"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sheet", string(data))
}

func TestDownloadPerformanceRemovesPartialFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	materialDAO := mock_dao.NewMockIMaterialDAO(ctrl)
	materials := service.NewMaterialService(materialDAO, util.NewValidationUtil())
	dir := t.TempDir()

	materialDAO.EXPECT().DownloadPerformance(gomock.Any(), 8, gomock.Any()).DoAndReturn(func(_ context.Context, _ int, w io.Writer) (int64, error) {
		w.Write([]byte("half"))
		return 4, pcb_errors.ErrNetwork
	})

	_, err := materials.DownloadPerformance(context.Background(), model.Material{ID: 8}, dir)
	assert.ErrorIs(t, err, pcb_errors.ErrNetwork)
	_, statErr := os.Stat(filepath.Join(dir, "performance_8.xlsx"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDownloadPerformanceKeepsExistingFileOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	materialDAO := mock_dao.NewMockIMaterialDAO(ctrl)
	materials := service.NewMaterialService(materialDAO, util.NewValidationUtil())
	dir := t.TempDir()
	existing := writeFile(t, dir, "performance_7.xlsx", []byte("earlier copy"))

	materialDAO.EXPECT().DownloadPerformance(gomock.Any(), 7, gomock.Any()).DoAndReturn(func(_ context.Context, _ int, w io.Writer) (int64, error) {
		w.Write([]byte("trunc"))
		return 5, pcb_errors.ErrNetwork
	})

	_, err := materials.DownloadPerformance(context.Background(), model.Material{ID: 7}, dir)
	assert.ErrorIs(t, err, pcb_errors.ErrNetwork)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "earlier copy", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
