package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	"github.com/yourusername/millionaire-api/internal/handler/dto"
	"github.com/yourusername/millionaire-api/internal/service"
)

var testAdmin = &entity.User{ID: 1, IsAdmin: true}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/questions/import", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func questionsWorkbook(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	rows := [][]interface{}{
		{"level", "text", "correct", "answer2", "answer3", "answer4"},
		{0, "Сколько будет 2+2?", "4", "3", "5", "22"},
		{99, "Уровень вне диапазона", "a", "b", "c", "d"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf := new(bytes.Buffer)
	require.NoError(t, f.Write(buf))
	return buf.Bytes()
}

func TestQuestionHandler_Import(t *testing.T) {
	app := newTestApp(t)
	app.questions.On("CreateBatch", mock.AnythingOfType("[]entity.Question")).Return(nil)

	w := app.do(t, uploadRequest(t, "questions.xlsx", questionsWorkbook(t)), testAdmin)

	require.Equal(t, http.StatusOK, w.Code)
	var report service.ImportReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 1, report.Imported)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, 3, report.Skipped[0].Row)
}

func TestQuestionHandler_Import_Rejections(t *testing.T) {
	t.Run("не администратор", func(t *testing.T) {
		app := newTestApp(t)
		w := app.do(t, uploadRequest(t, "questions.xlsx", questionsWorkbook(t)), &entity.User{ID: 2})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("не xlsx", func(t *testing.T) {
		app := newTestApp(t)
		w := app.do(t, uploadRequest(t, "questions.csv", []byte("level,text")), testAdmin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("битый файл", func(t *testing.T) {
		app := newTestApp(t)
		w := app.do(t, uploadRequest(t, "questions.xlsx", []byte("not a zip")), testAdmin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestQuestionHandler_PoolStats(t *testing.T) {
	app := newTestApp(t)
	counts := map[int]int64{}
	for level := 0; level < 15; level++ {
		counts[level] = 2
	}
	counts[14] = 0
	app.questions.On("CountByLevel").Return(counts, nil)

	w := app.do(t, httptest.NewRequest(http.MethodGet, "/api/admin/questions/stats", nil), testAdmin)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.PoolStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Levels, 15)
	assert.False(t, resp.Ready)
}
