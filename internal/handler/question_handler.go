package handler

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/millionaire-api/internal/handler/dto"
	"github.com/yourusername/millionaire-api/internal/service"
)

// Предельный размер загружаемого файла вопросов
const maxImportFileSize = 10 << 20

// QuestionHandler обрабатывает администрирование пула вопросов
type QuestionHandler struct {
	importer *service.QuestionImporter
}

// NewQuestionHandler создает обработчик вопросов
func NewQuestionHandler(importer *service.QuestionImporter) *QuestionHandler {
	return &QuestionHandler{importer: importer}
}

// ImportQuestions принимает XLSX в поле формы "file"
func (h *QuestionHandler) ImportQuestions(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required", "error_type": "validation"})
		return
	}
	if fileHeader.Size > maxImportFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file is too large", "error_type": "validation"})
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .xlsx files are supported", "error_type": "validation"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[QuestionHandler] Не удалось открыть загруженный файл: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file", "error_type": "validation"})
		return
	}
	defer file.Close()

	report, err := h.importer.ImportXLSX(file)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// PoolStats показывает количество вопросов по уровням
func (h *QuestionHandler) PoolStats(c *gin.Context) {
	sizes, err := h.importer.PoolSizes()
	if err != nil {
		handleError(c, err)
		return
	}

	resp := dto.PoolStatsResponse{Levels: make([]dto.PoolLevelResponse, 0, len(sizes)), Ready: true}
	for level := 0; level < len(sizes); level++ {
		resp.Levels = append(resp.Levels, dto.PoolLevelResponse{Level: level, Count: sizes[level]})
		if sizes[level] == 0 {
			resp.Ready = false
		}
	}

	c.JSON(http.StatusOK, resp)
}
