package service

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	"github.com/yourusername/millionaire-api/internal/domain/repository"
	apperrors "github.com/yourusername/millionaire-api/internal/pkg/errors"
)

// Столбцы листа импорта: уровень, вопрос, правильный ответ, три неправильных
const importColumns = 2 + entity.AnswerCount

// RowError — строка файла, которую не удалось импортировать
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportReport — итог импорта вопросов
type ImportReport struct {
	Imported int        `json:"imported"`
	Skipped  []RowError `json:"skipped"`
}

// QuestionCacheInvalidator сбрасывает кеш пула вопросов
type QuestionCacheInvalidator interface {
	Invalidate(levels ...int)
}

// QuestionImporter загружает вопросы из XLSX
type QuestionImporter struct {
	questionRepo repository.QuestionRepository
	cache        QuestionCacheInvalidator
	maxLevel     int
}

// NewQuestionImporter создает импортёр; maxLevel — наибольший допустимый уровень
func NewQuestionImporter(questionRepo repository.QuestionRepository, cache QuestionCacheInvalidator, maxLevel int) *QuestionImporter {
	return &QuestionImporter{questionRepo: questionRepo, cache: cache, maxLevel: maxLevel}
}

// ImportXLSX читает первый лист книги. Первая строка — заголовок.
// Некорректные строки пропускаются и попадают в отчёт.
func (s *QuestionImporter) ImportXLSX(r io.Reader) (*ImportReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read xlsx: %v", apperrors.ErrValidation, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", apperrors.ErrValidation)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows of sheet %q: %w", sheets[0], err)
	}

	report := &ImportReport{Skipped: []RowError{}}
	questions := make([]entity.Question, 0, len(rows))
	touched := make(map[int]struct{})

	for i, row := range rows {
		rowNum := i + 1
		if i == 0 || isBlankRow(row) {
			continue
		}

		question, reason := s.parseRow(row)
		if reason != "" {
			report.Skipped = append(report.Skipped, RowError{Row: rowNum, Reason: reason})
			continue
		}
		questions = append(questions, *question)
		touched[question.Level] = struct{}{}
	}

	if len(questions) > 0 {
		if err := s.questionRepo.CreateBatch(questions); err != nil {
			return nil, fmt.Errorf("save imported questions: %w", err)
		}
	}
	report.Imported = len(questions)

	if s.cache != nil && len(touched) > 0 {
		levels := make([]int, 0, len(touched))
		for level := range touched {
			levels = append(levels, level)
		}
		s.cache.Invalidate(levels...)
	}

	log.Printf("[QuestionImporter] Импортировано вопросов: %d, пропущено строк: %d", report.Imported, len(report.Skipped))
	return report, nil
}

// PoolSizes возвращает количество вопросов на каждом уровне 0..maxLevel
func (s *QuestionImporter) PoolSizes() (map[int]int64, error) {
	counts, err := s.questionRepo.CountByLevel()
	if err != nil {
		return nil, fmt.Errorf("count questions by level: %w", err)
	}
	sizes := make(map[int]int64, s.maxLevel+1)
	for level := 0; level <= s.maxLevel; level++ {
		sizes[level] = counts[level]
	}
	return sizes, nil
}

func (s *QuestionImporter) parseRow(row []string) (*entity.Question, string) {
	cells := make([]string, importColumns)
	for i := 0; i < importColumns && i < len(row); i++ {
		cells[i] = strings.TrimSpace(row[i])
	}

	level, err := strconv.Atoi(cells[0])
	if err != nil {
		return nil, fmt.Sprintf("invalid level %q", cells[0])
	}
	if level < 0 || level > s.maxLevel {
		return nil, fmt.Sprintf("level %d out of range 0..%d", level, s.maxLevel)
	}

	question := &entity.Question{
		Level:   level,
		Text:    cells[1],
		Answer1: cells[2],
		Answer2: cells[3],
		Answer3: cells[4],
		Answer4: cells[5],
	}
	if !question.IsComplete() {
		return nil, "question text and all four answers are required"
	}
	if reason := overlongReason(question); reason != "" {
		return nil, reason
	}
	return question, ""
}

// overlongReason сообщает о поле, которое длиннее своей колонки (в символах)
func overlongReason(q *entity.Question) string {
	if utf8.RuneCountInString(q.Text) > entity.MaxQuestionTextLength {
		return fmt.Sprintf("text longer than %d characters", entity.MaxQuestionTextLength)
	}
	for n := 1; n <= entity.AnswerCount; n++ {
		if utf8.RuneCountInString(q.Answer(n)) > entity.MaxAnswerLength {
			return fmt.Sprintf("answer %d longer than %d characters", n, entity.MaxAnswerLength)
		}
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
