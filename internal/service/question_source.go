package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	"github.com/yourusername/millionaire-api/internal/domain/repository"
	apperrors "github.com/yourusername/millionaire-api/internal/pkg/errors"
)

// Время жизни кеша ID вопросов уровня
const questionIDsCacheTTL = 10 * time.Minute

// CachedQuestionSource кеширует в Redis списки ID вопросов по уровням
type CachedQuestionSource struct {
	repo  repository.QuestionRepository
	cache repository.CacheRepository
	ttl   time.Duration
}

// NewCachedQuestionSource создает источник вопросов с кешем
func NewCachedQuestionSource(repo repository.QuestionRepository, cache repository.CacheRepository) *CachedQuestionSource {
	return &CachedQuestionSource{repo: repo, cache: cache, ttl: questionIDsCacheTTL}
}

// ListIDsByLevel возвращает ID вопросов уровня; при недоступном кеше читает БД
func (s *CachedQuestionSource) ListIDsByLevel(level int) ([]uint, error) {
	key := questionIDsCacheKey(level)

	var ids []uint
	err := s.cache.GetJSON(key, &ids)
	if err == nil && len(ids) > 0 {
		return ids, nil
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[QuestionSource] Ошибка чтения кеша %s: %v", key, err)
	}

	ids, err = s.repo.ListIDsByLevel(level)
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		if err := s.cache.SetJSON(key, ids, s.ttl); err != nil {
			log.Printf("[QuestionSource] Ошибка записи кеша %s: %v", key, err)
		}
	}
	return ids, nil
}

// GetByIDs читает вопросы напрямую из БД
func (s *CachedQuestionSource) GetByIDs(ids []uint) ([]entity.Question, error) {
	return s.repo.GetByIDs(ids)
}

// Invalidate сбрасывает кеш для уровней
func (s *CachedQuestionSource) Invalidate(levels ...int) {
	for _, level := range levels {
		if err := s.cache.Delete(questionIDsCacheKey(level)); err != nil {
			log.Printf("[QuestionSource] Ошибка сброса кеша уровня %d: %v", level, err)
		}
	}
}

func questionIDsCacheKey(level int) string {
	return fmt.Sprintf("questions:level:%d:ids", level)
}
