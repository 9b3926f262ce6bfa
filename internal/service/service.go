// service содержит драйвер пагинации дорожных новостей.
package service

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-traffic-news/internal/config"
	"github.com/pribylovaa/go-traffic-news/internal/models"
)

//go:generate mockgen -destination=../../mocks/mock_fetcher.go -package=mocks github.com/pribylovaa/go-traffic-news/internal/service Fetcher

var (
	// ErrMaxPages — достигнут лимит страниц, а набор так и не собран целиком.
	ErrMaxPages = errors.New("max pages exceeded")
	// ErrStalled — апстрим вернул пустую страницу, не добрав до заявленного size.
	ErrStalled = errors.New("empty page before total reached")
	// ErrConsumed — повторная итерация по уже пройденной последовательности.
	ErrConsumed = errors.New("news sequence already consumed")
)

// Fetcher описывает один цикл запрос → ответ → маппинг для страницы.
//
// Требования к реализации:
//  1. Page.Total — размер всего набора, как его сообщает апстрим;
//  2. Page.Items — в порядке апстрима;
//  3. реализация обязана уважать ctx (отмена/таймауты).
type Fetcher interface {
	FetchPage(ctx context.Context, req models.NewsRequest) (models.Page, error)
}

// Service — драйвер пагинации поверх Fetcher.
type Service struct {
	fetcher Fetcher
	cfg     config.PaginationConfig
}

// New создает новый экземпляр Service.
func New(fetcher Fetcher, cfg config.PaginationConfig) *Service {
	return &Service{
		fetcher: fetcher,
		cfg:     cfg,
	}
}
