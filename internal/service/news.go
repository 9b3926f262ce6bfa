package service

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-traffic-news/internal/models"
	"github.com/pribylovaa/go-traffic-news/pkg/log"
)

// News возвращает ленивую однопроходную последовательность сообщений по фильтру req.
//
// Особенности:
//   - страницы запрашиваются строго последовательно, начиная с req.PageNumber
//     (значение < 1 трактуется как 1); следующая страница запрашивается
//     только когда потребитель дочитал текущую;
//   - остановка: seen >= total первой страницы; пустая страница раньше
//     total -> ErrStalled; превышение MaxPages -> ErrMaxPages;
//   - при req.PageNumber > 1 пустая страница завершает набор, как и ошибка
//     на странице сразу за первой, если та могла быть последней неполной;
//   - break у потребителя прекращает запросы;
//   - ошибка отдаётся один раз парой (zero, err), после чего последовательность
//     заканчивается; уже выданные элементы не отзываются;
//   - повторный range отдаёт только ErrConsumed.
func (s *Service) News(ctx context.Context, req models.NewsRequest) iter.Seq2[models.News, error] {
	consumed := false

	return func(yield func(models.News, error) bool) {
		if consumed {
			yield(models.News{}, ErrConsumed)
			return
		}
		consumed = true

		s.run(ctx, req, nil, yield)
	}
}

// Collect материализует News в срез. total — размер набора по первой странице.
func (s *Service) Collect(ctx context.Context, req models.NewsRequest) ([]models.News, int, error) {
	var (
		items  []models.News
		total  int
		runErr error
	)

	s.run(ctx, req, func(t int) { total = t }, func(n models.News, err error) bool {
		if err != nil {
			runErr = err
			return false
		}
		items = append(items, n)
		return true
	})

	return items, total, runErr
}

// run — цикл пагинации. onTotal (может быть nil) вызывается один раз
// с total первой полученной страницы.
func (s *Service) run(ctx context.Context, req models.NewsRequest, onTotal func(int), yield func(models.News, error) bool) {
	const op = "service.News"

	ctx = withRunID(ctx)
	lg := log.From(ctx)

	start := req.PageNumber
	if start < 1 {
		start = models.FirstPage
	}

	var (
		page    = start
		seen    int
		total   int
		fetched int
		// pastEnd — следующая страница может оказаться за концом набора.
		pastEnd bool
	)

	for {
		if s.cfg.MaxPages > 0 && fetched >= s.cfg.MaxPages {
			lg.Warn("max_pages_exceeded",
				slog.String("op", op),
				slog.Int("max_pages", s.cfg.MaxPages),
				slog.Int("seen", seen),
				slog.Int("total", total),
			)
			yield(models.News{}, fmt.Errorf("%s: %w: fetched %d pages, %d of %d items", op, ErrMaxPages, fetched, seen, total))
			return
		}

		if err := ctx.Err(); err != nil {
			yield(models.News{}, fmt.Errorf("%s: %w", op, err))
			return
		}

		p, err := s.fetcher.FetchPage(ctx, req.WithPage(page))
		if err != nil && pastEnd && ctx.Err() == nil {
			lg.Info("news_done",
				slog.String("op", op),
				slog.Int("pages", fetched),
				slog.Int("page_past_end", page),
				slog.String("err", err.Error()),
			)
			return
		}
		if err != nil {
			lg.Warn("page_fetch_failed",
				slog.String("op", op),
				slog.Int("page", page),
				slog.String("err", err.Error()),
			)
			yield(models.News{}, fmt.Errorf("%s: page=%d: %w", op, page, err))
			return
		}
		fetched++

		if fetched == 1 {
			total = p.Total
			// Страницы до start не запрашивались: считаем их полными по размеру первой.
			seen = (start - 1) * len(p.Items)
			pastEnd = lastPartialPossible(total, len(p.Items), start)
			if onTotal != nil {
				onTotal(total)
			}
		} else {
			pastEnd = false
		}

		lg.Debug("page_fetched",
			slog.String("op", op),
			slog.Int("page", page),
			slog.Int("items", len(p.Items)),
			slog.Int("total", total),
		)

		for _, n := range p.Items {
			if !yield(n, nil) {
				lg.Debug("consumer_stopped", slog.String("op", op), slog.Int("page", page))
				return
			}
		}
		seen += len(p.Items)

		if seen >= total {
			lg.Info("news_done",
				slog.String("op", op),
				slog.Int("pages", fetched),
				slog.Int("items", seen),
			)
			return
		}

		if len(p.Items) == 0 {
			if start > models.FirstPage {
				return
			}
			lg.Warn("page_empty_before_total",
				slog.String("op", op),
				slog.Int("page", page),
				slog.Int("seen", seen),
				slog.Int("total", total),
			)
			yield(models.News{}, fmt.Errorf("%s: %w: page=%d, %d of %d items", op, ErrStalled, page, seen, total))
			return
		}

		page++
	}
}

// lastPartialPossible сообщает, может ли страница start из k элементов быть
// последней неполной страницей набора из total при полном размере больше k.
// Тогда следующую страницу запросить придётся, но ошибка на ней означает конец набора.
func lastPartialPossible(total, k, start int) bool {
	if start <= models.FirstPage || k == 0 {
		return false
	}
	rest := total - k
	return rest > 0 && rest%(start-1) == 0 && rest/(start-1) > k
}

// withRunID присваивает прогону идентификатор, если его ещё нет в ctx.
func withRunID(ctx context.Context) context.Context {
	if log.RunID(ctx) != "" {
		return ctx
	}
	return log.WithRunID(ctx, uuid.NewString())
}
