package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pribylovaa/go-traffic-news/internal/models"
)

// NewsService — то, что хендлерам нужно от драйвера пагинации.
type NewsService interface {
	Collect(ctx context.Context, req models.NewsRequest) ([]models.News, int, error)
}

// Handlers агрегирует зависимости HTTP-хендлеров.
type Handlers struct {
	News NewsService
}

func New(svc NewsService) *Handlers {
	return &Handlers{News: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
