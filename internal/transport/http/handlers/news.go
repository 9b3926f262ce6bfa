package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-traffic-news/internal/errors"
	"github.com/pribylovaa/go-traffic-news/internal/models"
)

// NewsResponse — тело ответа GET /news/{state}.
type NewsResponse struct {
	Total int           `json:"total"`
	Items []models.News `json:"items"`
}

// ListNews собирает все сообщения для земли из пути.
//
// Query-параметры (все необязательны): country, street, construction_sites,
// traffic_news, page. Неизвестная земля и битые параметры -> 400 до запроса к апстриму.
func (h *Handlers) ListNews(w http.ResponseWriter, r *http.Request) {
	state, err := models.ParseState(chi.URLParam(r, "state"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	req, err := newsRequestFromQuery(state, r.URL.Query())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, total, err := h.News.Collect(r.Context(), req)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if items == nil {
		items = []models.News{}
	}

	writeJSON(w, http.StatusOK, NewsResponse{Total: total, Items: items})
}

func newsRequestFromQuery(state models.State, q url.Values) (models.NewsRequest, error) {
	req := models.DefaultRequest(state.String())

	if v := q.Get("country"); v != "" {
		req.Country = v
	}
	req.Street = q.Get("street")

	if v := q.Get("construction_sites"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return req, fmt.Errorf("construction_sites: %w", apierrors.ErrInvalidArgument)
		}
		req.ConstructionSites = b
	}

	if v := q.Get("traffic_news"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return req, fmt.Errorf("traffic_news: %w", apierrors.ErrInvalidArgument)
		}
		req.TrafficNews = b
	}

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < models.FirstPage {
			return req, fmt.Errorf("page: %w", apierrors.ErrInvalidArgument)
		}
		req.PageNumber = n
	}

	return req, nil
}
