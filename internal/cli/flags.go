package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/pribylovaa/go-traffic-news/internal/config"
	"github.com/pribylovaa/go-traffic-news/internal/models"
)

// requestFlags — фильтр запроса, общий для корневой команды и query.
type requestFlags struct {
	country           string
	street            string
	constructionSites bool
	trafficNews       bool
	page              int
	anyState          bool
}

func (f *requestFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.country, "country", models.DefaultCountry, "country code as ADAC expects it")
	fs.StringVar(&f.street, "street", "", "road filter, e.g. A10 (empty: all roads)")
	fs.BoolVar(&f.constructionSites, "construction-sites", false, "include construction sites")
	fs.BoolVar(&f.trafficNews, "traffic-news", true, "include traffic news")
	fs.IntVar(&f.page, "page", models.FirstPage, "first page to request")
	fs.BoolVar(&f.anyState, "any-state", false, "pass STATE to the backend without checking the code list")
}

// request собирает NewsRequest из аргумента STATE и флагов.
// Неизвестная земля отклоняется до любого запроса, если не задан --any-state.
func (f *requestFlags) request(arg string) (models.NewsRequest, error) {
	state := strings.TrimSpace(arg)
	if !f.anyState {
		s, err := models.ParseState(arg)
		if err != nil {
			return models.NewsRequest{}, usageError(err, "run 'traffic-news states' for the list of codes")
		}
		state = s.String()
	}

	if f.page < models.FirstPage {
		return models.NewsRequest{}, usageError(
			fmt.Errorf("--page must be >= %d, got %d", models.FirstPage, f.page), "",
		)
	}

	req := models.DefaultRequest(state)
	req.Country = f.country
	req.Street = f.street
	req.ConstructionSites = f.constructionSites
	req.TrafficNews = f.trafficNews
	req.PageNumber = f.page

	return req, nil
}

// fetchFlags — параметры прогона, перекрывающие конфигурацию.
type fetchFlags struct {
	maxPages int
	timeout  time.Duration
	json     bool
}

func (f *fetchFlags) bind(fs *pflag.FlagSet) {
	fs.IntVar(&f.maxPages, "max-pages", 0, "page limit per run, 0 = unlimited (default from config)")
	fs.DurationVar(&f.timeout, "timeout", 0, "per-request timeout (default from config)")
	fs.BoolVar(&f.json, "json", false, "print one JSON object per line")
}

// apply переносит явно заданные флаги поверх cfg.
func (f *fetchFlags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("max-pages") {
		if f.maxPages < 0 {
			return usageError(errors.New("--max-pages must not be negative"), "")
		}
		cfg.Pagination.MaxPages = f.maxPages
	}
	if fs.Changed("timeout") {
		if f.timeout <= 0 {
			return usageError(errors.New("--timeout must be positive"), "")
		}
		cfg.Upstream.Timeout = f.timeout
	}
	return nil
}
