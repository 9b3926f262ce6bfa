// config предоставляет структуру конфигурации traffic-news
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация клиента.
// Приоритет источников:
//  1. явный путь, переданный в Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
//
// Флаги CLI применяются поверх загруженного значения.
type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	Upstream   UpstreamConfig   `yaml:"upstream"`
	Pagination PaginationConfig `yaml:"pagination"`
	HTTP       HTTPConfig       `yaml:"http"`
	Timeouts   TimeoutConfig    `yaml:"timeouts"`
}

// UpstreamConfig — параметры GraphQL-эндпоинта ADAC.
type UpstreamConfig struct {
	URL       string        `yaml:"url"        env:"ADAC_URL"        env-default:"https://www.adac.de/bff"`
	Timeout   time.Duration `yaml:"timeout"    env:"ADAC_TIMEOUT"    env-default:"15s"`
	UserAgent string        `yaml:"user_agent" env:"ADAC_USER_AGENT" env-default:"traffic-news/1.0"`
	// MaxBodyBytes — верхняя граница размера тела ответа одной страницы.
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"ADAC_MAX_BODY_BYTES" env-default:"4194304"`
}

// PaginationConfig — защита от апстрима, чей size недостижим.
type PaginationConfig struct {
	// MaxPages — максимум запрошенных страниц за один прогон; 0 — без ограничения.
	MaxPages int `yaml:"max_pages" env:"MAX_PAGES" env-default:"50"`
}

// HTTPConfig — сетевые настройки HTTP-сервера (команда serve).
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	// BasePath — префикс API-роутов, например "/api"; /metrics остаётся на корне.
	BasePath string `yaml:"base_path" env:"HTTP_BASE_PATH"`
}

// TimeoutConfig — таймауты запроса к HTTP-серверу.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE" env-default:"30s"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		return finish(c)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		return finish(c)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		return finish(&cfg)
	}

	// 4) Только ENV. Все поля имеют дефолты, поэтому файл не обязателен.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	return finish(&cfg)
}

func finish(c *Config) (*Config, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	u, err := url.Parse(c.Upstream.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("upstream.url must be an absolute http(s) URL, got %q", c.Upstream.URL)
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream.timeout must be > 0")
	}
	if c.Upstream.MaxBodyBytes <= 0 {
		return fmt.Errorf("upstream.max_body_bytes must be > 0")
	}
	if c.Pagination.MaxPages < 0 {
		return fmt.Errorf("pagination.max_pages must be >= 0")
	}
	if bp := c.HTTP.BasePath; bp != "" && (!strings.HasPrefix(bp, "/") || strings.HasSuffix(bp, "/")) {
		return fmt.Errorf("http.base_path must start with / and not end with /, got %q", bp)
	}
	if c.Timeouts.Service <= 0 {
		return fmt.Errorf("timeouts.service must be > 0")
	}
	return nil
}
