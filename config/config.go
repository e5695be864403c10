package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const (
	defaultServerAddr     = ":8080"
	defaultLogLevel       = "info"
	defaultTimeZone       = "UTC"
	defaultMaxViewEntries = 1024
)

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Content ContentConfig `yaml:"content"`
	Assets  AssetsConfig  `yaml:"assets"`
	Display DisplayConfig `yaml:"display"`
	Views   ViewsConfig   `yaml:"views"`
	CORS    CORSConfig    `yaml:"cors"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// ContentConfig 는 포스트 목록을 내려주는 외부 콘텐츠 API 설정이다.
type ContentConfig struct {
	// PostsURL 은 포스트 배열(JSON)을 반환하는 엔드포인트의 전체 URL 이다.
	PostsURL string `yaml:"posts_url"`

	// Timeout 은 0 이면 적용하지 않는다. 응답이 오지 않으면 목록은 Loading 상태에 머문다.
	Timeout time.Duration `yaml:"timeout"`
}

// AssetsConfig 는 상대 경로 이미지를 절대 URL 로 바꿀 때 사용하는 base URL 을 담는다.
type AssetsConfig struct {
	BaseURL string `yaml:"base_url"`
}

// DisplayConfig 는 카드의 날짜 표시 방식(타임존)이다.
type DisplayConfig struct {
	TimeZone string `yaml:"timezone"`
}

// ViewsConfig 는 메모리에 유지할 목록 display 수의 상한이다.
type ViewsConfig struct {
	MaxEntries int `yaml:"max_entries"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

var config *AppConfig

// InitApp 은 프로젝트 base path 의 .env 와 config.yaml 을 읽어 프로세스 전역 설정으로 둔다.
func InitApp() {
	// 환경변수 로드
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c, err := Load(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// Load 는 path 의 YAML 을 읽고 환경변수 override 와 기본값을 적용한다.
// 파일이 없어도 에러가 아니다. 환경변수만으로도 동작할 수 있다.
func Load(path string) (AppConfig, error) {
	var c AppConfig

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return AppConfig{}, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(&c)
	applyDefaults(&c)
	return c, nil
}

func applyEnv(c *AppConfig) {
	if v, ok := os.LookupEnv("BLOGPOST_API_URL"); ok {
		c.Content.PostsURL = v
	}
	if v, ok := os.LookupEnv("BASE_URL"); ok {
		c.Assets.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("CONTENT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Content.Timeout = d
		}
	}
	if v := os.Getenv("VIEWS_MAX_ENTRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Views.MaxEntries = n
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.CORS.AllowedOrigins = splitComma(v)
	}
}

func applyDefaults(c *AppConfig) {
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = defaultServerAddr
	}
	if strings.TrimSpace(c.Display.TimeZone) == "" {
		c.Display.TimeZone = defaultTimeZone
	}
	if c.Views.MaxEntries <= 0 {
		c.Views.MaxEntries = defaultMaxViewEntries
	}
	if c.Content.Timeout < 0 {
		c.Content.Timeout = 0
	}
}

// Location 은 표시용 타임존을 돌려준다. 알 수 없는 이름이면 UTC 를 쓴다.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Display.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func splitComma(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
