package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config содержит параметры конфигурации приложения.
type Config struct {
	TelegramBot struct {
		Token string `yaml:"token"`
		// Режим получения обновлений: "polling" или "webhook".
		Mode         string `yaml:"mode"`
		WebhookURL   string `yaml:"webhook_url"`
		ListenAddr   string `yaml:"listen_addr"`
		PollInterval int    `yaml:"poll_interval_seconds"`
	} `yaml:"telegram_bot"`

	// AdminIDs — Telegram ID операторов, которым доступна рассылка.
	AdminIDs []int64 `yaml:"admin_ids"`

	Group struct {
		// ID группы, членство в которой обязательно для прохождения теста.
		ID int64 `yaml:"id"`
		// Пригласительная ссылка, показываемая пользователю.
		InviteLink string `yaml:"invite_link"`
	} `yaml:"group"`

	Storage struct {
		// Тип хранилища: "memory", "json" или "postgres".
		Type        string `yaml:"type"`
		UsersFile   string `yaml:"users_file"`
		ResultsFile string `yaml:"results_file"`
		PostgresDSN string `yaml:"postgres_dsn"`
	} `yaml:"storage"`

	Content struct {
		QuestionsFile string `yaml:"questions_file"`
		SchoolsFile   string `yaml:"schools_file"`
		CoursesFile   string `yaml:"courses_file"`
	} `yaml:"content"`

	Log struct {
		Path  string `yaml:"path"`
		Debug bool   `yaml:"debug"`
	} `yaml:"log"`
}

// LoadConfig читает YAML-файл конфигурации и применяет переопределения из
// окружения (.env загружается, если существует). Токен из окружения имеет
// приоритет над файлом.
func LoadConfig(filename string) (*Config, error) {
	_ = godotenv.Load()

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config %s: %w", filename, err)
	}
	defer f.Close()

	cfg := &Config{}
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramBot.Token = token
	}
	if adminIDsStr := os.Getenv("ADMIN_IDS"); adminIDsStr != "" {
		cfg.AdminIDs = cfg.AdminIDs[:0]
		for _, s := range strings.Split(adminIDsStr, ",") {
			s = strings.TrimSpace(s)
			if id, err := strconv.ParseInt(s, 10, 64); err == nil {
				cfg.AdminIDs = append(cfg.AdminIDs, id)
			}
		}
	}

	cfg.applyDefaults()

	if cfg.TelegramBot.Token == "" {
		return nil, fmt.Errorf("telegram bot token is not set")
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.TelegramBot.Mode == "" {
		c.TelegramBot.Mode = "polling"
	}
	if c.TelegramBot.ListenAddr == "" {
		c.TelegramBot.ListenAddr = ":8443"
	}
	if c.TelegramBot.PollInterval <= 0 {
		c.TelegramBot.PollInterval = 2
	}
	if c.Storage.Type == "" {
		c.Storage.Type = "json"
	}
	if c.Storage.UsersFile == "" {
		c.Storage.UsersFile = "data/user_data.json"
	}
	if c.Storage.ResultsFile == "" {
		c.Storage.ResultsFile = "data/results.json"
	}
	if c.Content.QuestionsFile == "" {
		c.Content.QuestionsFile = "data/questions.json"
	}
	if c.Content.SchoolsFile == "" {
		c.Content.SchoolsFile = "data/schools.json"
	}
	if c.Content.CoursesFile == "" {
		c.Content.CoursesFile = "data/courses.json"
	}
	if c.Log.Path == "" {
		c.Log.Path = "logs/bot.log"
	}
}

// PollIntervalDuration возвращает интервал лонгпуллинга.
func (c *Config) PollIntervalDuration() time.Duration {
	return time.Duration(c.TelegramBot.PollInterval) * time.Second
}

// IsAdmin сообщает, является ли пользователь оператором.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
