package app

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/answer_handler"
	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/broadcast_handler"
	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/class_handler"
	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/contact_handler"
	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/courses_handler"
	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/group_handler"
	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/menu_handler"
	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/results_handler"
	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/school_handler"
	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/start_handler"
	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/start_test_handler"
	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/text_handler"
	"github.com/ibrokhimov/matembot/internal/database"
	"github.com/ibrokhimov/matembot/internal/database/userlock"
	"github.com/ibrokhimov/matembot/internal/domain/broadcast"
	"github.com/ibrokhimov/matembot/internal/domain/content"
	"github.com/ibrokhimov/matembot/internal/domain/model"
	"github.com/ibrokhimov/matembot/internal/domain/onboarding"
	"github.com/ibrokhimov/matembot/internal/domain/quiz"
	"github.com/ibrokhimov/matembot/internal/infra/config"
	"github.com/ibrokhimov/matembot/internal/infra/logger"
	"github.com/ibrokhimov/matembot/internal/infra/poller"
	tgadapter "github.com/ibrokhimov/matembot/internal/telegram"
	"github.com/ibrokhimov/matembot/middleware"
)

type Services struct {
	onboardingService *onboarding.Service
	quizService       *quiz.Service
	broadcastService  *broadcast.Service
}

type App struct {
	config  *config.Config
	log     *zap.Logger
	bot     *telebot.Bot
	store   database.Store
	content *content.Registry
	locks   *userlock.Keyed

	Services
}

func NewApp(configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	log := logger.New(configImpl.Log.Path, configImpl.Log.Debug)

	store, err := initStore(configImpl)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	registry, err := content.Load(
		configImpl.Content.QuestionsFile,
		configImpl.Content.SchoolsFile,
		configImpl.Content.CoursesFile,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	return &App{
		config:  configImpl,
		log:     log,
		store:   store,
		content: registry,
		locks:   userlock.New(),
	}, nil
}

// Функция для инициализации хранилища по типу из конфигурации
func initStore(cfg *config.Config) (database.Store, error) {
	switch cfg.Storage.Type {
	case "memory":
		return database.NewMemoryStore(), nil
	case "json":
		return database.NewJSONStore(cfg.Storage.UsersFile, cfg.Storage.ResultsFile)
	case "postgres":
		return database.NewPostgresStore(context.Background(), cfg.Storage.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
}

// ListenAndServeTelegram запускает сервер Telegram бота
func (app *App) ListenAndServeTelegram() error {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  app.config.TelegramBot.Token,
		Poller: poller.New(app.config),
	})
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	app.initServices()
	app.bootstrapHandlersTelegram()

	app.log.Info("bot started",
		zap.String("mode", app.config.TelegramBot.Mode),
		zap.String("storage", app.config.Storage.Type))

	app.bot.Start()
	return nil
}

// Функция для инициализации сервисов поверх общего транспортного адаптера
func (app *App) initServices() {
	messenger := tgadapter.NewMessenger(app.bot)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	app.onboardingService = onboarding.NewService(app.store, app.content, messenger, app.config.Group.ID, app.log)
	app.quizService = quiz.NewService(app.store, app.content, messenger, rnd, app.log)
	app.broadcastService = broadcast.NewService(app.store, messenger, app.log)
}

// bootstrapHandlersTelegram - регистрирует обработчики для бота
func (app *App) bootstrapHandlersTelegram() {
	// Блокировка пользователя обязана быть внешним слоем: все обработчики
	// читают и перезаписывают его запись целиком.
	app.bot.Use(middleware.Serialize(app.locks))
	app.bot.Use(middleware.Recover(app.log))
	if app.config.Log.Debug {
		app.bot.Use(middleware.Logger(app.log))
		app.bot.Use(middleware.UserActions(app.log))
	}

	startHandler := start_handler.NewStartHandler(app.onboardingService, app.content, app.config.Group.InviteLink)
	classHandler := class_handler.NewClassHandler(app.onboardingService, app.content)
	schoolHandler := school_handler.NewSchoolHandler(app.onboardingService)
	contactHandler := contact_handler.NewContactHandler(app.onboardingService, app.config.Group.InviteLink)
	groupHandler := group_handler.NewGroupHandler(app.onboardingService)
	menuHandler := menu_handler.NewMenuHandler(app.store)
	startTestHandler := start_test_handler.NewStartTestHandler(app.quizService)
	answerHandler := answer_handler.NewAnswerHandler(app.quizService)
	resultsHandler := results_handler.NewResultsHandler(app.store)
	coursesHandler := courses_handler.NewCoursesHandler(app.content)
	broadcastHandler := broadcast_handler.NewBroadcastHandler(app.store, app.broadcastService, app.config.IsAdmin)
	textHandler := text_handler.NewTextHandler(app.store, app.onboardingService, app.broadcastService, app.config.IsAdmin, app.config.Group.InviteLink)

	app.bot.Handle("/start", startHandler.GetHandlerFunc())
	app.bot.Handle("/broadcast", broadcastHandler.HandleCommand)

	app.bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		data := c.Callback().Data

		// Очищаем данные от нестандартных символов
		cleanedData := strings.TrimSpace(data)
		cleanedData = strings.ReplaceAll(cleanedData, "\f", "")
		cleanedData = strings.ReplaceAll(cleanedData, "\\f", "")

		switch {
		case strings.HasPrefix(cleanedData, model.ClassPrefix):
			return classHandler.Handle(c)
		case strings.HasPrefix(cleanedData, model.SchoolPrefix):
			return schoolHandler.Handle(c)
		case strings.HasPrefix(cleanedData, model.AnswerPrefix):
			return answerHandler.Handle(c)
		case strings.HasPrefix(cleanedData, model.CourseInfoPrefix):
			return coursesHandler.HandleDetails(c)
		}

		switch cleanedData {
		case model.StartTestKey:
			return startTestHandler.Handle(c)
		case model.CheckGroupKey:
			return groupHandler.Handle(c)
		case model.CoursesListKey:
			return coursesHandler.HandleList(c)
		case model.ShowResultsKey:
			return resultsHandler.Handle(c)
		case model.MainMenuKey:
			return menuHandler.Handle(c)
		}
		return nil
	})

	app.bot.Handle(telebot.OnText, textHandler.GetHandlerFunc())
	app.bot.Handle(telebot.OnContact, contactHandler.GetHandlerFunc())
	app.bot.Handle(telebot.OnPhoto, broadcastHandler.HandlePhoto)
}

// Logger возвращает логгер приложения для финального Sync.
func (app *App) Logger() *zap.Logger {
	return app.log
}
