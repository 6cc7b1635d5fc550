package main

import (
	"log"
	"os"

	"github.com/ibrokhimov/matembot/internal/app"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/values_example.yaml"
	}

	botApp, err := app.NewApp(configPath)
	if err != nil {
		log.Fatalf("Ошибка инициализации приложения: %v", err)
	}
	defer botApp.Logger().Sync()

	if err := botApp.ListenAndServeTelegram(); err != nil {
		log.Fatalf("Не удалось запустить бота: %v", err)
	}
}
