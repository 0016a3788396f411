package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"hr-system/pkg/config"
	"hr-system/pkg/database/migrations"
	"hr-system/pkg/database/postgresql"
	applogger "hr-system/pkg/logger"
	"hr-system/seeders"
)

func main() {
	runDictionaries := flag.Bool("dictionaries", false, "Наполнить справочники (роли, отделы, отпуска, график)")
	runAdmin := flag.Bool("admin", false, "Создать администратора")
	runAll := flag.Bool("all", false, "Запустить все сидеры")
	adminPassword := flag.String("admin-password", os.Getenv("ADMIN_PASSWORD"), "Пароль администратора")
	flag.Parse()

	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log)
	defer logger.Sync()

	logger.Info("======================================================")
	logger.Info("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	logger.Info("======================================================")

	if !*runDictionaries && !*runAdmin && !*runAll {
		logger.Warn("❌ Не выбран ни один сидер для запуска. Флаги: -dictionaries, -admin, -all")
		flag.PrintDefaults()
		return
	}

	ctx := context.Background()
	dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("не удалось подключиться к PostgreSQL", zap.Error(err))
	}
	defer dbPool.Close()

	if err := migrations.Up(ctx, dbPool, logger); err != nil {
		logger.Fatal("ошибка применения миграций", zap.Error(err))
	}

	if *runAll || *runDictionaries {
		if err := seeders.SeedDictionaries(ctx, dbPool, logger); err != nil {
			logger.Fatal("❌ Ошибка наполнения справочников", zap.Error(err))
		}
	}

	// администратор ссылается на отдел HQ и график OFFICE из справочников
	if *runAll || *runAdmin {
		if err := seeders.SeedAdmin(ctx, dbPool, *adminPassword, logger); err != nil {
			logger.Fatal("❌ Ошибка создания администратора", zap.Error(err))
		}
	}

	logger.Info("✅ Все указанные операции сидирования успешно завершены.")
}
