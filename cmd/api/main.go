package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/Papipp/travelrek/internal/config"
	"github.com/Papipp/travelrek/internal/handler"
	"github.com/Papipp/travelrek/internal/repository"
	"github.com/Papipp/travelrek/internal/service"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL драйвер
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}

	// Выполняем миграции (если есть)
	files, err := filepath.Glob("migrations/*.sql")
	if err == nil {
		for _, file := range files {
			if _, err := db.Exec("BEGIN"); err != nil {
				log.Printf("Ошибка при инициации транзакции миграции: %v", err)
				continue
			}
			err := func() error {
				content, readErr := os.ReadFile(file)
				if readErr != nil {
					return readErr
				}
				if _, execErr := db.Exec(string(content)); execErr != nil {
					return execErr
				}
				return nil
			}()
			if err != nil {
				log.Printf("Миграция %s завершилась ошибкой: %v", file, err)
				db.Exec("ROLLBACK")
			} else {
				db.Exec("COMMIT")
				log.Printf("Миграция %s применена.", file)
			}
		}
	}

	// Инициализируем репозитории
	userRepo := repository.NewUserRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	// Инициализируем сервисы
	authService := service.NewAuthService(userRepo)
	packageService := service.NewPackageService(packageRepo)
	bookingService := service.NewBookingService(bookingRepo, userRepo)

	// Создаем Handler и регистрируем маршруты
	h := handler.NewHandler(authService, packageService, bookingService)
	router := handler.SetupRouter(h, cfg.SessionSecret)

	// Запускаем HTTP-сервер
	if err := router.Run(":" + cfg.APIPort); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
