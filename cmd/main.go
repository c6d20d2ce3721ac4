package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookTourHandler "github.com/avdmit/HTS-TourService/internal/api/handlers/book_tour"
	cancelTourHandler "github.com/avdmit/HTS-TourService/internal/api/handlers/cancel_tour"
	getAvailableSlotsHandler "github.com/avdmit/HTS-TourService/internal/api/handlers/get_available_slots"
	getStatsHandler "github.com/avdmit/HTS-TourService/internal/api/handlers/get_stats"
	rescheduleTourHandler "github.com/avdmit/HTS-TourService/internal/api/handlers/reschedule_tour"
	"github.com/avdmit/HTS-TourService/internal/api/middleware"
	"github.com/avdmit/HTS-TourService/internal/config"
	"github.com/avdmit/HTS-TourService/internal/infra/cache"
	tourRepo "github.com/avdmit/HTS-TourService/internal/infra/storage/tour"
	propertyInfoClient "github.com/avdmit/HTS-TourService/internal/integrations/propertyinfo"
	toursService "github.com/avdmit/HTS-TourService/internal/service/tours"
	bookTourUC "github.com/avdmit/HTS-TourService/internal/usecase/book_tour"
	getAvailableSlotsUC "github.com/avdmit/HTS-TourService/internal/usecase/get_available_slots"
	rescheduleTourUC "github.com/avdmit/HTS-TourService/internal/usecase/reschedule_tour"
	"github.com/avdmit/HTS-TourService/pkg/logger"
	"github.com/avdmit/HTS-TourService/pkg/metrics"
	"github.com/avdmit/HTS-TourService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting HTS-TourService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Периодически снимаем размер пула соединений в метрики
	if cfg.Metrics.Enabled {
		go func() {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for range ticker.C {
				metricsCollector.DBConnectionsOpen.Set(float64(db.Stats().OpenConnections))
			}
		}()
	}

	// Инициализируем клиент property-information сервиса
	propertyClient := propertyInfoClient.NewClient(
		cfg.PropertyService.URL,
		time.Duration(cfg.PropertyService.Timeout)*time.Second,
		log,
	)
	log.Info("PropertyInfo client initialized (url=%s, timeout=%ds)",
		cfg.PropertyService.URL, cfg.PropertyService.Timeout)

	// Шлюз доступности: с кэшем или напрямую
	var gate cache.SelfServeGate = propertyClient
	if cfg.Cache.Enabled {
		cached, err := cache.NewPropertyInfoCache(
			propertyClient,
			cfg.Cache.Size,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize property info cache: %v", err)
		}
		gate = cached
		log.Info("PropertyInfo cache enabled (size=%d, ttl=%ds)", cfg.Cache.Size, cfg.Cache.TTLSeconds)
	}

	// Инициализируем репозиторий и transaction manager
	tourRepository := tourRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы и use cases
	tourSvc := toursService.NewService(tourRepository, log)
	bookTourUseCase := bookTourUC.NewUseCase(tourRepository, gate, txMgr, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(tourRepository, gate, log)
	rescheduleTourUseCase := rescheduleTourUC.NewUseCase(tourRepository, txMgr, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookTour := bookTourHandler.NewHandler(bookTourUseCase, log)
	cancelTour := cancelTourHandler.NewHandler(tourSvc, log)
	rescheduleTour := rescheduleTourHandler.NewHandler(rescheduleTourUseCase, log)
	getStats := getStatsHandler.NewHandler(tourSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Доступные слоты по объекту
	r.HandleFunc("/tour/slots/{propertyId}", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Агрегированные счетчики (регистрируется до /tour/{tourId})
	r.HandleFunc("/tour/stats", getStats.Handle).Methods(http.MethodGet)

	// Бронирование тура
	r.HandleFunc("/tour", bookTour.Handle).Methods(http.MethodPost)

	// Отмена тура
	r.HandleFunc("/tour/{tourId}", cancelTour.Handle).Methods(http.MethodDelete)

	// Перенос тура
	r.HandleFunc("/tour/{tourId}/reschedule", rescheduleTour.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
