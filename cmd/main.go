package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	blockAllRoomsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/block_all_rooms"
	blockRoomHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/block_room"
	clearBookingsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/clear_bookings"
	createBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_availability"
	getRoomsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_rooms"
	getScheduleHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_schedule"
	getStatsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_stats"
	listBookingsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/list_bookings"
	unblockAllRoomsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/unblock_all_rooms"
	unblockRoomHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/unblock_room"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/config"
	blockedRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/blockedrooms"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/bookings"
	availabilityService "github.com/m04kA/SMC-RoomBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	roomsService "github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
	createBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	getScheduleUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_schedule"
	getStatsUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_stats"
	"github.com/m04kA/SMC-RoomBookingService/pkg/confirm"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/singlewriter"
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

	log.Info("Starting SMC-RoomBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Каталоги — статическая конфигурация, в рантайме не меняются
	slots := cfg.SlotCatalog()
	rooms := cfg.RoomCatalog()
	log.Info("Catalogs loaded: %d slots, %d rooms", slots.Len(), rooms.Len())

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Файловые репозитории; nil-наблюдатель метрик допустим
	bookingRepository := bookingRepo.NewRepository(cfg.Storage.BookingsFile, metricsCollector)
	blockedRepository := blockedRepo.NewRepository(cfg.Storage.BlockedRoomsFile, metricsCollector)
	log.Info("Storage files: bookings=%s, blocked=%s",
		cfg.Storage.BookingsFile, cfg.Storage.BlockedRoomsFile)

	// Один write gate на все изменяющие операции: файлы перезаписываются
	// целиком, и только сериализация записей удерживает инвариант
	// "одна бронь на ячейку"
	gate := singlewriter.New()

	// Двухшаговое подтверждение разрушительных операций
	guard := confirm.NewGuard()

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(bookingRepository, blockedRepository, rooms, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, gate, guard, rooms, log)
	roomsSvc := roomsService.NewService(blockedRepository, gate, guard, rooms, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockedRepository,
		gate,
		guard,
		slots,
		rooms,
		log,
	)
	getScheduleUseCase := getScheduleUC.NewUseCase(bookingRepository, blockedRepository, slots, rooms, log)
	getStatsUseCase := getStatsUC.NewUseCase(bookingRepository, blockedRepository, slots, rooms, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, slots, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)
	clearBookings := clearBookingsHandler.NewHandler(bookingsSvc, log)
	getRooms := getRoomsHandler.NewHandler(roomsSvc, log)
	blockRoom := blockRoomHandler.NewHandler(roomsSvc, log)
	unblockRoom := unblockRoomHandler.NewHandler(roomsSvc, log)
	blockAllRooms := blockAllRoomsHandler.NewHandler(roomsSvc, log)
	unblockAllRooms := unblockAllRoomsHandler.NewHandler(roomsSvc, log)
	getStats := getStatsHandler.NewHandler(getStatsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Сетка расписания на 7 дней
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Свободные комнаты в ячейке (дата, слот)
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Все записи о бронированиях
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Управление бронированиями ---
	admin.HandleFunc("/bookings/clear", clearBookings.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{slotKey}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Управление комнатами ---
	admin.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/rooms/block-all", blockAllRooms.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/unblock-all", unblockAllRooms.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{roomId}/block", blockRoom.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{roomId}/unblock", unblockRoom.Handle).Methods(http.MethodPost)

	// --- Статистика ---
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

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
