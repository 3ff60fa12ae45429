package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	intconfig "sleeperbus/internal/config"
	"sleeperbus/internal/domain"
	"sleeperbus/internal/domain/models"
	router "sleeperbus/internal/http"
	"sleeperbus/internal/http/handlers"
	"sleeperbus/internal/repositories"
	"sleeperbus/internal/services"
	"sleeperbus/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logger, err := utils.InitLogger(env.AppEnv, env.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	route, err := domain.NewRoute(intconfig.DefaultStations())
	if err != nil {
		logger.Fatal("invalid route topology", zap.Error(err))
	}
	ledger := repositories.NewSeatLedger(route, models.GenerateSeats(env.SeatCount))
	store := repositories.NewBookingStore()
	bus := intconfig.DefaultBus(ledger.Len())

	locker, closeLocker := buildLocker(env, bus, logger)
	defer closeLocker()

	bookings := &services.BookingService{
		Route:    route,
		Ledger:   ledger,
		Bookings: store,
		Fares:    services.FareService{Route: route, UnitRate: env.FareUnitRate},
		Meals:    intconfig.DefaultMeals(),
		Locker:   locker,
	}

	hs := &handlers.Handlers{
		Bookings:    bookings,
		Stats:       services.StatisticsService{Bookings: store, Ledger: ledger},
		Bus:         bus,
		LockTimeout: env.LockTimeout,
	}

	if env.DBDSN != "" {
		db, err := intconfig.ConnectDB(env.DBDSN)
		if err != nil {
			logger.Fatal("failed to connect booking journal", zap.Error(err))
		}
		defer closeDB(db, logger)
		journal := repositories.NewBookingJournal(db)
		bookings.Journal = journal
		hs.Journal = journal
		logger.Info("booking journal enabled")
	}

	tickets := services.TicketService{Secret: ticketSecret(env, logger), Bookings: store}
	hs.Tickets = tickets
	hs.Docs = services.DocsService{Booking: bookings, Tickets: tickets, Bus: bus}

	r := router.NewRouter(env, hs)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			zap.String("addr", env.AppAddr), zap.Int("seats", ledger.Len()), zap.Int("stations", route.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}

// buildLocker picks the seat lock backend. The seat ledger and booking store
// are in process memory, so Redis locks do not make multiple replicas safe:
// each replica still sells from its own ledger.
func buildLocker(env intconfig.Env, bus models.Bus, logger *zap.Logger) (services.SeatLocker, func()) {
	if !strings.EqualFold(env.LockBackend, "redis") {
		logger.Info("using in-process seat locks")
		return services.NewLocalSeatLocker(), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     env.RedisAddr,
		Password: env.RedisPassword,
		DB:       env.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect redis", zap.String("addr", env.RedisAddr), zap.Error(err))
	}
	logger.Info("using redis seat locks", zap.String("addr", env.RedisAddr))
	logger.Warn("redis seat locks only serialize requests; seat state is per process, run a single replica")
	locker := &services.RedisSeatLocker{
		Client: client,
		Prefix: "seatlock:" + bus.ID,
		TTL:    env.LockTTL,
	}
	return locker, func() {
		if err := client.Close(); err != nil {
			logger.Warn("redis close failed", zap.Error(err))
		}
	}
}

func ticketSecret(env intconfig.Env, logger *zap.Logger) []byte {
	if env.TicketSecret != "" {
		return []byte(env.TicketSecret)
	}
	if env.IsProduction() {
		logger.Fatal("TICKET_SECRET is required in production")
	}
	logger.Warn("TICKET_SECRET not set, ticket codes will not survive a restart")
	return []byte(uuid.NewString())
}

func closeDB(db *sql.DB, logger *zap.Logger) {
	if err := db.Close(); err != nil {
		logger.Warn("database close failed", zap.Error(err))
	}
}
