package main

import (
	"context"
	"os"

	"delivery-service/internal/config"
	"delivery-service/internal/external"
	"delivery-service/internal/handler"
	"delivery-service/internal/metrics"
	"delivery-service/internal/repository"
	"delivery-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//	@title			Delivery Radius API
//	@version		1.0
//	@description	Delivery radius configuration and vendor to customer range checks.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	setupLogger(config.LogLevel, config.LogFormat)

	ctx := context.Background()
	memory := repository.NewMemoryRepository()

	var geocodingStore service.GeocodingStore = memory
	var radiusStore service.RadiusStore = memory
	if config.Store == "postgres" {
		conn, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		if err := repo.InitSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("cannot create schema")
		}
		geocodingStore, radiusStore = repo, repo
	}

	var courierStore service.CourierLocationStore = memory
	if config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Str("addr", config.RedisAddr).Msg("cannot connect to redis")
		}
		defer rdb.Close()
		courierStore = repository.NewRedisCourierStore(rdb)
	}

	var users service.UserAPI = external.FakeUserAPI{}
	var vendors external.VendorAPI = external.FakeVendorAPI{}
	if !config.IsDev() {
		users = external.NewUserClient(config.UserServiceURL, config.HTTPClientTimeout)
		vendors = external.NewVendorClient(config.VendorServiceURL, config.HTTPClientTimeout)
	}

	// Initialize layers
	geoCodeService := service.NewGeoCodeService(geocodingStore)
	radiusService := service.NewRadiusService(radiusStore, geoCodeService)
	authService := service.NewAuthorisationService(users)
	courierService := service.NewCourierLocationService(courierStore)

	if config.SeedFakeData {
		if err := seedFakeData(ctx, geoCodeService, courierService); err != nil {
			log.Fatal().Err(err).Msg("cannot seed fake data")
		}
	}

	collector, err := metrics.NewCollector(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot register metrics")
	}

	if !config.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := handler.NewRouter(handler.Routes{
		Vendor:   handler.NewVendorHandler(radiusService, authService, external.NewVendorDirectory(vendors), collector),
		Admin:    handler.NewAdminHandler(radiusService, geoCodeService, authService),
		Courier:  handler.NewCourierHandler(courierService, authService),
		GeoCode:  handler.NewGeoCodeHandler(geoCodeService, authService),
		Metrics:  collector.Handler(),
		Observer: collector,
	})

	log.Info().
		Str("addr", config.ServerAddress).
		Str("env", config.Env).
		Str("store", config.Store).
		Bool("redis", config.RedisAddr != "").
		Msg("starting server")

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
