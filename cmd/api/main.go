package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/peoplehub/employee-system/internal/api"
	"github.com/peoplehub/employee-system/internal/core/service"
	"github.com/peoplehub/employee-system/internal/infrastructure/config"
	mongodb "github.com/peoplehub/employee-system/internal/infrastructure/db/mongo"
	redisdb "github.com/peoplehub/employee-system/internal/infrastructure/db/redis"
	"github.com/peoplehub/employee-system/internal/infrastructure/mail"
	"github.com/peoplehub/employee-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting employee system API")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	// --- Services ---
	passwords := service.PasswordPolicy{Plaintext: cfg.Auth.PlaintextPasswords}
	tokenService := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})

	authService := service.NewAuthService(userRepo, tokenService, mailer, service.AuthConfig{
		ResetTokenTTL:   cfg.Auth.ResetTokenTTL,
		FrontendBaseURL: cfg.Auth.FrontendBaseURL,
		AdminUsername:   cfg.Admin.Username,
		AdminEmail:      cfg.Admin.Email,
		AdminPassword:   cfg.Admin.Password,
		Passwords:       passwords,
	}, log)

	employeeCache := redisdb.NewEmployeeCache(rdb)
	employeeService := service.NewEmployeeService(employeeRepo, userRepo, employeeCache, service.EmployeeConfig{
		DefaultPassword: cfg.Auth.DefaultUserPassword,
		Passwords:       passwords,
	}, log)

	attendanceService := service.NewAttendanceService(attendanceRepo, employeeRepo, log)

	// Bootstrap: the admin account must exist before traffic is accepted.
	if err := authService.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Tokens:         tokenService,
		Auth:           authService,
		Employees:      employeeService,
		Attendance:     attendanceService,
		DB:             db,
		RDB:            rdb,
		AllowAnonymous: cfg.Auth.AllowAnonymous,
		Log:            log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
