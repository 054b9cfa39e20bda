package main

import (
	"context"
	"net/http"
	"sync"
	"time"

	"hirehub/internal/audit"
	"hirehub/internal/config"
	"hirehub/internal/events"
	"hirehub/internal/handlers"
	"hirehub/internal/jobs"
	"hirehub/internal/middleware"
	"hirehub/internal/notify"
	"hirehub/internal/repositories"
	"hirehub/internal/routers"
	"hirehub/internal/services"
	"hirehub/internal/session"
	"hirehub/internal/storage"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app owns every long-lived dependency of the server process.
type app struct {
	cfg    *config.Config
	logger *zap.Logger

	db         *gorm.DB
	rdb        *redis.Client
	mongo      *mongo.Client
	gcs        *storage.GCSStore
	handler    http.Handler
	subscriber *events.Subscriber
	reminders  *jobs.InterviewReminderJob
}

func buildApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (_ *app, err error) {
	a := &app{cfg: cfg, logger: logger}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	if a.db, err = repositories.Open(cfg.DB.Driver, cfg.DB.DSN); err != nil {
		return nil, err
	}
	if err = repositories.Migrate(a.db); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	var store storage.Store
	switch cfg.Uploads.Backend {
	case "gcs":
		if a.gcs, err = storage.NewGCSStore(ctx, cfg.Uploads.GCSBucket, cfg.Uploads.GCSPrefix); err != nil {
			return nil, err
		}
		store = a.gcs
	default:
		if store, err = storage.NewLocalStore(cfg.Uploads.Dir); err != nil {
			return nil, err
		}
	}
	resumes := storage.NewResumes(store, logger)

	var publisher events.Publisher = events.NopPublisher{}
	var revoker session.Revoker = session.NopRevoker{}
	checks := map[string]handlers.Pinger{}
	if sqlDB, dbErr := a.db.DB(); dbErr == nil {
		checks["database"] = sqlDB
	}
	if cfg.Redis.Addr != "" {
		a.rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err = a.rdb.Ping(ctx).Err(); err != nil {
			return nil, errors.Wrap(err, "failed to connect to redis")
		}
		publisher = events.NewRedisPublisher(a.rdb)
		revoker = session.NewRedisRevoker(a.rdb)
		rdb := a.rdb
		checks["redis"] = handlers.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		a.subscriber = events.NewSubscriber(a.rdb, logger)
	} else {
		logger.Warn("REDIS_ADDR not set; lifecycle events and session revocation are disabled")
	}

	users := &repositories.UserRepository{DB: a.db}
	jobRepo := &repositories.JobRepository{DB: a.db}
	apps := &repositories.ApplicationRepository{DB: a.db}
	tests := &repositories.TestRepository{DB: a.db}
	results := &repositories.TestResultRepository{DB: a.db}
	interviews := &repositories.InterviewRepository{DB: a.db}

	if a.subscriber != nil {
		if cfg.SMTPEnabled() {
			a.subscriber.Register(notify.NewNotifier(users, jobRepo, notify.NewSMTPSender(cfg.SMTP), logger))
		}
		if cfg.Mongo.URI != "" {
			if a.mongo, err = audit.Connect(ctx, cfg.Mongo.URI); err != nil {
				return nil, err
			}
			auditStore, storeErr := audit.NewStore(ctx, a.mongo.Database(cfg.Mongo.Database))
			if storeErr != nil {
				return nil, storeErr
			}
			a.subscriber.Register(auditStore)
			client := a.mongo
			checks["mongo"] = handlers.PingFunc(func(ctx context.Context) error { return client.Ping(ctx, nil) })
		}
	}

	// Reminders are stamped as sent once published, so they need a real publisher.
	remindersOn := cfg.Reminders.Enabled && a.rdb != nil
	if cfg.Reminders.Enabled && !remindersOn {
		logger.Warn("interview reminders need REDIS_ADDR; reminders are disabled")
	}
	a.reminders = jobs.NewInterviewReminderJob(interviews, publisher, jobs.ReminderConfig{
		Enabled:  remindersOn,
		Schedule: cfg.Reminders.Schedule,
		Window:   cfg.Reminders.Window,
	}, logger)

	auth := middleware.NewAuthenticator(cfg.JWT.Secret, revoker)
	a.handler = routers.New(auth, routers.Handlers{
		Auth:        handlers.NewAuthHandler(services.NewAuthService(users, resumes, revoker, cfg.JWT.Secret, logger), cfg.IsProduction()),
		Jobs:        handlers.NewJobHandler(services.NewJobService(jobRepo)),
		Application: handlers.NewApplicationHandler(services.NewApplicationService(apps, jobRepo, users, resumes, services.Workflow{Strict: cfg.Workflow.Strict}, publisher, logger)),
		Tests:       handlers.NewTestHandler(services.NewScreeningService(tests, jobRepo)),
		Results:     handlers.NewTestResultHandler(services.NewResultService(results, tests, apps, publisher, logger)),
		Interviews:  handlers.NewInterviewHandler(services.NewInterviewService(interviews, apps, publisher, logger)),
		Resumes:     handlers.NewResumeHandler(resumes),
		Health:      handlers.NewHealthHandler(checks),
	}, routers.Options{
		CORSOrigin:     cfg.CORSOrigin,
		RequestTimeout: 60 * time.Second,
		RequestLogging: true,
	})
	return a, nil
}

// Run serves HTTP and the background workers until ctx is cancelled, then
// shuts everything down within the configured timeout.
func (a *app) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      a.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()
	var wg sync.WaitGroup

	if a.subscriber != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := a.subscriber.Run(workerCtx, nil); err != nil {
				a.logger.Error("event subscriber stopped", zap.Error(err))
			}
		}()
	}
	if err := a.reminders.Start(workerCtx); err != nil {
		return err
	}
	defer a.reminders.Stop()

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("hirehub starting", zap.String("addr", server.Addr), zap.String("env", a.cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return errors.Wrap(err, "failed to start server")
		}
	case <-ctx.Done():
	}

	a.logger.Info("hirehub shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	err := server.Shutdown(shutdownCtx)
	cancelWorkers()
	wg.Wait()
	if err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}
	a.logger.Info("hirehub exited")
	return nil
}

func (a *app) Close() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	if a.mongo != nil {
		_ = a.mongo.Disconnect(context.Background())
	}
	if a.gcs != nil {
		_ = a.gcs.Close()
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
