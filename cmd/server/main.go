package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	docs "github.com/tazhibayda/contact-service/docs"
	"github.com/tazhibayda/contact-service/internal/config"
	"github.com/tazhibayda/contact-service/internal/contact"
	api "github.com/tazhibayda/contact-service/internal/http"
	"github.com/tazhibayda/contact-service/internal/log"
	"github.com/tazhibayda/contact-service/internal/mail"
	"github.com/tazhibayda/contact-service/internal/metrics"
	"github.com/tazhibayda/contact-service/internal/repo"
)

// @title Contact API
// @version 0.1.0
// @description Accepts contact form submissions, stores them and notifies the site owner by email.
// @schemes http https
// @BasePath /
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := log.Init(cfg.Production())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	metrics.MustRegister()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Startup without storage is pointless; bail out.
	store, err := repo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Errorf("mongo connect: %v", err)
		os.Exit(1)
	}
	defer store.Close(context.Background())

	var limiter api.Limiter = api.NewMemoryLimiter(cfg.RateLimitPerMin, time.Minute)
	if cfg.RedisAddr != "" {
		rds := repo.NewRedis(cfg.RedisAddr)
		defer rds.Close()
		limiter = &api.RedisLimiter{R: rds, Rate: cfg.RateLimitPerMin, Window: time.Minute}
	}

	mailer := mail.NewSMTPMailer(mail.SMTPOptions{
		Host:         cfg.SMTPHost,
		Port:         cfg.SMTPPort,
		User:         cfg.SMTPUser,
		Pass:         cfg.SMTPPass,
		Receiver:     cfg.ReceiverEmail,
		ConnTimeout:  cfg.SMTPConnTimeout,
		HelloTimeout: cfg.SMTPHelloTimeout,
		SendTimeout:  cfg.SMTPSendTimeout,
		Debug:        !cfg.Production(),
	})

	proc := contact.NewProcessor(store, mailer, cfg.SendDelay)
	h := api.NewHandler(store, proc, !cfg.Production())

	docs.SwaggerInfo.BasePath = "/"
	r := api.NewRouter(h, limiter, cfg.AllowedOrigins)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	srvErr := make(chan error, 1)
	go func() { srvErr <- srv.ListenAndServe() }()

	log.Infof("contact-service listening on :%s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Infof("signal: %s, shutting down", s)
		shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shCancel()
		if err := srv.Shutdown(shCtx); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	case err := <-srvErr:
		log.Errorf("server error: %v", err)
	}
}
