package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"circle-service/configs"
	"circle-service/internal/circle"
	"circle-service/internal/comment"
	"circle-service/internal/event"
	"circle-service/internal/feed"
	"circle-service/internal/like"
	"circle-service/internal/migrate"
	"circle-service/internal/post"
	"circle-service/internal/shared/db"
	"circle-service/internal/shared/httpx"
	"circle-service/internal/user"
)

func initOTEL(ctx context.Context) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		endpoint = "otel-collector:4318"
	}
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("circle-service"),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	ctx := context.Background()
	cfg := configs.LoadConfig()

	shutdown := initOTEL(ctx)
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = shutdown(c)
	}()

	store := db.Open(cfg)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis ping: %v", err)
	}

	if os.Getenv("AUTO_MIGRATE") != "false" {
		if err := migrate.AutoMigrateAll(store); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	events := event.NewWriter(cfg.KafkaBrokerURL, cfg.KafkaTopic)
	defer events.Close()

	userRepo := user.NewRepository(store.DB)
	userSvc := user.NewService(userRepo)

	circleRepo := circle.NewRepository(store.DB)
	circleSvc := circle.NewService(circleRepo, cfg.Limits, cfg.InviteCodeBytes)

	feedCache := feed.NewCache(rdb, cfg.FeedCacheTTL)

	postRepo := post.NewRepository(store.DB)
	postSvc := post.NewService(postRepo, circleSvc, cfg.Limits, events, feedCache)

	feedSvc := feed.NewService(circleSvc, postSvc, feedCache)

	likeRepo := like.NewRepository(store.DB, rdb)
	likeSvc := like.NewService(likeRepo, postSvc, circleSvc, events)

	commentRepo := comment.NewRepository(store.DB)
	commentSvc := comment.NewService(commentRepo, postSvc, circleSvc, cfg.Limits, events)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	})

	uh := user.NewHandler(userSvc)
	mux.Handle("POST /auth/register", httpx.Wrap(uh.Register))
	mux.Handle("POST /auth/login", httpx.Wrap(uh.Login))

	protect := func(pattern string, fn httpx.HandlerFunc) {
		mux.Handle(pattern, httpx.AuthMiddleware(httpx.Wrap(fn)))
	}
	protect("GET /me", uh.Me)

	ch := circle.NewHandler(circleSvc)
	protect("POST /circles", ch.Create)
	protect("GET /circles/my-circles", ch.ListMine)
	protect("POST /circles/join/{invite_code}", ch.Join)
	protect("DELETE /circles/{circle_id}/leave", ch.Leave)

	ph := post.NewHandler(postSvc)
	protect("POST /posts", ph.Create)
	protect("DELETE /posts/{post_id}", ph.Delete)

	fh := feed.NewHandler(feedSvc)
	protect("GET /circles/{circle_id}/feed", fh.GetCircleFeed)

	lh := like.NewHandler(likeSvc)
	protect("POST /posts/{post_id}/like", lh.Toggle)

	cmh := comment.NewHandler(commentSvc)
	protect("POST /posts/{post_id}/comment", cmh.Create)
	protect("GET /posts/{post_id}/comments", cmh.ListByPost)

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           otelhttp.NewHandler(mux, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	log.Printf("circle-service listening on %s", cfg.AppPort)
	log.Fatal(srv.ListenAndServe())
}
