// Report worker: renders queued career plans off RabbitMQ.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kirubha-07/elix-career-advisor/internal/config"
	"github.com/kirubha-07/elix-career-advisor/internal/dataset"
	"github.com/kirubha-07/elix-career-advisor/internal/db"
	"github.com/kirubha-07/elix-career-advisor/internal/logger"
	"github.com/kirubha-07/elix-career-advisor/internal/report"
	"github.com/kirubha-07/elix-career-advisor/internal/store/rabbitmq"
	amqp "github.com/rabbitmq/amqp091-go"
)

func workerConcurrency() int {
	v := os.Getenv("WORKER_CONCURRENCY")
	if v == "" {
		return 2
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 2
	}
	if n > 50 {
		return 50
	}
	return n
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)
	slog.SetDefault(logger.L)

	if !cfg.AsyncReportsEnabled() {
		slog.Error("RABBIT_URL is not set")
		os.Exit(1)
	}

	data, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		fatal("load dataset", err)
	}

	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		fatal("connect db", err)
	}
	if err := report.Migrate(gdb); err != nil {
		fatal("migrate report jobs", err)
	}

	repo := report.NewRepo(gdb)
	// the worker writes files only; the HTTP server owns the cache
	reports := report.NewService(report.DefaultRegistry(), nil, 0, cfg.ReportDir)
	proc := report.NewProcessor(repo, reports, data)

	conn, err := amqp.Dial(cfg.RabbitURL)
	if err != nil {
		fatal("rabbit dial", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		fatal("rabbit channel", err)
	}
	defer ch.Close()

	if err := rabbitmq.DeclareQueues(ch, cfg.RabbitQueue); err != nil {
		fatal("queue declare", err)
	}

	//  strict concurrency control
	concurrency := workerConcurrency()

	if err := ch.Qos(concurrency, 0, false); err != nil {
		fatal("qos", err)
	}

	msgs, err := ch.Consume(cfg.RabbitQueue, "", false, false, false, false, nil)
	if err != nil {
		fatal("consume", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("worker started", "queue", cfg.RabbitQueue, "concurrency", concurrency, "students", data.Len())

	// worker pool
	jobs := make(chan amqp.Delivery, concurrency*2)

	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func(workerID int) {
			defer wg.Done()
			for d := range jobs {
				jobID, err := rabbitmq.DecodeJob(d.Body)
				if err != nil {
					slog.Warn("bad message", "worker", workerID, "error", err)
					_ = d.Nack(false, false)
					continue
				}

				if err := proc.Handle(ctx, jobID); err != nil {
					slog.Warn("job failed", "worker", workerID, "job_id", jobID, "error", err)
					_ = d.Nack(false, false)
					continue
				}

				if err := d.Ack(false); err != nil {
					slog.Error("ack failed", "worker", workerID, "job_id", jobID, "error", err)
				}
			}
		}(i)
	}

	// dispatcher
	for {
		select {
		case <-ctx.Done():
			slog.Info("worker shutting down")
			close(jobs)
			wg.Wait()
			return

		case d, ok := <-msgs:
			if !ok {
				slog.Warn("delivery channel closed")
				time.Sleep(1 * time.Second)
				continue
			}
			jobs <- d
		}
	}
}
