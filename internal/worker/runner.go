package worker

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"varejo_xpto/internal/adapter/messaging"
	"varejo_xpto/internal/adapter/persistence/repository"
	"varejo_xpto/internal/infrastructure/database"
	infra "varejo_xpto/internal/infrastructure/messaging"
	"varejo_xpto/internal/infrastructure/payments"
	"varejo_xpto/internal/metrics"
	"varejo_xpto/internal/usecase"
)

const (
	defaultReconcileInterval = 5 * time.Minute
	defaultReconcileGrace    = 10 * time.Minute
)

// Run wires the queue consumers and blocks until SIGINT/SIGTERM.
//
// WORKER_NAME selects which consumer this process runs (lead, order, stock,
// payment, update) or "all" (default) for a single-process deployment. The
// stock reconciler runs alongside the stock consumer.
func Run() {
	workerName := strings.ToLower(getenvDefault("WORKER_NAME", "all"))
	debugEnabled := strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug")

	stockQueueURL := requireEnv("PRODUCT_STOCK_QUEUE_URL")
	paymentQueueURL := requireEnv("PROCESS_TRANSACTION_QUEUE_URL")
	updateQueueURL := requireEnv("UPDATE_ORDER_QUEUE_URL")
	for _, key := range []string{"AWS_REGION", "LEAD_COLLECTION_TABLE", "ORDER_COLLECTION_TABLE", "PRODUCT_COLLECTION_TABLE", "TRANSACTION_COLLECTION_TABLE", "INITIALIZE_ORDER_TOPIC_ARN"} {
		requireEnv(key)
	}

	ddb := database.ConnectDynamoDB()
	sqsClient := infra.ConnectSQS()
	reg := metrics.NewRegistry()

	leadRepo := repository.NewLeadDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	productRepo := repository.NewProductDynamoRepository(ddb)
	stockRepo := repository.NewStockDynamoRepository(ddb)
	txnRepo := repository.NewTransactionDynamoRepository(ddb)

	publisher := messaging.NewSQSQueuePublisher(sqsClient, stockQueueURL, paymentQueueURL, updateQueueURL)

	leadUseCase := usecase.NewLeadUseCase(leadRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, stockRepo, leadUseCase, publisher)
	stockUseCase := usecase.NewStockUseCase(stockRepo, productRepo)
	paymentUseCase := usecase.NewPaymentUseCase(orderRepo, txnRepo, payments.NewSimulatedGateway(), publisher)
	updateUseCase := usecase.NewUpdateOrderUseCase(orderRepo)
	reconcileUseCase := usecase.NewStockReconcileUseCase(stockRepo, orderRepo, envDuration("STOCK_RECONCILE_GRACE", defaultReconcileGrace))

	consumers := map[string]func() *messaging.SQSConsumer{
		"lead": func() *messaging.SQSConsumer {
			return messaging.NewSQSConsumer(sqsClient, "lead", requireEnv("LEAD_QUEUE_URL"), NewLeadHandler(leadUseCase, reg))
		},
		"order": func() *messaging.SQSConsumer {
			return messaging.NewSQSConsumer(sqsClient, "order", requireEnv("ORDER_QUEUE_URL"), NewOrderHandler(orderUseCase, reg))
		},
		"stock": func() *messaging.SQSConsumer {
			return messaging.NewSQSConsumer(sqsClient, "stock", stockQueueURL, NewStockHandler(stockUseCase, reg))
		},
		"payment": func() *messaging.SQSConsumer {
			return messaging.NewSQSConsumer(sqsClient, "payment", paymentQueueURL, NewPaymentHandler(paymentUseCase, reg))
		},
		"update": func() *messaging.SQSConsumer {
			return messaging.NewSQSConsumer(sqsClient, "update", updateQueueURL, NewUpdateHandler(updateUseCase, reg))
		},
	}

	selected := make([]string, 0, len(consumers))
	if workerName == "all" {
		selected = append(selected, "lead", "order", "stock", "payment", "update")
	} else {
		if _, ok := consumers[workerName]; !ok {
			log.Fatalf("unknown WORKER_NAME %q", workerName)
		}
		selected = append(selected, workerName)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	for _, name := range selected {
		consumer := consumers[name]()
		wg.Add(1)
		go func() {
			defer wg.Done()
			consumer.Run(ctx)
		}()
	}

	if workerName == "all" || workerName == "stock" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runReconciler(ctx, reconcileUseCase, reg)
		}()
	}

	go serveMetrics(reg)

	if debugEnabled {
		log.Printf("[worker][runner] debug config stock_queue=%s payment_queue=%s update_queue=%s region=%s", stockQueueURL, paymentQueueURL, updateQueueURL, getenvDefault("AWS_REGION", "us-east-1"))
	}
	log.Printf("[worker][runner] running workers=%s", strings.Join(selected, ","))
	wg.Wait()
	log.Printf("[worker][runner] shutdown complete")
}

func runReconciler(ctx context.Context, uc usecase.IStockReconcileUseCase, reg *metrics.Registry) {
	interval := envDuration("STOCK_RECONCILE_INTERVAL", defaultReconcileInterval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[worker][reconciler] started interval=%s", interval)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[worker][reconciler] stopped")
			return
		case <-ticker.C:
			compensated, err := uc.Sweep(ctx)
			if err != nil {
				log.Printf("[worker][reconciler] sweep failed err=%v", err)
				continue
			}
			for i := 0; i < compensated; i++ {
				reg.StockCompensations.Inc()
			}
		}
	}
}

func serveMetrics(reg *metrics.Registry) {
	addr := getenvDefault("WORKER_METRICS_ADDR", ":9090")
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("[worker][runner] metrics listener failed err=%v", err)
	}
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("%s is required", key)
	}
	return v
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[worker][runner] ignoring invalid %s=%q", key, v)
		return def
	}
	return d
}
