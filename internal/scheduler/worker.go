package scheduler

import (
	"context"
	"fmt"

	contractsvc "dealflow_backend/internal/contracts/service"
	"dealflow_backend/platform/config"
	"dealflow_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	contracts *contractsvc.Service
	log       *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, contracts *contractsvc.Service, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:    server,
		mux:       mux,
		contracts: contracts,
		log:       log,
	}

	mux.HandleFunc(TaskContractGenerate, w.handleContractGenerate)

	return w, nil
}

func (w *Worker) handleContractGenerate(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseContractGeneratePayload(task)
	if err != nil {
		return err
	}

	contractID, err := uuid.Parse(payload.ContractID)
	if err != nil {
		return err
	}

	if err := w.contracts.Generate(ctx, contractID); err != nil {
		w.log.Error("contract generation failed", "contractId", contractID, "error", err)
		return err
	}

	w.log.Info("contract generated", "contractId", contractID)
	return nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("worker stopped", "error", err)
	}
}
