package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskContractGenerate = "contracts.generate"

type ContractGeneratePayload struct {
	ContractID string `json:"contractId"`
}

func NewContractGenerateTask(payload ContractGeneratePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContractGenerate, data), nil
}

func ParseContractGeneratePayload(task *asynq.Task) (ContractGeneratePayload, error) {
	var payload ContractGeneratePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return ContractGeneratePayload{}, err
	}
	return payload, nil
}
