package domain

import "encoding/json"

// SystemState is the subset of sui_getSystemState the core reads.
type SystemState struct {
	Epoch                 string            `json:"epoch"`
	ProtocolVersion       string            `json:"protocolVersion"`
	ReferenceGasPrice     string            `json:"referenceGasPrice"`
	TotalStake            string            `json:"totalStake"`
	EpochStartTimestampMs string            `json:"epochStartTimestampMs"`
	ActiveValidators      []json.RawMessage `json:"activeValidators"`
}

// NetworkStats is derived from the total transaction count and the system state.
// Fields whose source lookup failed stay zero.
type NetworkStats struct {
	TotalTransactions uint64 `json:"totalTransactions"`
	Epoch             string `json:"epoch,omitempty"`
	ReferenceGasPrice string `json:"referenceGasPrice,omitempty"`
	TotalStake        string `json:"totalStake,omitempty"`
	ActiveValidators  int    `json:"activeValidators"`
}
