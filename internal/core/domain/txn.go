package domain

import "encoding/json"

// TransactionBlock is the node's response to sui_getTransactionBlock and the
// element type of suix_queryTransactionBlocks pages.
type TransactionBlock struct {
	Digest         string              `json:"digest"`
	Transaction    *TransactionData    `json:"transaction,omitempty"`
	Effects        *TransactionEffects `json:"effects,omitempty"`
	Events         json.RawMessage     `json:"events,omitempty"`
	ObjectChanges  json.RawMessage     `json:"objectChanges,omitempty"`
	BalanceChanges []BalanceChange     `json:"balanceChanges,omitempty"`
	TimestampMs    string              `json:"timestampMs,omitempty"`
	Checkpoint     string              `json:"checkpoint,omitempty"`
}

// EntityKind implements Payload.
func (*TransactionBlock) EntityKind() EntityKind { return EntityKindTransaction }

// Sender returns the transaction sender, or "" when input was not requested.
func (t *TransactionBlock) Sender() string {
	if t == nil || t.Transaction == nil {
		return ""
	}
	return t.Transaction.Data.Sender
}

// Succeeded reports whether the effects carry a success status.
func (t *TransactionBlock) Succeeded() bool {
	return t != nil && t.Effects != nil && t.Effects.Status.Status == "success"
}

type TransactionData struct {
	Data         TransactionInput `json:"data"`
	TxSignatures []string         `json:"txSignatures,omitempty"`
}

type TransactionInput struct {
	MessageVersion string          `json:"messageVersion,omitempty"`
	Sender         string          `json:"sender"`
	GasData        json.RawMessage `json:"gasData,omitempty"`
	Transaction    json.RawMessage `json:"transaction,omitempty"`
}

type TransactionEffects struct {
	Status        ExecutionStatus `json:"status"`
	ExecutedEpoch string          `json:"executedEpoch,omitempty"`
	GasUsed       *GasCostSummary `json:"gasUsed,omitempty"`
}

type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type GasCostSummary struct {
	ComputationCost         string `json:"computationCost"`
	StorageCost             string `json:"storageCost"`
	StorageRebate           string `json:"storageRebate"`
	NonRefundableStorageFee string `json:"nonRefundableStorageFee"`
}

type BalanceChange struct {
	Owner    json.RawMessage `json:"owner"`
	CoinType string          `json:"coinType"`
	Amount   string          `json:"amount"`
}
