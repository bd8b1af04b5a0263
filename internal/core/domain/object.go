package domain

import "encoding/json"

// ObjectResponse is the node's response to sui_getObject and the element type
// of suix_getOwnedObjects pages. Exactly one of Data or Error is set.
type ObjectResponse struct {
	Data  *ObjectData  `json:"data,omitempty"`
	Error *ObjectError `json:"error,omitempty"`
}

// EntityKind implements Payload.
func (*ObjectResponse) EntityKind() EntityKind { return EntityKindObject }

type ObjectData struct {
	ObjectID            string          `json:"objectId"`
	Version             string          `json:"version"`
	Digest              string          `json:"digest"`
	Type                string          `json:"type,omitempty"`
	Owner               json.RawMessage `json:"owner,omitempty"`
	PreviousTransaction string          `json:"previousTransaction,omitempty"`
	StorageRebate       string          `json:"storageRebate,omitempty"`
	Content             json.RawMessage `json:"content,omitempty"`
}

// ObjectError is returned inline by the node, e.g. {"code":"notExists"}.
type ObjectError struct {
	Code     string `json:"code"`
	ObjectID string `json:"object_id,omitempty"`
	Version  string `json:"version,omitempty"`
	Digest   string `json:"digest,omitempty"`
}
