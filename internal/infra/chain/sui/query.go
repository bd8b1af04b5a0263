package sui

// Sui JSON-RPC method names.
const (
	MethodGetSystemState            = "sui_getSystemState"
	MethodGetTotalTransactionBlocks = "sui_getTotalTransactionBlocks"
	MethodGetTransactionBlock       = "sui_getTransactionBlock"
	MethodGetObject                 = "sui_getObject"
	MethodQueryTransactionBlocks    = "suix_queryTransactionBlocks"
	MethodGetOwnedObjects           = "suix_getOwnedObjects"
	MethodGetBalance                = "suix_getBalance"
	MethodGetAllBalances            = "suix_getAllBalances"
)

// Default page sizes for listing lookups.
const (
	DefaultLatestTransactionsLimit  = 10
	DefaultAddressTransactionsLimit = 20
	DefaultOwnedObjectsLimit        = 50
)

// TransactionBlockOptions selects which parts of a transaction block the node returns.
type TransactionBlockOptions struct {
	ShowInput          bool `json:"showInput"`
	ShowEffects        bool `json:"showEffects"`
	ShowObjectChanges  bool `json:"showObjectChanges"`
	ShowBalanceChanges bool `json:"showBalanceChanges"`
	ShowEvents         bool `json:"showEvents"`
}

// ObjectDataOptions selects which parts of an object the node returns.
type ObjectDataOptions struct {
	ShowType                bool `json:"showType"`
	ShowOwner               bool `json:"showOwner"`
	ShowPreviousTransaction bool `json:"showPreviousTransaction"`
	ShowDisplay             bool `json:"showDisplay"`
	ShowContent             bool `json:"showContent"`
	ShowBcs                 bool `json:"showBcs"`
	ShowStorageRebate       bool `json:"showStorageRebate"`
}

// TransactionBlockQuery is the first parameter of suix_queryTransactionBlocks.
// A nil Filter serializes as null and matches every transaction.
type TransactionBlockQuery struct {
	Filter  any                     `json:"filter"`
	Options TransactionBlockOptions `json:"options"`
}

// ObjectQuery is the second parameter of suix_getOwnedObjects.
type ObjectQuery struct {
	Filter  any               `json:"filter"`
	Options ObjectDataOptions `json:"options"`
}

// FromOrToAddressFilter matches transactions sent by or affecting an address.
type FromOrToAddressFilter struct {
	FromOrToAddress struct {
		Addr string `json:"addr"`
	} `json:"FromOrToAddress"`
}

func fromOrToAddress(address string) FromOrToAddressFilter {
	var f FromOrToAddressFilter
	f.FromOrToAddress.Addr = address
	return f
}

var (
	// full detail for a single digest lookup
	transactionDetailOptions = TransactionBlockOptions{
		ShowInput:          true,
		ShowEffects:        true,
		ShowObjectChanges:  true,
		ShowBalanceChanges: true,
		ShowEvents:         true,
	}

	latestTransactionOptions = TransactionBlockOptions{
		ShowInput:   true,
		ShowEffects: true,
	}

	addressTransactionOptions = TransactionBlockOptions{
		ShowInput:          true,
		ShowEffects:        true,
		ShowBalanceChanges: true,
	}

	objectDetailOptions = ObjectDataOptions{
		ShowType:                true,
		ShowOwner:               true,
		ShowPreviousTransaction: true,
		ShowContent:             true,
		ShowStorageRebate:       true,
	}

	ownedObjectOptions = ObjectDataOptions{
		ShowType:  true,
		ShowOwner: true,
	}
)
