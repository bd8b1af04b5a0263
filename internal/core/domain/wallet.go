package domain

// Balance is the node's response to suix_getBalance.
type Balance struct {
	CoinType        string            `json:"coinType"`
	CoinObjectCount int               `json:"coinObjectCount"`
	TotalBalance    string            `json:"totalBalance"`
	LockedBalance   map[string]string `json:"lockedBalance"`
}

// ZeroBalance is the sentinel returned when a balance lookup fails.
func ZeroBalance(coinType string) Balance {
	return Balance{
		CoinType:      coinType,
		TotalBalance:  "0",
		LockedBalance: map[string]string{},
	}
}

// AddressView aggregates the independently fetched data for one address.
// A failed sub-fetch leaves its sentinel value in place.
type AddressView struct {
	Address      string                 `json:"address"`
	Balance      Balance                `json:"balance"`
	Transactions Page[TransactionBlock] `json:"transactions"`
	Objects      Page[ObjectResponse]   `json:"objects"`
}

// EntityKind implements Payload.
func (*AddressView) EntityKind() EntityKind { return EntityKindAddress }
