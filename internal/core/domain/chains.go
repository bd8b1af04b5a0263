package domain

type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
	NetworkDevnet  Network = "devnet"
)

// DefaultCoinType is the native SUI coin type used when a balance query names none.
const DefaultCoinType = "0x2::sui::SUI"

// NetworkToFullnodeURL maps a network to its public fullnode JSON-RPC endpoint.
var NetworkToFullnodeURL = map[Network]string{
	NetworkMainnet: "https://fullnode.mainnet.sui.io:443",
	NetworkTestnet: "https://fullnode.testnet.sui.io:443",
	NetworkDevnet:  "https://fullnode.devnet.sui.io:443",
}
