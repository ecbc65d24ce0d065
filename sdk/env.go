package sdk

// Env mirrors the environment blob the chain hands to every contract call.
type Env struct {
	ContractId  string   `json:"contract.id"`
	TxId        string   `json:"tx.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"block.timestamp"`
	Intents     []Intent `json:"intents"`
	Sender      Sender   `json:"-"`
}
