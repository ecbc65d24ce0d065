//go:build !wasm

package cis2

import (
	"encoding/json"
	"strconv"

	"tokenharbor/sdk"
)

// MockToken is an in-memory CIS-2 token contract for host tests. It registers
// itself on the sdk mock host and services the same wire format the Client
// speaks.
type MockToken struct {
	ContractId string
	Support    string
	SupportBy  []string
	balances   map[TokenID]map[string]uint64
	operators  map[string]map[string]bool
	transfers  []MockTransferRecord
}

// MockTransferRecord mirrors one executed transfer for assertions.
type MockTransferRecord struct {
	ID     TokenID
	Amount uint64
	From   sdk.Address
	To     sdk.Address
	Data   string
}

// Transfers executed since creation, in order.
func (m *MockToken) Transfers() []MockTransferRecord {
	return m.transfers
}

// NewMockToken registers a fresh token contract on the mock host.
// Example payload: cis2.NewMockToken("contract:fts")
func NewMockToken(contractId string) *MockToken {
	m := &MockToken{
		ContractId: contractId,
		Support:    SupportFull,
		balances:   map[TokenID]map[string]uint64{},
		operators:  map[string]map[string]bool{},
	}
	sdk.MockRegisterContract(contractId, m.handle)
	return m
}

// Mint credits tokens out of thin air.
func (m *MockToken) Mint(id TokenID, to sdk.Address, amount uint64) {
	bucket := m.balances[id]
	if bucket == nil {
		bucket = map[string]uint64{}
		m.balances[id] = bucket
	}
	bucket[to.String()] += amount
}

// SetOperator toggles operator rights without going over the wire.
func (m *MockToken) SetOperator(owner sdk.Address, operator sdk.Address, on bool) {
	bucket := m.operators[owner.String()]
	if bucket == nil {
		bucket = map[string]bool{}
		m.operators[owner.String()] = bucket
	}
	bucket[operator.String()] = on
}

// BalanceOf reads a balance directly for assertions.
func (m *MockToken) BalanceOf(id TokenID, owner sdk.Address) uint64 {
	return m.balances[id][owner.String()]
}

func (m *MockToken) handle(method string, payload string, _ *sdk.ContractCallOptions) *string {
	switch method {
	case "supports":
		return m.handleSupports()
	case "operator_of":
		return m.handleOperatorOf(payload)
	case "balance_of":
		return m.handleBalanceOf(payload)
	case "transfer":
		return m.handleTransfer(payload)
	case "update_operator":
		return m.handleUpdateOperator(payload)
	default:
		sdk.Revert("unknown token method "+method, "token_reject")
		return nil
	}
}

func strPtr(s string) *string { return &s }

func (m *MockToken) handleSupports() *string {
	res := map[string]interface{}{
		"results": []map[string]interface{}{
			{"type": m.Support, "by": m.SupportBy},
		},
	}
	b, _ := json.Marshal(res)
	return strPtr(string(b))
}

func (m *MockToken) handleOperatorOf(payload string) *string {
	var req struct {
		Queries []struct {
			Owner   string `json:"owner"`
			Address string `json:"address"`
		} `json:"queries"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil || len(req.Queries) == 0 {
		sdk.Revert("bad operator_of payload", "token_reject")
	}
	results := make([]bool, 0, len(req.Queries))
	for _, q := range req.Queries {
		results = append(results, m.operators[q.Owner][q.Address])
	}
	b, _ := json.Marshal(map[string]interface{}{"results": results})
	return strPtr(string(b))
}

func (m *MockToken) handleBalanceOf(payload string) *string {
	var req struct {
		Queries []struct {
			TokenID string `json:"token_id"`
			Address string `json:"address"`
		} `json:"queries"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil || len(req.Queries) == 0 {
		sdk.Revert("bad balance_of payload", "token_reject")
	}
	results := make([]string, 0, len(req.Queries))
	for _, q := range req.Queries {
		results = append(results, strconv.FormatUint(m.balances[TokenID(q.TokenID)][q.Address], 10))
	}
	b, _ := json.Marshal(map[string]interface{}{"results": results})
	return strPtr(string(b))
}

func (m *MockToken) handleTransfer(payload string) *string {
	var req struct {
		Transfers []struct {
			TokenID string `json:"token_id"`
			Amount  string `json:"amount"`
			From    string `json:"from"`
			To      string `json:"to"`
			Data    string `json:"data"`
		} `json:"transfers"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil || len(req.Transfers) == 0 {
		sdk.Revert("bad transfer payload", "token_reject")
	}
	caller := sdk.GetEnv().Sender.Address.String()
	for _, tr := range req.Transfers {
		amount, err := strconv.ParseUint(tr.Amount, 10, 64)
		if err != nil {
			sdk.Revert("bad transfer amount", "token_reject")
		}
		if tr.From != caller && !m.operators[tr.From][caller] {
			sdk.Revert("caller is not owner or operator", "token_unauthorized")
		}
		bucket := m.balances[TokenID(tr.TokenID)]
		if bucket == nil {
			bucket = map[string]uint64{}
			m.balances[TokenID(tr.TokenID)] = bucket
		}
		if bucket[tr.From] < amount {
			sdk.Revert("insufficient token balance", "token_insufficient")
		}
		bucket[tr.From] -= amount
		bucket[tr.To] += amount
		m.transfers = append(m.transfers, MockTransferRecord{
			ID:     TokenID(tr.TokenID),
			Amount: amount,
			From:   sdk.Address(tr.From),
			To:     sdk.Address(tr.To),
			Data:   tr.Data,
		})
	}
	return nil
}

func (m *MockToken) handleUpdateOperator(payload string) *string {
	var req struct {
		Updates []struct {
			Operator string `json:"operator"`
			Type     string `json:"type"`
		} `json:"updates"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil || len(req.Updates) == 0 {
		sdk.Revert("bad update_operator payload", "token_reject")
	}
	owner := sdk.GetEnv().Sender.Address
	for _, up := range req.Updates {
		m.SetOperator(owner, sdk.Address(up.Operator), up.Type == "add")
	}
	return nil
}
