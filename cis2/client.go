package cis2

import (
	"encoding/json"
	"strconv"

	"github.com/CosmWasm/tinyjson/jwriter"

	"tokenharbor/sdk"
)

// Client talks to one token contract.
type Client struct {
	Contract sdk.Address
}

func NewClient(contract sdk.Address) Client {
	return Client{Contract: contract}
}

func (c Client) call(method string, payload []byte) (string, error) {
	res := sdk.ContractCall(c.Contract.String(), method, string(payload), nil)
	if res == nil || *res == "" {
		return "", ErrNoResult
	}
	var rej struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(*res), &rej); err == nil && rej.Error != "" {
		return "", RejectError{Reason: rej.Error}
	}
	return *res, nil
}

// invoke is call for mutations where an empty answer means plain success.
func (c Client) invoke(method string, payload []byte) error {
	_, err := c.call(method, payload)
	if err == ErrNoResult {
		return nil
	}
	return err
}

// Supports queries the CIS-2 standard id. Strict callers refuse a support_by
// forward; relaxed callers (auction settlement) accept it.
func (c Client) Supports(strict bool) error {
	w := jwriter.Writer{}
	w.RawString(`{"queries":["CIS-2"]}`)
	payload, _ := w.BuildBytes()

	res, err := c.call("supports", payload)
	if err != nil {
		return err
	}
	var parsed struct {
		Results []struct {
			Type string   `json:"type"`
			By   []string `json:"by"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(res), &parsed); err != nil || len(parsed.Results) == 0 {
		return ErrParseResult
	}
	switch parsed.Results[0].Type {
	case SupportFull:
		return nil
	case SupportBy:
		if !strict {
			return nil
		}
		return ErrNotCIS2
	default:
		return ErrNotCIS2
	}
}

// IsOperatorOf asks whether address may move owner's tokens.
func (c Client) IsOperatorOf(owner sdk.Address, address sdk.Address) (bool, error) {
	w := jwriter.Writer{}
	w.RawString(`{"queries":[{"owner":`)
	w.String(owner.String())
	w.RawString(`,"address":`)
	w.String(address.String())
	w.RawString(`}]}`)
	payload, _ := w.BuildBytes()

	res, err := c.call("operator_of", payload)
	if err != nil {
		return false, err
	}
	var parsed struct {
		Results []bool `json:"results"`
	}
	if err := json.Unmarshal([]byte(res), &parsed); err != nil || len(parsed.Results) == 0 {
		return false, ErrParseResult
	}
	return parsed.Results[0], nil
}

// BalanceOf returns owner's balance for the token id, 0 when the contract has
// never seen the owner.
func (c Client) BalanceOf(id TokenID, owner sdk.Address) (uint64, error) {
	w := jwriter.Writer{}
	w.RawString(`{"queries":[{"token_id":`)
	w.String(string(id))
	w.RawString(`,"address":`)
	w.String(owner.String())
	w.RawString(`}]}`)
	payload, _ := w.BuildBytes()

	res, err := c.call("balance_of", payload)
	if err != nil {
		return 0, err
	}
	var parsed struct {
		Results []string `json:"results"`
	}
	if err := json.Unmarshal([]byte(res), &parsed); err != nil {
		return 0, ErrParseResult
	}
	if len(parsed.Results) == 0 {
		return 0, nil
	}
	bal, err := strconv.ParseUint(parsed.Results[0], 10, 64)
	if err != nil {
		return 0, ErrParseResult
	}
	return bal, nil
}

// Transfer moves amount of id from -> to. The calling contract must be from
// itself or a registered operator of from. Zero amounts are legal per the
// standard and still hit the token contract.
func (c Client) Transfer(id TokenID, amount uint64, from sdk.Address, to sdk.Address) error {
	return c.TransferWithData(id, amount, from, to, "")
}

// TransferWithData is Transfer with an additional data blob the receiving
// contract sees in its receive hook.
func (c Client) TransferWithData(id TokenID, amount uint64, from sdk.Address, to sdk.Address, data string) error {
	w := jwriter.Writer{}
	w.RawString(`{"transfers":[{"token_id":`)
	w.String(string(id))
	w.RawString(`,"amount":`)
	w.String(strconv.FormatUint(amount, 10))
	w.RawString(`,"from":`)
	w.String(from.String())
	w.RawString(`,"to":`)
	w.String(to.String())
	w.RawString(`,"data":`)
	w.String(data)
	w.RawString(`}]}`)
	payload, _ := w.BuildBytes()

	return c.invoke("transfer", payload)
}

// UpdateOperator adds or removes an operator for the calling contract's own
// holdings on the token contract.
func (c Client) UpdateOperator(operator sdk.Address, add bool) error {
	kind := "remove"
	if add {
		kind = "add"
	}
	w := jwriter.Writer{}
	w.RawString(`{"updates":[{"operator":`)
	w.String(operator.String())
	w.RawString(`,"type":`)
	w.String(kind)
	w.RawString(`}]}`)
	payload, _ := w.BuildBytes()

	return c.invoke("update_operator", payload)
}
