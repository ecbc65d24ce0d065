package main

import (
	"tokenharbor/cis2"
	"tokenharbor/guard"
)

// LaunchpadView is the read model for a single sale. Amounts ride as
// decimal micro unit strings.
type LaunchpadView struct {
	Id              string         `json:"id"`
	Name            string         `json:"name"`
	Owner           string         `json:"owner"`
	Status          string         `json:"status"`
	Token           cis2.TokenInfo `json:"token"`
	AllocatedTokens string         `json:"allocated_tokens"`
	TokenPrice      string         `json:"token_price"`
	SoftCap         string         `json:"soft_cap"`
	HardCap         string         `json:"hard_cap"`
	VestMin         string         `json:"vest_min"`
	VestMax         string         `json:"vest_max"`
	Start           int64          `json:"start"`
	End             int64          `json:"end"`
	CliffEnd        int64          `json:"cliff_end"`
	Schedule        []ReleaseStep  `json:"schedule"`
	Collected       string         `json:"collected"`
	HolderCount     int            `json:"holder_count"`
	PauseUntil      int64          `json:"pause_until,omitempty"`
	PauseCount      uint64         `json:"pause_count"`
}

func viewOf(l *Launchpad) LaunchpadView {
	return LaunchpadView{
		Id:              formatU64(l.Id),
		Name:            l.Name,
		Owner:           l.Owner,
		Status:          l.Status,
		Token:           l.Token,
		AllocatedTokens: formatU64(l.AllocatedTokens),
		TokenPrice:      formatU64(l.TokenPrice),
		SoftCap:         formatU64(l.SoftCap),
		HardCap:         formatU64(l.HardCap),
		VestMin:         formatU64(l.VestMin),
		VestMax:         formatU64(l.VestMax),
		Start:           l.Start,
		End:             l.End,
		CliffEnd:        l.CliffEnd,
		Schedule:        l.Schedule,
		Collected:       formatU64(l.Collected),
		HolderCount:     len(l.Holders),
		PauseUntil:      l.PauseUntil,
		PauseCount:      l.PauseCount,
	}
}

// ViewArgs selects a single launchpad.
// Example payload: {"id":"5576964440023522040"}
type ViewArgs struct {
	Id string `json:"id"`
}

func View(payload *string) *string {
	args := guard.FromJSON[ViewArgs](*payload, "view args")
	l := mustLaunchpad(guard.ParseU64(args.Id, "id"))
	return guard.StrPtr(guard.ToJSON(viewOf(l), "launchpad view"))
}

func ViewAll(_ *string) *string {
	views := []LaunchpadView{}
	for _, id := range listLaunchpadIds() {
		if l, err := loadLaunchpad(id); err == nil {
			views = append(views, viewOf(l))
		}
	}
	return guard.StrPtr(guard.ToJSON(views, "launchpad views"))
}

// InvestmentView is one open position of the queried address.
type InvestmentView struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	NcuIn     string `json:"ncu_in"`
	Claimable string `json:"claimable"`
	Cycles    uint64 `json:"cycles_claimed"`
}

// ViewInvestmentsArgs selects all positions held by an address.
// Example payload: {"address":"hive:alice"}
type ViewInvestmentsArgs struct {
	Address string `json:"address"`
}

func ViewInvestments(payload *string) *string {
	args := guard.FromJSON[ViewInvestmentsArgs](*payload, "view investments args")
	views := []InvestmentView{}
	for _, id := range listInvestments(args.Address) {
		l, err := loadLaunchpad(id)
		if err != nil {
			continue
		}
		holder := l.Holders[args.Address]
		if holder == nil {
			continue
		}
		views = append(views, InvestmentView{
			Id:        formatU64(id),
			Name:      l.Name,
			Status:    l.Status,
			NcuIn:     formatU64(holder.NcuIn),
			Claimable: formatU64(holder.Claimable),
			Cycles:    holder.CyclesClaimed,
		})
	}
	return guard.StrPtr(guard.ToJSON(views, "investment views"))
}
