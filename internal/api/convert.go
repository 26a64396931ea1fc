package api

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/groupsplit/internal/models"
	"github.com/mmynk/groupsplit/internal/service"
)

// displayPlaces is the precision amounts are presented with.
const displayPlaces = 2

func toGroup(g *models.Group) Group {
	return Group{ID: g.ID, Name: g.Name, CreatedAt: g.CreatedAt}
}

func toMember(m models.Member) Member {
	return Member{ID: m.ID, GroupID: m.GroupID, Name: m.Name, CreatedAt: m.CreatedAt}
}

func toExpense(e *models.Expense) Expense {
	participants := make([]string, len(e.Participants))
	copy(participants, e.Participants)

	return Expense{
		ID:           e.ID,
		GroupID:      e.GroupID,
		Description:  e.Description,
		Amount:       e.Amount,
		PayerID:      e.PayerID,
		Participants: participants,
		SettledBy:    e.SettledBy.Sorted(),
		CreatedAt:    e.CreatedAt,
	}
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(displayPlaces)
}

func toBalancesResponse(b *service.GroupBalances) *GetBalancesResponse {
	resp := &GetBalancesResponse{
		Balances: make([]MemberBalance, 0, len(b.Members)),
		Debts:    make([]Debt, 0, len(b.Debts)),
	}
	for _, mb := range b.Members {
		resp.Balances = append(resp.Balances, MemberBalance{
			Member:  toMember(mb.Member),
			Paid:    round(mb.Paid),
			Share:   round(mb.Share),
			Settled: round(mb.Settled),
			Net:     round(mb.Net),
		})
	}
	for _, d := range b.Debts {
		resp.Debts = append(resp.Debts, Debt{
			From:   toMember(d.From),
			To:     toMember(d.To),
			Amount: round(d.Amount),
		})
	}
	return resp
}
