package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groupsplit/internal/models"
)

// position is a member's remaining balance during simplification.
type position struct {
	id      string
	balance decimal.Decimal
}

// SimplifyDebts turns net balances into the fewest transfers that zero them.
//
// Algorithm (greedy matching):
//   - Members within Epsilon of zero are already settled and ignored
//   - Debtors are sorted most negative first, creditors largest first;
//     equal balances are ordered by member ID
//   - The current debtor pays the current creditor min(|debt|, credit)
//   - A cursor moves on once its member is within Epsilon of zero
//
// At most N-1 transfers are produced for N unsettled members. Balances whose
// ID is not in members still take part in the matching but no transfer naming
// them is emitted. The input map is not modified.
func SimplifyDebts(balances Balances, members []models.Member) []models.SimplifiedDebt {
	byID := make(map[string]models.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	negEpsilon := Epsilon.Neg()
	var debtors, creditors []position
	for id, bal := range balances {
		switch {
		case bal.LessThan(negEpsilon):
			debtors = append(debtors, position{id: id, balance: bal})
		case bal.GreaterThan(Epsilon):
			creditors = append(creditors, position{id: id, balance: bal})
		}
	}

	sort.Slice(debtors, func(i, j int) bool {
		if c := debtors[i].balance.Cmp(debtors[j].balance); c != 0 {
			return c < 0
		}
		return debtors[i].id < debtors[j].id
	})
	sort.Slice(creditors, func(i, j int) bool {
		if c := creditors[i].balance.Cmp(creditors[j].balance); c != 0 {
			return c > 0
		}
		return creditors[i].id < creditors[j].id
	})

	debts := make([]models.SimplifiedDebt, 0, len(debtors)+len(creditors))
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		d := &debtors[i]
		c := &creditors[j]

		amount := decimal.Min(d.balance.Neg(), c.balance)

		from, fromOK := byID[d.id]
		to, toOK := byID[c.id]
		if fromOK && toOK {
			debts = append(debts, models.SimplifiedDebt{
				From:   from,
				To:     to,
				Amount: amount,
			})
		}

		d.balance = d.balance.Add(amount)
		c.balance = c.balance.Sub(amount)

		if IsSettled(d.balance) {
			i++
		}
		if c.balance.LessThan(Epsilon) {
			j++
		}
	}

	return debts
}
