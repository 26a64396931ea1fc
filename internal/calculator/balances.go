package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/groupsplit/internal/models"
)

// Balances maps a member ID to its net balance.
// Positive = is owed money, negative = owes money.
type Balances map[string]decimal.Decimal

// Total returns the sum of all balances. For balances produced by
// ComputeBalances it is always within Epsilon of zero.
func (b Balances) Total() decimal.Decimal {
	total := decimal.Zero
	for _, bal := range b {
		total = total.Add(bal)
	}
	return total
}

// tally accumulates one member's position while folding expenses.
type tally struct {
	paid    decimal.Decimal
	share   decimal.Decimal
	settled decimal.Decimal
}

func (t *tally) net() decimal.Decimal {
	return t.paid.Sub(t.share).Add(t.settled)
}

// ledger is a fully populated accumulator: every member has a tally before
// the first expense is applied.
type ledger map[string]*tally

func newLedger(members []models.Member) ledger {
	l := make(ledger, len(members))
	for _, m := range members {
		l[m.ID] = &tally{}
	}
	return l
}

// at returns the tally for id, adding one for ids referenced by an expense
// but missing from the member list so credits and debits still cancel out.
func (l ledger) at(id string) *tally {
	t, ok := l[id]
	if !ok {
		t = &tally{}
		l[id] = t
	}
	return t
}

func (l ledger) apply(exp models.Expense) {
	share, ok := EqualShare(exp.Amount, len(exp.Participants))
	if !ok {
		return
	}

	payer := l.at(exp.PayerID)
	payer.paid = payer.paid.Add(exp.Amount)

	for _, id := range exp.Participants {
		p := l.at(id)
		p.share = p.share.Add(share)

		// A participant who already paid the payer back reverses their part
		// of the split: the payer is no longer owed it and the debt is gone.
		if id != exp.PayerID && exp.SettledBy.Has(id) {
			payer.settled = payer.settled.Sub(share)
			p.settled = p.settled.Add(share)
		}
	}
}

// ComputeBalances folds expenses into a net balance per member.
//
// Algorithm:
//   - Every member starts at zero and is always present in the result
//   - For each expense with n participants: share = amount / n
//   - The payer is credited the full amount, each participant is debited share
//   - Each settled participant other than the payer gets share back and the
//     payer is debited share, once per settled participant
//   - Expenses without participants are skipped
//
// Inputs are never modified.
func ComputeBalances(members []models.Member, expenses []models.Expense) Balances {
	l := newLedger(members)
	for _, exp := range expenses {
		l.apply(exp)
	}

	balances := make(Balances, len(l))
	for id, t := range l {
		balances[id] = t.net()
	}
	return balances
}

// Summarize returns per-member totals in the order of members.
// Each entry's Net equals ComputeBalances(members, expenses)[member.ID].
func Summarize(members []models.Member, expenses []models.Expense) []models.MemberBalance {
	l := newLedger(members)
	for _, exp := range expenses {
		l.apply(exp)
	}

	summaries := make([]models.MemberBalance, 0, len(members))
	for _, m := range members {
		t := l[m.ID]
		summaries = append(summaries, models.MemberBalance{
			Member:  m,
			Paid:    t.paid,
			Share:   t.share,
			Settled: t.settled,
			Net:     t.net(),
		})
	}
	return summaries
}
