package models

import "github.com/shopspring/decimal"

// Expense represents one payment made by a member on behalf of a set of participants.
// The amount is split evenly among the participants.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Description is a short human-readable label (e.g., "Dinner", "Taxi").
	Description string

	// Amount is the total paid. Never negative.
	Amount decimal.Decimal

	// PayerID is the member who fronted the money.
	PayerID string

	// Participants are the member IDs the expense was for, without duplicates.
	// The payer may or may not be one of them.
	Participants []string

	// SettledBy holds the participants who have already paid their share back
	// to the payer. It is always a subset of Participants.
	SettledBy IDSet

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// IsSettled reports whether memberID no longer owes a share of this expense.
// The payer is always settled with respect to their own share.
func (e Expense) IsSettled(memberID string) bool {
	return memberID == e.PayerID || e.SettledBy.Has(memberID)
}

// HasParticipant reports whether memberID is one of the expense's participants.
func (e Expense) HasParticipant(memberID string) bool {
	for _, p := range e.Participants {
		if p == memberID {
			return true
		}
	}
	return false
}

// References reports whether the expense names memberID as payer or participant.
func (e Expense) References(memberID string) bool {
	return e.PayerID == memberID || e.HasParticipant(memberID)
}
