package models

import "github.com/shopspring/decimal"

// SimplifiedDebt is one recommended transfer that, together with the rest of
// a simplified debt list, brings every member's balance to zero.
type SimplifiedDebt struct {
	// From is the member who should pay.
	From Member

	// To is the member who should receive the payment.
	To Member

	// Amount is the transfer amount. Always positive.
	Amount decimal.Decimal
}

// MemberBalance summarises one member's position in a group.
type MemberBalance struct {
	Member Member

	// Paid is the total amount this member fronted across all expenses.
	Paid decimal.Decimal

	// Share is the total of this member's shares across all expenses they took part in.
	Share decimal.Decimal

	// Settled is the net amount already reimbursed outside the ledger:
	// positive when the member paid shares back, negative when they received them.
	Settled decimal.Decimal

	// Net is Paid - Share + Settled. Positive = owed money, negative = owes money.
	Net decimal.Decimal
}
