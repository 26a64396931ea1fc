// Package models defines the core domain models for groupsplit.
//
// # Models
//
//   - Group: a ledger that owns a set of members and the expenses among them
//   - Member: a person taking part in a group's expenses
//   - Expense: a single payment fronted by one member on behalf of some participants
//   - SimplifiedDebt: one recommended transfer produced by debt simplification
//   - MemberBalance: per-member totals shown in the balance summary
//
// # Design Principles
//
// 1. **Ids, not pointers**: relationships between models use ID strings
// 2. **Decimal money**: all amounts are shopspring decimals, never float64
// 3. **Derived values are not stored**: balances and debts are recomputed on every read
// 4. **Nil-safe sets**: an expense's settled participants are an IDSet whose zero value is empty
package models
