package api

import "github.com/shopspring/decimal"

// Group is a ledger of shared expenses between its members.
type Group struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

// Member is a person in a group.
type Member struct {
	ID        string `json:"id"`
	GroupID   string `json:"groupId"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

// Expense is an amount one member paid on behalf of the participants.
type Expense struct {
	ID           string          `json:"id"`
	GroupID      string          `json:"groupId"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	PayerID      string          `json:"payerId"`
	Participants []string        `json:"participants"`
	SettledBy    []string        `json:"settledBy"`
	CreatedAt    int64           `json:"createdAt"`
}

// MemberBalance breaks a member's net balance down into its parts.
// Amounts are rounded to cents.
type MemberBalance struct {
	Member  Member          `json:"member"`
	Paid    decimal.Decimal `json:"paid"`
	Share   decimal.Decimal `json:"share"`
	Settled decimal.Decimal `json:"settled"`
	Net     decimal.Decimal `json:"net"`
}

// Debt is a single transfer that moves the group towards settlement.
type Debt struct {
	From   Member          `json:"from"`
	To     Member          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

type CreateGroupRequest struct {
	Name string `json:"name"`
}

type CreateGroupResponse struct {
	Group Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID string `json:"groupId"`
}

type GetGroupResponse struct {
	Group Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []Group `json:"groups"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"groupId"`
}

type DeleteGroupResponse struct{}

type AddMemberRequest struct {
	GroupID string `json:"groupId"`
	Name    string `json:"name"`
}

type AddMemberResponse struct {
	Member Member `json:"member"`
}

type ListMembersRequest struct {
	GroupID string `json:"groupId"`
}

type ListMembersResponse struct {
	Members []Member `json:"members"`
}

type DeleteMemberRequest struct {
	MemberID string `json:"memberId"`
}

type DeleteMemberResponse struct{}

type AddExpenseRequest struct {
	GroupID      string          `json:"groupId"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	PayerID      string          `json:"payerId"`
	Participants []string        `json:"participants"`
}

type AddExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type ListExpensesRequest struct {
	GroupID string `json:"groupId"`
}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expenseId"`
}

type DeleteExpenseResponse struct{}

type ToggleSettlementRequest struct {
	ExpenseID string `json:"expenseId"`
	MemberID  string `json:"memberId"`
}

type ToggleSettlementResponse struct {
	Expense Expense `json:"expense"`
}

type GetBalancesRequest struct {
	GroupID string `json:"groupId"`
}

type GetBalancesResponse struct {
	Balances []MemberBalance `json:"balances"`
	Debts    []Debt          `json:"debts"`
}
