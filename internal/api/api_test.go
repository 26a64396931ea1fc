package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupsplit/internal/service"
	"github.com/mmynk/groupsplit/internal/storage/sqlite"
)

// setupTestServer serves the ledger over an httptest server backed by a temp database.
func setupTestServer(t *testing.T) (*LedgerClient, *httptest.Server) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	path, handler := NewLedgerServiceHandler(service.NewLedgerService(store))
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return NewLedgerClient(http.DefaultClient, server.URL), server
}

func requireCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	require.Error(t, err)

	var connectErr *connect.Error
	require.True(t, errors.As(err, &connectErr), "expected connect.Error, got %T", err)
	assert.Equal(t, want, connectErr.Code(), "error: %v", err)
}

func newGroup(t *testing.T, client *LedgerClient, names ...string) (Group, map[string]Member) {
	t.Helper()
	ctx := context.Background()

	created, err := client.CreateGroup(ctx, &CreateGroupRequest{Name: "Weekend"})
	require.NoError(t, err)

	members := make(map[string]Member, len(names))
	for _, name := range names {
		resp, err := client.AddMember(ctx, &AddMemberRequest{GroupID: created.Group.ID, Name: name})
		require.NoError(t, err)
		members[name] = resp.Member
	}
	return created.Group, members
}

func TestGroupLifecycle(t *testing.T) {
	client, _ := setupTestServer(t)
	ctx := context.Background()

	group, _ := newGroup(t, client)
	assert.Equal(t, "Weekend", group.Name)

	got, err := client.GetGroup(ctx, &GetGroupRequest{GroupID: group.ID})
	require.NoError(t, err)
	assert.Equal(t, group, got.Group)

	list, err := client.ListGroups(ctx, &ListGroupsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Groups, 1)

	_, err = client.DeleteGroup(ctx, &DeleteGroupRequest{GroupID: group.ID})
	require.NoError(t, err)

	_, err = client.GetGroup(ctx, &GetGroupRequest{GroupID: group.ID})
	requireCode(t, err, connect.CodeNotFound)
}

func TestErrorCodes(t *testing.T) {
	client, _ := setupTestServer(t)
	ctx := context.Background()
	group, members := newGroup(t, client, "Alice", "Bob")

	_, err := client.AddExpense(ctx, &AddExpenseRequest{
		GroupID:      group.ID,
		Description:  "Dinner",
		Amount:       decimal.NewFromInt(60),
		PayerID:      members["Alice"].ID,
		Participants: []string{members["Alice"].ID, members["Bob"].ID},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
		want connect.Code
	}{
		{
			name: "blank group name",
			call: func() error {
				_, err := client.CreateGroup(ctx, &CreateGroupRequest{Name: " "})
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "missing group id",
			call: func() error {
				_, err := client.ListMembers(ctx, &ListMembersRequest{})
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "duplicate member name",
			call: func() error {
				_, err := client.AddMember(ctx, &AddMemberRequest{GroupID: group.ID, Name: "alice"})
				return err
			},
			want: connect.CodeAlreadyExists,
		},
		{
			name: "zero amount",
			call: func() error {
				_, err := client.AddExpense(ctx, &AddExpenseRequest{
					GroupID:      group.ID,
					Description:  "Nothing",
					PayerID:      members["Alice"].ID,
					Participants: []string{members["Bob"].ID},
				})
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "delete referenced member",
			call: func() error {
				_, err := client.DeleteMember(ctx, &DeleteMemberRequest{MemberID: members["Bob"].ID})
				return err
			},
			want: connect.CodeFailedPrecondition,
		},
		{
			name: "unknown expense",
			call: func() error {
				_, err := client.ToggleSettlement(ctx, &ToggleSettlementRequest{ExpenseID: "missing", MemberID: members["Bob"].ID})
				return err
			},
			want: connect.CodeNotFound,
		},
		{
			name: "unknown group balances",
			call: func() error {
				_, err := client.GetBalances(ctx, &GetBalancesRequest{GroupID: "missing"})
				return err
			},
			want: connect.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireCode(t, tt.call(), tt.want)
		})
	}
}

func TestGetBalances_ThreeWaySplit(t *testing.T) {
	client, _ := setupTestServer(t)
	ctx := context.Background()
	group, members := newGroup(t, client, "A", "B", "C")

	_, err := client.AddExpense(ctx, &AddExpenseRequest{
		GroupID:      group.ID,
		Description:  "Cabin",
		Amount:       decimal.NewFromInt(300),
		PayerID:      members["A"].ID,
		Participants: []string{members["A"].ID, members["B"].ID, members["C"].ID},
	})
	require.NoError(t, err)

	resp, err := client.GetBalances(ctx, &GetBalancesRequest{GroupID: group.ID})
	require.NoError(t, err)

	require.Len(t, resp.Balances, 3)
	net := map[string]string{}
	for _, b := range resp.Balances {
		net[b.Member.Name] = b.Net.String()
	}
	assert.Equal(t, map[string]string{"A": "200", "B": "-100", "C": "-100"}, net)

	require.Len(t, resp.Debts, 2)
	var from []string
	for _, d := range resp.Debts {
		from = append(from, d.From.Name)
		assert.Equal(t, "A", d.To.Name)
		assert.Equal(t, "100", d.Amount.String())
	}
	assert.ElementsMatch(t, []string{"B", "C"}, from)
}

func TestGetBalances_SettledShare(t *testing.T) {
	client, _ := setupTestServer(t)
	ctx := context.Background()
	group, members := newGroup(t, client, "A", "B")

	added, err := client.AddExpense(ctx, &AddExpenseRequest{
		GroupID:      group.ID,
		Description:  "Groceries",
		Amount:       decimal.NewFromInt(100),
		PayerID:      members["A"].ID,
		Participants: []string{members["A"].ID, members["B"].ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{members["A"].ID}, added.Expense.SettledBy)

	toggled, err := client.ToggleSettlement(ctx, &ToggleSettlementRequest{
		ExpenseID: added.Expense.ID,
		MemberID:  members["B"].ID,
	})
	require.NoError(t, err)
	assert.Contains(t, toggled.Expense.SettledBy, members["B"].ID)

	resp, err := client.GetBalances(ctx, &GetBalancesRequest{GroupID: group.ID})
	require.NoError(t, err)
	for _, b := range resp.Balances {
		assert.True(t, b.Net.IsZero(), "%s net = %s", b.Member.Name, b.Net)
	}
	assert.Empty(t, resp.Debts)
}

func TestGetBalances_RoundsToCents(t *testing.T) {
	client, _ := setupTestServer(t)
	ctx := context.Background()
	group, members := newGroup(t, client, "A", "B", "C")

	_, err := client.AddExpense(ctx, &AddExpenseRequest{
		GroupID:      group.ID,
		Description:  "Coffee",
		Amount:       decimal.NewFromInt(10),
		PayerID:      members["A"].ID,
		Participants: []string{members["A"].ID, members["B"].ID, members["C"].ID},
	})
	require.NoError(t, err)

	resp, err := client.GetBalances(ctx, &GetBalancesRequest{GroupID: group.ID})
	require.NoError(t, err)

	for _, b := range resp.Balances {
		assert.LessOrEqual(t, -b.Share.Exponent(), int32(displayPlaces), "%s share = %s", b.Member.Name, b.Share)
	}
	for _, d := range resp.Debts {
		assert.Equal(t, "3.33", d.Amount.String())
	}
}

func TestListExpensesAndDelete(t *testing.T) {
	client, _ := setupTestServer(t)
	ctx := context.Background()
	group, members := newGroup(t, client, "Alice", "Bob")

	added, err := client.AddExpense(ctx, &AddExpenseRequest{
		GroupID:      group.ID,
		Description:  "Tickets",
		Amount:       decimal.RequireFromString("42.50"),
		PayerID:      members["Bob"].ID,
		Participants: []string{members["Alice"].ID},
	})
	require.NoError(t, err)

	list, err := client.ListExpenses(ctx, &ListExpensesRequest{GroupID: group.ID})
	require.NoError(t, err)
	require.Len(t, list.Expenses, 1)
	assert.True(t, list.Expenses[0].Amount.Equal(decimal.RequireFromString("42.5")))
	assert.Empty(t, list.Expenses[0].SettledBy)

	_, err = client.DeleteExpense(ctx, &DeleteExpenseRequest{ExpenseID: added.Expense.ID})
	require.NoError(t, err)

	_, err = client.DeleteMember(ctx, &DeleteMemberRequest{MemberID: members["Alice"].ID})
	require.NoError(t, err)

	remaining, err := client.ListMembers(ctx, &ListMembersRequest{GroupID: group.ID})
	require.NoError(t, err)
	require.Len(t, remaining.Members, 1)
	assert.Equal(t, "Bob", remaining.Members[0].Name)
}

// TestPlainJSONRequest checks the wire format a browser would use.
func TestPlainJSONRequest(t *testing.T) {
	_, server := setupTestServer(t)

	resp, err := http.Post(
		server.URL+LedgerServiceCreateGroupProcedure,
		"application/json",
		strings.NewReader(`{"name":"From curl"}`),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}
