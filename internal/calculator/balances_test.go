package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groupsplit/internal/models"
)

func members(ids ...string) []models.Member {
	out := make([]models.Member, len(ids))
	for i, id := range ids {
		out[i] = models.Member{ID: id, Name: "Member " + id}
	}
	return out
}

func expense(amount string, payer string, participants []string, settled ...string) models.Expense {
	return models.Expense{
		Amount:       decimal.RequireFromString(amount),
		PayerID:      payer,
		Participants: participants,
		SettledBy:    models.NewIDSet(settled...),
	}
}

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name     string
		members  []models.Member
		expenses []models.Expense
		want     map[string]float64
	}{
		{
			name:     "no members no expenses",
			members:  nil,
			expenses: nil,
			want:     map[string]float64{},
		},
		{
			name:     "members without expenses are all zero",
			members:  members("a", "b", "c"),
			expenses: nil,
			want:     map[string]float64{"a": 0, "b": 0, "c": 0},
		},
		{
			name:     "three-way split paid by A",
			members:  members("a", "b", "c"),
			expenses: []models.Expense{expense("300", "a", []string{"a", "b", "c"})},
			want:     map[string]float64{"a": 200, "b": -100, "c": -100},
		},
		{
			name:     "settled participant cancels out",
			members:  members("a", "b"),
			expenses: []models.Expense{expense("100", "a", []string{"a", "b"}, "a", "b")},
			want:     map[string]float64{"a": 0, "b": 0},
		},
		{
			name:     "payer not a participant only gets the credit",
			members:  members("a", "b", "c"),
			expenses: []models.Expense{expense("90", "a", []string{"b", "c"})},
			want:     map[string]float64{"a": 90, "b": -45, "c": -45},
		},
		{
			name:     "payer in settled set is not reversed",
			members:  members("a", "b"),
			expenses: []models.Expense{expense("100", "a", []string{"a", "b"}, "a")},
			want:     map[string]float64{"a": 50, "b": -50},
		},
		{
			name:     "settled id outside participants is ignored",
			members:  members("a", "b", "c"),
			expenses: []models.Expense{expense("100", "a", []string{"a", "b"}, "c")},
			want:     map[string]float64{"a": 50, "b": -50, "c": 0},
		},
		{
			name:    "expense without participants is skipped",
			members: members("a", "b"),
			expenses: []models.Expense{
				expense("500", "a", nil),
				expense("40", "b", []string{"a", "b"}),
			},
			want: map[string]float64{"a": -20, "b": 20},
		},
		{
			name:     "zero amount expense changes nothing",
			members:  members("a", "b"),
			expenses: []models.Expense{expense("0", "a", []string{"a", "b"})},
			want:     map[string]float64{"a": 0, "b": 0},
		},
		{
			name:    "four members with partial settlements",
			members: members("a", "b", "c", "d"),
			expenses: []models.Expense{
				expense("400", "a", []string{"a", "b", "c", "d"}, "b"),
				expense("90", "b", []string{"b", "c", "d"}, "c"),
				expense("60", "c", []string{"a", "c"}),
			},
			want: map[string]float64{"a": 170, "b": 30, "c": -70, "d": -130},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := ComputeBalances(tt.members, tt.expenses)

			if len(balances) != len(tt.want) {
				t.Fatalf("got %d balances, want %d: %v", len(balances), len(tt.want), balances)
			}
			for id, want := range tt.want {
				got, ok := balances[id]
				if !ok {
					t.Errorf("missing balance for %s", id)
					continue
				}
				assertAmount(t, "balance["+id+"]", got, want)
			}
			if !IsSettled(balances.Total()) {
				t.Errorf("balances sum to %s, want 0", balances.Total())
			}
		})
	}
}

func TestComputeBalances_FractionalShares(t *testing.T) {
	balances := ComputeBalances(members("a", "b", "c"), []models.Expense{
		expense("100", "a", []string{"a", "b", "c"}),
	})

	assertAmount(t, "a", balances["a"], 66.6667)
	assertAmount(t, "b", balances["b"], -33.3333)
	assertAmount(t, "c", balances["c"], -33.3333)

	if !IsSettled(balances.Total()) {
		t.Errorf("balances sum to %s, want 0", balances.Total())
	}
}

func TestComputeBalances_UnknownParticipantStillBalances(t *testing.T) {
	balances := ComputeBalances(members("a"), []models.Expense{
		expense("50", "a", []string{"a", "ghost"}),
	})

	assertAmount(t, "a", balances["a"], 25)
	assertAmount(t, "ghost", balances["ghost"], -25)
}

func TestComputeBalances_DoesNotMutateInput(t *testing.T) {
	ms := members("a", "b")
	exp := expense("100", "a", []string{"b", "a"}, "b")
	expenses := []models.Expense{exp}

	ComputeBalances(ms, expenses)

	if expenses[0].Participants[0] != "b" || expenses[0].Participants[1] != "a" {
		t.Errorf("participants reordered: %v", expenses[0].Participants)
	}
	if expenses[0].SettledBy.Len() != 1 || !expenses[0].SettledBy.Has("b") {
		t.Errorf("settled set changed: %v", expenses[0].SettledBy.Sorted())
	}
	if !expenses[0].Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("amount changed: %s", expenses[0].Amount)
	}
}

func TestSummarize(t *testing.T) {
	ms := members("a", "b", "c")
	expenses := []models.Expense{
		expense("300", "a", []string{"a", "b", "c"}, "b"),
		expense("60", "c", []string{"a", "c"}),
	}

	summaries := Summarize(ms, expenses)
	if len(summaries) != 3 {
		t.Fatalf("got %d summaries, want 3", len(summaries))
	}

	balances := ComputeBalances(ms, expenses)
	for i, s := range summaries {
		if s.Member.ID != ms[i].ID {
			t.Errorf("summary %d is for %s, want %s", i, s.Member.ID, ms[i].ID)
		}
		if !s.Net.Equal(balances[s.Member.ID]) {
			t.Errorf("%s net = %s, want %s", s.Member.ID, s.Net, balances[s.Member.ID])
		}
	}

	a := summaries[0]
	assertAmount(t, "a paid", a.Paid, 300)
	assertAmount(t, "a share", a.Share, 130)
	assertAmount(t, "a settled", a.Settled, -100)
	assertAmount(t, "a net", a.Net, 70)

	b := summaries[1]
	assertAmount(t, "b paid", b.Paid, 0)
	assertAmount(t, "b share", b.Share, 100)
	assertAmount(t, "b settled", b.Settled, 100)
	assertAmount(t, "b net", b.Net, 0)

	c := summaries[2]
	assertAmount(t, "c paid", c.Paid, 60)
	assertAmount(t, "c share", c.Share, 130)
	assertAmount(t, "c net", c.Net, -70)
}
