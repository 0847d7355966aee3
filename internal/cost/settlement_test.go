package cost_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
)

var (
	anna  = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	bram  = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	chris = uuid.MustParse("00000000-0000-0000-0000-000000000003")
	daan  = uuid.MustParse("00000000-0000-0000-0000-000000000004")
)

func expense(amount int64, paidBy uuid.UUID, split ...uuid.UUID) *cost.Expense {
	return &cost.Expense{
		ID:           uuid.New(),
		AmountCents:  amount,
		PaidByID:     paidBy,
		SplitBetween: split,
		Date:         time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCalculateSettlements_EvenSplit(t *testing.T) {
	// Anna pays 3000 split three ways: Bram and Chris each owe her 1000.
	expenses := []*cost.Expense{
		expense(3000, anna, anna, bram, chris),
	}

	settlements, err := cost.CalculateSettlements(expenses, []uuid.UUID{anna, bram, chris})
	require.NoError(t, err)

	assert.Equal(t, []cost.Settlement{
		{FromID: bram, ToID: anna, AmountCents: 1000},
		{FromID: chris, ToID: anna, AmountCents: 1000},
	}, settlements)
}

func TestCalculateSettlements_RemainderStaysWithPayer(t *testing.T) {
	// 100 cents over three people: each share is floor(100/3) = 33, the
	// leftover cent is not redistributed.
	expenses := []*cost.Expense{
		expense(100, anna, anna, bram, chris),
	}

	settlements, err := cost.CalculateSettlements(expenses, []uuid.UUID{anna, bram, chris})
	require.NoError(t, err)

	assert.Equal(t, []cost.Settlement{
		{FromID: bram, ToID: anna, AmountCents: 33},
		{FromID: chris, ToID: anna, AmountCents: 33},
	}, settlements)
}

func TestCalculateSettlements_PayerOutsideSplit(t *testing.T) {
	// Anna pays 1000 but only Bram and Chris share the cost.
	expenses := []*cost.Expense{
		expense(1000, anna, bram, chris),
	}

	settlements, err := cost.CalculateSettlements(expenses, []uuid.UUID{anna, bram, chris})
	require.NoError(t, err)

	assert.Equal(t, []cost.Settlement{
		{FromID: bram, ToID: anna, AmountCents: 500},
		{FromID: chris, ToID: anna, AmountCents: 500},
	}, settlements)
}

func TestCalculateSettlements_GreedyOrder(t *testing.T) {
	// Two creditors, two debtors. Matching is debtor-major in the order
	// participants were supplied, so Chris pays Anna first, then Bram.
	expenses := []*cost.Expense{
		expense(4000, anna, chris, daan),
		expense(2000, bram, chris, daan),
	}

	settlements, err := cost.CalculateSettlements(expenses, []uuid.UUID{anna, bram, chris, daan})
	require.NoError(t, err)

	assert.Equal(t, []cost.Settlement{
		{FromID: chris, ToID: anna, AmountCents: 3000},
		{FromID: daan, ToID: anna, AmountCents: 1000},
		{FromID: daan, ToID: bram, AmountCents: 2000},
	}, settlements)
}

func TestCalculateSettlements_BalanceConservation(t *testing.T) {
	people := []uuid.UUID{anna, bram, chris, daan}
	expenses := []*cost.Expense{
		expense(8123, anna, anna, bram, chris, daan),
		expense(995, bram, anna, bram),
		expense(50000, chris, bram, chris, daan),
		expense(777, daan, anna, chris),
	}

	// Recompute expected net balances independently.
	balances := map[uuid.UUID]int64{}
	for _, e := range expenses {
		share := e.AmountCents / int64(len(e.SplitBetween))
		balances[e.PaidByID] += e.AmountCents

		for _, id := range e.SplitBetween {
			balances[id] -= share
		}
	}

	settlements, err := cost.CalculateSettlements(expenses, people)
	require.NoError(t, err)

	net := map[uuid.UUID]int64{}

	var totalPaid, totalReceived int64

	for _, s := range settlements {
		assert.Positive(t, s.AmountCents)

		net[s.FromID] -= s.AmountCents
		net[s.ToID] += s.AmountCents
		totalPaid += s.AmountCents
		totalReceived += s.AmountCents
	}

	assert.Equal(t, totalPaid, totalReceived)

	for _, p := range people {
		switch {
		case balances[p] < 0:
			// Debtors pay off their balance exactly.
			assert.Equal(t, balances[p], net[p], "debtor %s", p)
		case balances[p] > 0:
			// Creditors receive at most their balance; the floor
			// remainders they absorbed are never paid out.
			assert.LessOrEqual(t, net[p], balances[p], "creditor %s", p)
			assert.GreaterOrEqual(t, net[p], int64(0), "creditor %s", p)
		default:
			assert.Zero(t, net[p], "person %s", p)
		}
	}
}

func TestCalculateSettlements_Idempotent(t *testing.T) {
	people := []uuid.UUID{anna, bram, chris}
	expenses := []*cost.Expense{
		expense(100, anna, anna, bram, chris),
		expense(2599, bram, anna, bram, chris),
	}

	first, err := cost.CalculateSettlements(expenses, people)
	require.NoError(t, err)

	second, err := cost.CalculateSettlements(expenses, people)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateSettlements_NoExpenses(t *testing.T) {
	settlements, err := cost.CalculateSettlements(nil, []uuid.UUID{anna, bram})
	require.NoError(t, err)
	assert.Empty(t, settlements)
}

func TestCalculateSettlements_UnknownPayer(t *testing.T) {
	expenses := []*cost.Expense{
		expense(1000, daan, anna, bram),
	}

	_, err := cost.CalculateSettlements(expenses, []uuid.UUID{anna, bram})
	assert.ErrorIs(t, err, cost.ErrUnknownParticipant)
}

func TestCalculateSettlements_UnknownSplitMember(t *testing.T) {
	expenses := []*cost.Expense{
		expense(1000, anna, anna, daan),
	}

	_, err := cost.CalculateSettlements(expenses, []uuid.UUID{anna, bram})
	assert.ErrorIs(t, err, cost.ErrUnknownParticipant)
}

func TestCalculateSettlements_EmptySplit(t *testing.T) {
	expenses := []*cost.Expense{
		expense(1000, anna),
	}

	_, err := cost.CalculateSettlements(expenses, []uuid.UUID{anna, bram})
	assert.ErrorIs(t, err, cost.ErrEmptySplit)
}
