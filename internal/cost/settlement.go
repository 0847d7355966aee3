package cost

import (
	"fmt"

	"github.com/google/uuid"
)

// CalculateSettlements reduces a set of shared expenses to a list of
// pairwise transfers that settles everyone's balance.
//
// Each expense credits the payer with the full amount and debits every
// split member with floor(amount / members). The integer-division
// remainder is not distributed: it stays with the payer. Debtors are
// then matched against creditors greedily, both in the order they
// appear in personIDs, so the output is deterministic for identical
// input.
func CalculateSettlements(expenses []*Expense, personIDs []uuid.UUID) ([]Settlement, error) {
	balances := make(map[uuid.UUID]int64, len(personIDs))
	for _, id := range personIDs {
		balances[id] = 0
	}

	for _, e := range expenses {
		if len(e.SplitBetween) == 0 {
			return nil, fmt.Errorf("expense %s: %w", e.ID, ErrEmptySplit)
		}

		if _, ok := balances[e.PaidByID]; !ok {
			return nil, fmt.Errorf("expense %s: payer %s: %w", e.ID, e.PaidByID, ErrUnknownParticipant)
		}

		share := e.AmountCents / int64(len(e.SplitBetween))

		balances[e.PaidByID] += e.AmountCents

		for _, id := range e.SplitBetween {
			if _, ok := balances[id]; !ok {
				return nil, fmt.Errorf("expense %s: split member %s: %w", e.ID, id, ErrUnknownParticipant)
			}

			balances[id] -= share
		}
	}

	var debtors, creditors []uuid.UUID

	for _, id := range personIDs {
		switch {
		case balances[id] < 0:
			debtors = append(debtors, id)
		case balances[id] > 0:
			creditors = append(creditors, id)
		}
	}

	var settlements []Settlement

	for _, debtor := range debtors {
		for _, creditor := range creditors {
			if balances[debtor] >= 0 {
				break
			}

			if balances[creditor] <= 0 {
				continue
			}

			amount := min(-balances[debtor], balances[creditor])
			if amount == 0 {
				continue
			}

			settlements = append(settlements, Settlement{
				FromID:      debtor,
				ToID:        creditor,
				AmountCents: amount,
			})

			balances[debtor] += amount
			balances[creditor] -= amount
		}
	}

	return settlements, nil
}
