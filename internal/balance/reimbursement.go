package balance

import "sort"

// GetSuggestedReimbursements computes a small set of transfers that zeroes
// out every participant's total. Non-zero balances are sorted by total
// descending with participant id as the tie-break, so the plan does not
// change merely because one suggested transfer was executed and balances
// were recomputed. A greedy two-pointer pass then matches the most
// positive entry against the most negative one; each step fully settles at
// least one participant, so at most n-1 transfers are produced for n
// non-zero balances.
func GetSuggestedReimbursements(balances map[string]Balance) []Reimbursement {
	type entry struct {
		id    string
		total int64
	}

	entries := make([]entry, 0, len(balances))
	for id, b := range balances {
		if b.Total != 0 {
			entries = append(entries, entry{id: id, total: b.Total})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].total != entries[j].total {
			return entries[i].total > entries[j].total
		}
		return entries[i].id < entries[j].id
	})

	reimbursements := make([]Reimbursement, 0, len(entries))
	for len(entries) >= 2 {
		first := &entries[0]
		last := &entries[len(entries)-1]
		if first.total <= 0 || last.total >= 0 {
			// The input did not sum to zero; nothing left to match.
			break
		}

		if first.total > -last.total {
			// The debtor settles in full and drops out.
			amount := -last.total
			reimbursements = append(reimbursements, Reimbursement{From: last.id, To: first.id, Amount: amount})
			first.total -= amount
			entries = entries[:len(entries)-1]
		} else {
			// The creditor is made whole and drops out.
			amount := first.total
			reimbursements = append(reimbursements, Reimbursement{From: last.id, To: first.id, Amount: amount})
			last.total += amount
			entries = entries[1:]
			if entries[len(entries)-1].total == 0 {
				entries = entries[:len(entries)-1]
			}
		}
	}
	return reimbursements
}
