package financial

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Entry is one typed FEC line
type Entry struct {
	Row       int
	CompteNum string
	Credit    float64
	Debit     float64
	Solde     float64
}

// Entries returns the ledger lines in file order. A missing CompteNum is "".
func (l *Ledger) Entries() []Entry {
	compte, _ := l.table.Column(ColumnCompteNum)
	credit, _ := l.table.Column(ColumnCredit)
	debit, _ := l.table.Column(ColumnDebit)
	solde, _ := l.table.Column(ColumnSolde)

	entries := make([]Entry, l.table.Len())
	for i := range entries {
		e := Entry{Row: i}
		e.CompteNum, _ = compte.Values[i].Str()
		e.Credit, _ = credit.Values[i].Float()
		e.Debit, _ = debit.Values[i].Float()
		e.Solde, _ = solde.Values[i].Float()
		entries[i] = e
	}
	return entries
}

// Totals are exact sums over a set of entries. Solde is Credit - Debit of the sums.
type Totals struct {
	Entries int
	Credit  decimal.Decimal
	Debit   decimal.Decimal
	Solde   decimal.Decimal
}

func (t *Totals) add(e Entry) {
	t.Entries++
	t.Credit = t.Credit.Add(decimal.NewFromFloat(e.Credit))
	t.Debit = t.Debit.Add(decimal.NewFromFloat(e.Debit))
	t.Solde = t.Credit.Sub(t.Debit)
}

// Totals sums every entry of the ledger
func (l *Ledger) Totals() Totals {
	var t Totals
	for _, e := range l.Entries() {
		t.add(e)
	}
	return t
}

// AccountBalance is the trial balance line of one account
type AccountBalance struct {
	CompteNum string
	Totals
}

// BalancesByAccount groups entries by CompteNum, sorted by account number
func (l *Ledger) BalancesByAccount() []AccountBalance {
	byAccount := make(map[string]*AccountBalance)
	for _, e := range l.Entries() {
		b, ok := byAccount[e.CompteNum]
		if !ok {
			b = &AccountBalance{CompteNum: e.CompteNum}
			byAccount[e.CompteNum] = b
		}
		b.add(e)
	}

	balances := make([]AccountBalance, 0, len(byAccount))
	for _, b := range byAccount {
		balances = append(balances, *b)
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].CompteNum < balances[j].CompteNum
	})
	return balances
}
