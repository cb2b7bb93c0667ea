package financial

import (
	"finload/app/table"
)

// Meta identifies one load. It is informational only and never links the
// result back to the file.
type Meta struct {
	// ID is a fresh UUID per load, also attached to every log line
	ID string
	// Source is the path that was read
	Source string
	// SourceHash is the HighwayHash-256 of the file bytes
	SourceHash string
}

// Result is the outcome of a successful load: either a *Ledger or an *Unharmonized.
type Result interface {
	Table() *table.Table
	FileType() FileType
	// Harmonized reports whether the table follows a declared schema
	Harmonized() bool
	Meta() Meta

	isResult()
}

// Ledger is a harmonized FEC export. Its table always carries the string
// column CompteNum, the float columns Credit and Debit, and Solde = Credit - Debit.
type Ledger struct {
	meta  Meta
	table *table.Table
}

func (l *Ledger) Table() *table.Table { return l.table }
func (l *Ledger) FileType() FileType  { return FEC }
func (l *Ledger) Harmonized() bool    { return true }
func (l *Ledger) Meta() Meta          { return l.meta }
func (l *Ledger) isResult()           {}

// Unharmonized is a file read with default typing only. Notice explains what
// is missing; it is the same text that was logged during the load.
type Unharmonized struct {
	meta     Meta
	fileType FileType
	table    *table.Table
	notice   string
}

func (u *Unharmonized) Table() *table.Table { return u.table }
func (u *Unharmonized) FileType() FileType  { return u.fileType }
func (u *Unharmonized) Harmonized() bool    { return false }
func (u *Unharmonized) Meta() Meta          { return u.meta }
func (u *Unharmonized) Notice() string      { return u.notice }
func (u *Unharmonized) isResult()           {}
