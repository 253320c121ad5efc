// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"regexp"
	"strconv"
	"time"
)

// TransactionType classifies a transaction as money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// CustomIDPrefix returns the letter that starts auto-generated custom ids of
// this type: "R" for income, "D" for expense.
func (t TransactionType) CustomIDPrefix() string {
	if t == Income {
		return "R"
	}
	return "D"
}

// customIDPattern matches well-formed custom ids. Anything else is a
// free-form label that sorts after the well-formed ones.
var customIDPattern = regexp.MustCompile(`^[RD][0-9]+$`)

// CustomIDPatternSQL is customIDPattern in PostgreSQL regex syntax.
const CustomIDPatternSQL = `^[RD][0-9]+$`

// IsWellFormedCustomID reports whether s is a prefix letter followed by digits.
func IsWellFormedCustomID(s string) bool {
	return customIDPattern.MatchString(s)
}

// CustomIDNumber returns the numeric suffix of a well-formed custom id
// ("R010" -> 10). ok is false for absent or malformed ids and for suffixes
// that do not fit into int64.
func CustomIDNumber(customID *string) (n int64, ok bool) {
	if customID == nil || !customIDPattern.MatchString(*customID) {
		return 0, false
	}
	n, err := strconv.ParseInt((*customID)[1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatCustomID builds an auto-generated custom id: the type prefix followed
// by n zero-padded to at least three digits ("R001", "D042", "R1234").
func FormatCustomID(t TransactionType, n int64) string {
	s := strconv.FormatInt(n, 10)
	for len(s) < 3 {
		s = "0" + s
	}
	return t.CustomIDPrefix() + s
}

// Transaction is a single income or expense record owned by one user.
type Transaction struct {
	// ID is the store-assigned identifier.
	ID int64 `json:"id"`

	// UserID is the owner. It is never taken from request payloads.
	UserID int64 `json:"-"`

	// CustomID is the human-facing label, unique per (UserID, Type).
	// Nil means the row has no label.
	CustomID *string `json:"custom_id"`

	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Amount      Money           `json:"amount"`
	Date        Date            `json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}

// TransactionInput carries the caller-editable fields of a transaction for
// both create and update. On create an empty CustomID asks the store to
// allocate the next one; on update it is required.
type TransactionInput struct {
	CustomID    string          `json:"custom_id"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Amount      Money           `json:"amount"`
	Date        Date            `json:"date"`
}
