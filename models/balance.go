// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BalanceRecord is the result object of getBalance. It doubles as the
// profile of the authenticated user: FullName is what booking ownership is
// compared against.
type BalanceRecord struct {
	FirstName      string    `json:"Fornamn"`
	LastName       string    `json:"Efternamn"`
	FullName       string    `json:"fullname"`
	Balance        FlexFloat `json:"Saldo"`
	CurrencySymbol string    `json:"currency_symbol"`
}

// TransactionRecord is one account transaction. The API orders them
// newest-first and callers keep that order.
type TransactionRecord struct {
	Date             string    `json:"datum"`
	CreatedAt        string    `json:"regdate"`
	Amount           FlexFloat `json:"belopp"`
	Comment          string    `json:"comment"`
	BookedByFullName string    `json:"bookedby_fullname"`
}

// TransactionList is the result object of getTransactions.
type TransactionList struct {
	Transactions []TransactionRecord `json:"Transaction"`
}
