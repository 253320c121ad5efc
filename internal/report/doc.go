// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report turns a user's transactions into dashboard statistics.
//
// Every function is pure: it receives rows that were already scoped to one
// user by the store and never fails. No rows is a valid input and yields
// zeros and empty slices. Periods are bucketed by the transaction date, not
// by the time the row was created.
package report
