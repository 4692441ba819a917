// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists habits.

HabitStore is the contract the HTTP handlers depend on. GormStore
implements it over a *gorm.DB opened by package db:

	s := store.NewGormStore(gdb)
	habit, err := s.Get(ctx, 42)

# Errors

Every method returns either nil, ErrNotFound, or a *Error wrapping the
database failure. KindOf maps an error onto the closed set
KindNone / KindNotFound / KindFailure:

	switch store.KindOf(err) {
	case store.KindNotFound:
		// 404
	case store.KindFailure:
		// 500
	}

gorm.ErrRecordNotFound never leaves this package.
*/
package store
