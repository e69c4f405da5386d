// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small shared helpers with no domain knowledge.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for records the engine creates on its
// own behalf (conflict records, re-queued changes). Version 7 keeps ids
// time-ordered so conflict listings sort by detection time without an extra
// column.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 UUID, falling back to v4 if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
