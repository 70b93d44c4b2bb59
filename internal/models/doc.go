// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

// Package models defines the shared domain types that cross component
// boundaries: the assistant request and its kitchen-state snapshot, recipes
// and meal plans, interaction history records, and the response envelope.
//
// Types that belong to a single pipeline stage (query analysis, the
// personalization profile, the environmental context, scored candidates)
// live in their owning packages; models holds only what two or more
// components exchange.
package models
