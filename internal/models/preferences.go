// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package models

// Preferences is the small, non-learned preference object. The core
// treats it as an opaque get/merge-update value; nothing here feeds the
// scoring pipeline directly.
type Preferences struct {
	// ResponseStyle selects verbosity: "concise" or "detailed".
	ResponseStyle string `json:"response_style,omitempty"`

	// DisabledAgents lists agent types the user has turned off.
	DisabledAgents []string `json:"disabled_agents,omitempty"`

	// LearningEnabled gates interaction recording. Defaults to true.
	LearningEnabled *bool `json:"learning_enabled,omitempty"`

	// ShareHistory gates cross-device history visibility.
	ShareHistory *bool `json:"share_history,omitempty"`
}

// Merge overlays non-zero fields of other onto a copy of p and returns it.
func (p Preferences) Merge(other Preferences) Preferences {
	out := p
	if other.ResponseStyle != "" {
		out.ResponseStyle = other.ResponseStyle
	}
	if other.DisabledAgents != nil {
		out.DisabledAgents = other.DisabledAgents
	}
	if other.LearningEnabled != nil {
		out.LearningEnabled = other.LearningEnabled
	}
	if other.ShareHistory != nil {
		out.ShareHistory = other.ShareHistory
	}
	return out
}
