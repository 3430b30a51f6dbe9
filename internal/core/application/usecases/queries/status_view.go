// Package queries contains read operations for retrieving system state.
// Queries read tables directly and decorate stored status codes with the
// display data of the loaded registry.
package queries

import (
	"shop/internal/core/domain/model/status"
)

// StatusView is a stored status code with its display name and badge.
type StatusView struct {
	Code  string
	Name  string
	Badge string
}

// viewOf falls back to the bare code for values no longer in the vocabulary,
// which happens when a deployment removes a status that stored orders still carry.
func viewOf(registry *status.Registry, axis status.Axis, code string) StatusView {
	view := StatusView{Code: code, Name: code}

	vocabulary, err := registry.Vocabulary(axis)
	if err != nil {
		return view
	}
	if d, ok := vocabulary.Get(code); ok {
		view.Name = d.Name
		view.Badge = d.Badge
	}
	return view
}

func terminalCodes(registry *status.Registry) []string {
	codes := make([]string, 0)
	for _, d := range registry.Order().Definitions() {
		if d.Terminal {
			codes = append(codes, d.Code)
		}
	}
	return codes
}
