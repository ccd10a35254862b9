package tui

import "github.com/san-kum/transester/internal/kinetics"

// Selection is presentation state only: which equation is on screen and
// which explanatory panels are open. It never touches the simulation.
type Selection struct {
	Active kinetics.Quantity
	// ShowDerivation expands the worked development of the active equation.
	ShowDerivation bool
	// Derivations holds the independent per-quantity derivation panels.
	Derivations [3]bool
}

func NewSelection() Selection {
	return Selection{Active: kinetics.Oil}
}

// Select makes q the active equation and collapses its development.
func (s *Selection) Select(q kinetics.Quantity) {
	s.Active = q
	s.ShowDerivation = false
}

// Next cycles the active equation T -> E -> G -> T.
func (s *Selection) Next() {
	s.Select(kinetics.Quantities[(int(s.Active)+1)%len(kinetics.Quantities)])
}

func (s *Selection) ToggleDevelopment() {
	s.ShowDerivation = !s.ShowDerivation
}

// ToggleDerivation flips q's derivation panel, leaving the others alone.
func (s *Selection) ToggleDerivation(q kinetics.Quantity) {
	if q < kinetics.Oil || q > kinetics.Glycerin {
		return
	}
	s.Derivations[q] = !s.Derivations[q]
}

func (s Selection) DerivationVisible(q kinetics.Quantity) bool {
	if q < kinetics.Oil || q > kinetics.Glycerin {
		return false
	}
	return s.Derivations[q]
}
