package tui

import (
	"fmt"

	"github.com/san-kum/transester/internal/kinetics"
)

// Equation is the closed-form expression of q.
func Equation(q kinetics.Quantity) string {
	switch q {
	case kinetics.Ester:
		return "[E](t) = 3·[T]₀·(1 − e^(−k·t))"
	case kinetics.Glycerin:
		return "[G](t) = [T]₀·(1 − e^(−k·t))"
	default:
		return "[T](t) = [T]₀·e^(−k·t)"
	}
}

// Development substitutes the current parameters into q's equation and
// evaluates it at the end of the horizon.
func Development(q kinetics.Quantity, p kinetics.Params) []string {
	t0 := p.InitialOilVolume / kinetics.VolumeScale
	k := p.RateConstant
	t := p.TotalDuration
	x := kinetics.Conversion(k, t)

	lines := []string{
		fmt.Sprintf("[T]₀ = %g mL / %g = %.4g", p.InitialOilVolume, kinetics.VolumeScale, t0),
	}
	switch q {
	case kinetics.Ester:
		v := kinetics.StoichiometricFactor * t0 * x
		lines = append(lines,
			fmt.Sprintf("[E](%g) = 3·%.4g·(1 − e^(−%g·%g))", t, t0, k, t),
			fmt.Sprintf("        = %.4f → %.2f mL", v, v*kinetics.VolumeScale))
	case kinetics.Glycerin:
		v := t0 * x
		lines = append(lines,
			fmt.Sprintf("[G](%g) = %.4g·(1 − e^(−%g·%g))", t, t0, k, t),
			fmt.Sprintf("        = %.4f → %.2f mL", v, v*kinetics.VolumeScale))
	default:
		v := t0 * (1 - x)
		lines = append(lines,
			fmt.Sprintf("[T](%g) = %.4g·e^(−%g·%g)", t, t0, k, t),
			fmt.Sprintf("        = %.4f → %.2f mL", v, v*kinetics.VolumeScale))
	}
	return lines
}

// Derivation lists the integration steps behind q's equation.
func Derivation(q kinetics.Quantity) []string {
	switch q {
	case kinetics.Ester:
		return []string{
			"TG + 3 MeOH → 3 E + G: three ester per triglyceride",
			"d[E]/dt = 3·k·[T] = 3·k·[T]₀·e^(−k·t)",
			"[E](t) = 3·k·[T]₀ ∫₀ᵗ e^(−k·s) ds",
			"[E](t) = 3·[T]₀·(1 − e^(−k·t)),  [E](0) = 0",
		}
	case kinetics.Glycerin:
		return []string{
			"one glycerin per triglyceride consumed",
			"d[G]/dt = k·[T] = k·[T]₀·e^(−k·t)",
			"[G](t) = k·[T]₀ ∫₀ᵗ e^(−k·s) ds",
			"[G](t) = [T]₀·(1 − e^(−k·t)),  [G](0) = 0",
		}
	default:
		return []string{
			"first-order, irreversible: d[T]/dt = −k·[T]",
			"∫ d[T]/[T] = −k ∫ dt",
			"ln([T]/[T]₀) = −k·t",
			"[T](t) = [T]₀·e^(−k·t)",
		}
	}
}
