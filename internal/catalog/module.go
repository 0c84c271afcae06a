// Package catalog loads and indexes fire-alarm control panel module
// definitions from an opaque tabular source, merging duplicate rows,
// attaching prices, and augmenting the result with synthetic enclosure SKUs.
package catalog

import (
	"strings"

	"firepanel/internal/space"
)

// Role distinguishes a main-panel module from a sub-module mounted on one.
type Role string

const (
	RoleMain Role = "main"
	RoleSub  Role = "sub"
	RoleAny  Role = ""
)

// Cents represents money as integer cents, avoiding floating-point drift in
// price arithmetic (the teacher's quotes/service/calculator.go uses the same
// representation for the same reason).
type Cents int64

// Module is a single catalog entry. Modules are built once at load time via
// the merge logic in Repository and are immutable thereafter — nothing in
// this package mutates a Module after Repository.Load returns.
type Module struct {
	ModelNumber string
	Description string

	CompatiblePanels    []string
	CompatibleProtocols []string

	TotalPointCapacity string
	CircuitCapacity    string
	SupervisoryCurrent float64
	AlarmCurrent       float64
	SupportedSpeakers  string
	Circuits           string

	CompulsoryMainModules []string
	Dependencies          []string
	SpecificationCategories []string
	Keywords                []string

	ModuleRole Role
	PhysicalSize string
	MountedOn    space.Mount

	Price Cents

	InternalSpace int
	DoorSpace     int
}

// MatchesKeyword reports whether keyword appears, case-insensitively, in the
// module's description, specification categories, or keywords — the same
// three haystacks the original rule engine's ModuleDefinition.matches_keyword
// checks.
func (m Module) MatchesKeyword(keyword string) bool {
	keyword = strings.ToLower(keyword)
	haystacks := []string{
		strings.ToLower(m.Description),
		strings.ToLower(strings.Join(m.SpecificationCategories, " ")),
		strings.ToLower(strings.Join(m.Keywords, " ")),
	}
	for _, haystack := range haystacks {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}

// BlockCount is the optimizer's tie-break weight: the module's total space
// footprint when known, or as a last resort the number formed by the digits
// (and decimal point) embedded in its physical-size text, or 0 when nothing
// is known.
func (m Module) BlockCount() float64 {
	if m.InternalSpace > 0 || m.DoorSpace > 0 {
		return float64(m.InternalSpace + m.DoorSpace)
	}
	if m.PhysicalSize == "" {
		return 0
	}
	var digits strings.Builder
	for _, r := range strings.ToLower(m.PhysicalSize) {
		if (r >= '0' && r <= '9') || r == '.' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	whole := 0.0
	frac := 0.0
	fracDiv := 1.0
	seenDot := false
	for _, r := range digits.String() {
		if r == '.' {
			seenDot = true
			continue
		}
		d := float64(r - '0')
		if !seenDot {
			whole = whole*10 + d
		} else {
			frac = frac*10 + d
			fracDiv *= 10
		}
	}
	return whole + frac/fracDiv
}

// FirstCategory returns the module's first specification category, or "" if
// it has none. Several pricing and demand rules key off "the" category of a
// module, which is always its first-listed one.
func (m Module) FirstCategory() string {
	if len(m.SpecificationCategories) == 0 {
		return ""
	}
	return m.SpecificationCategories[0]
}
