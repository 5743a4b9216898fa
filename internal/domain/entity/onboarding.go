package entity

import "time"

// Component names an onboarding wizard step.
type Component string

const (
	ComponentAbout     Component = "about"
	ComponentAddress   Component = "address"
	ComponentBirthdate Component = "birthdate"
)

// Components lists every valid component.
var Components = []Component{ComponentAbout, ComponentAddress, ComponentBirthdate}

// Valid reports whether c is one of the known components.
func (c Component) Valid() bool {
	for _, known := range Components {
		if c == known {
			return true
		}
	}
	return false
}

// Pages lists the wizard pages a component may be placed on.
var Pages = []int{2, 3}

// ValidPage reports whether page is an allowed page number.
func ValidPage(page int) bool {
	for _, p := range Pages {
		if p == page {
			return true
		}
	}
	return false
}

// OnboardingConfig places a component on a wizard page.
type OnboardingConfig struct {
	ID         string
	Component  Component
	PageNumber int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DefaultOnboardingConfigs is the layout written by the bootstrap seed.
func DefaultOnboardingConfigs() []OnboardingConfig {
	return []OnboardingConfig{
		{Component: ComponentAbout, PageNumber: 2},
		{Component: ComponentAddress, PageNumber: 2},
		{Component: ComponentBirthdate, PageNumber: 3},
	}
}
