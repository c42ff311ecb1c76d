// Package environment names the deployment environments qrkit runs in.
package environment

import (
	"fmt"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse resolves s, accepting the short aliases dev, stage and prod.
// An empty string is Development.
func Parse(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dev", string(Development):
		return Development, nil
	case "stage", string(Staging):
		return Staging, nil
	case "prod", string(Production):
		return Production, nil
	}
	return "", fmt.Errorf("unknown environment %q", s)
}

func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) IsDevelopment() bool {
	return e == Development
}

func (e Environment) String() string {
	return string(e)
}
