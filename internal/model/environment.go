package model

// Environment names the deployment environment the service runs in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// IsProduction reports whether user-facing diagnostics should be suppressed.
func (e Environment) IsProduction() bool {
	return e == EnvironmentProduction
}
