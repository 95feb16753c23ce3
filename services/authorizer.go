package services

import (
	"github.com/Dosada05/league-admin/utils"
)

// Authorizer decides whether a presented secret unlocks administrative
// actions.
type Authorizer interface {
	Authorize(secret string) bool
}

type credentialAuthorizer struct {
	passwordHash string
}

// NewCredentialAuthorizer checks secrets against a bcrypt hash.
func NewCredentialAuthorizer(passwordHash string) Authorizer {
	return &credentialAuthorizer{passwordHash: passwordHash}
}

func (a *credentialAuthorizer) Authorize(secret string) bool {
	if secret == "" || a.passwordHash == "" {
		return false
	}
	return utils.CheckPasswordHash(secret, a.passwordHash)
}
