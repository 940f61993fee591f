package identity

import (
	"context"

	coreidentity "jobtrack/src/core/identity"
)

// StaticVerifier resolves tokens from a fixed map. It backs local
// development and tests, where no identity provider is running.
type StaticVerifier struct {
	tokens map[string]string
}

func NewStaticVerifier(tokens map[string]string) *StaticVerifier {
	return &StaticVerifier{tokens: tokens}
}

func (v *StaticVerifier) Verify(ctx context.Context, token string) (string, error) {
	ownerID, ok := v.tokens[token]
	if !ok || ownerID == "" {
		return "", coreidentity.ErrUnauthenticated
	}
	return ownerID, nil
}
