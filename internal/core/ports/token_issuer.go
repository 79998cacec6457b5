package ports

import "github.com/qfnexora/finance-api/internal/core/domain"

// AccessClaims is the identity carried by a verified access token.
type AccessClaims struct {
	AccountID string
	Kind      domain.AccountKind
}

// TokenIssuer creates and verifies signed access tokens and generates the
// opaque refresh tokens paired with them.
type TokenIssuer interface {
	// IssueAccess signs a short-lived token identifying the account.
	IssueAccess(accountID string, kind domain.AccountKind) (string, error)
	// VerifyAccess returns the claims of a valid, unexpired token and
	// domain.ErrInvalidOrExpiredToken otherwise.
	VerifyAccess(token string) (*AccessClaims, error)
	// IssueRefresh returns a cryptographically random opaque token.
	IssueRefresh() (string, error)
}
