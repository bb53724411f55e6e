package accounts

// Principal kinds carried in access tokens.
const (
	KindUser    = "user"
	KindPartner = "partner"
	KindAdmin   = "admin"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	ID    string
	Kind  string
	Email string
}

// TokenIssuer signs and parses access tokens.
type TokenIssuer interface {
	Issue(p Principal) (string, error)
	Parse(token string) (*Principal, error)
}

// PasswordHasher hashes and compares passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
