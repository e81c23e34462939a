package auth

import "errors"

var (
	// ErrMissingOrMalformedAuthHeader is returned before verification when the
	// Authorization header is absent or not of the form "Bearer <token>".
	ErrMissingOrMalformedAuthHeader = errors.New("invalid or missing authorization header")

	// ErrInvalidCredentials is returned by the credential gate when the pair does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrorKind classifies why a token was rejected.
type ErrorKind int

const (
	// KindUnknown marks an unexpected internal failure, possibly a bug rather than a bad token.
	KindUnknown ErrorKind = iota
	KindMalformedToken
	KindInvalidSignature
	KindExpired
	KindInvalidAudience
	KindInvalidIssuer
)

// Sentinels for errors.Is; matching is by kind only.
var (
	ErrUnknownVerificationFailure = &VerificationError{Kind: KindUnknown}
	ErrMalformedToken             = &VerificationError{Kind: KindMalformedToken}
	ErrInvalidSignature           = &VerificationError{Kind: KindInvalidSignature}
	ErrExpired                    = &VerificationError{Kind: KindExpired}
	ErrInvalidAudience            = &VerificationError{Kind: KindInvalidAudience}
	ErrInvalidIssuer              = &VerificationError{Kind: KindInvalidIssuer}
)

// Code is the stable machine-readable identifier exposed to clients and metrics.
func (k ErrorKind) Code() string {
	switch k {
	case KindMalformedToken:
		return "MALFORMED_TOKEN"
	case KindInvalidSignature:
		return "INVALID_SIGNATURE"
	case KindExpired:
		return "TOKEN_EXPIRED"
	case KindInvalidAudience:
		return "INVALID_AUDIENCE"
	case KindInvalidIssuer:
		return "INVALID_ISSUER"
	default:
		return "VERIFICATION_FAILURE"
	}
}

// Message is safe to return to clients.
func (k ErrorKind) Message() string {
	switch k {
	case KindMalformedToken:
		return "Invalid token: malformed"
	case KindInvalidSignature:
		return "Invalid token: signature verification failed"
	case KindExpired:
		return "Token has expired"
	case KindInvalidAudience:
		return "Invalid token audience"
	case KindInvalidIssuer:
		return "Invalid token issuer"
	default:
		return "Token verification error"
	}
}

func (k ErrorKind) String() string {
	return k.Code()
}

// VerificationError is the only error type returned by Verifier.VerifyToken.
type VerificationError struct {
	Kind ErrorKind
	Err  error
}

func newVerificationError(kind ErrorKind, err error) *VerificationError {
	return &VerificationError{Kind: kind, Err: err}
}

func (e *VerificationError) Error() string {
	if e.Err != nil {
		return e.Kind.Message() + ": " + e.Err.Error()
	}
	return e.Kind.Message()
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// Is matches any *VerificationError of the same kind.
func (e *VerificationError) Is(target error) bool {
	t, ok := target.(*VerificationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf extracts the kind from err. Errors that are not verification errors report KindUnknown.
func KindOf(err error) ErrorKind {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return KindUnknown
}
