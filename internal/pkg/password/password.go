package password

import (
	"tour-booking/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes is bcrypt's input limit. Longer secrets are rejected rather than
// silently truncated.
const MaxBytes = 72

var (
	ErrEmpty    = errs.New("password is empty")
	ErrTooLong  = errs.New("password exceeds 72 bytes")
	ErrMismatch = errs.New("password does not match")
)

type Hasher struct {
	cost int
}

// NewHasher clamps cost into bcrypt's accepted range.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Hasher{cost: cost}
}

var defaultHasher = NewHasher(bcrypt.DefaultCost)

// Hash uses the default cost. Account and operator flows share it.
func Hash(plain string) (string, error) {
	return defaultHasher.Hash(plain)
}

func Verify(hash, plain string) error {
	return defaultHasher.Verify(hash, plain)
}

func (h Hasher) Hash(plain string) (string, error) {
	if err := checkInput(plain); err != nil {
		return "", err
	}
	out, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", errs.Wrap(err, "bcrypt hash")
	}
	return string(out), nil
}

// Verify returns ErrMismatch for a wrong secret and a wrapped error when the
// stored hash itself is unreadable.
func (h Hasher) Verify(hash, plain string) error {
	if hash == "" {
		return ErrMismatch
	}
	if err := checkInput(plain); err != nil {
		return err
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "bcrypt compare")
	}
}

func checkInput(plain string) error {
	if plain == "" {
		return ErrEmpty
	}
	if len(plain) > MaxBytes {
		return ErrTooLong
	}
	return nil
}
