package resettoken

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	id "passgate/pkg/domain"
	dErrors "passgate/pkg/domain-errors"
)

// Claims carried by a signed reset token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Minter signs and parses reset tokens. The token ID doubles as the store key
// so a parsed token still has to survive a Consume before it is honored.
type Minter struct {
	signingKey []byte
	ttl        time.Duration
}

func NewMinter(signingKey string, ttl time.Duration) *Minter {
	return &Minter{
		signingKey: []byte(signingKey),
		ttl:        ttl,
	}
}

// TTL returns the lifetime stamped into minted tokens.
func (m *Minter) TTL() time.Duration {
	return m.ttl
}

// Mint creates a signed reset token for the user and returns it with its ID.
func (m *Minter) Mint(userID id.UserID) (string, id.ResetTokenID, error) {
	tokenID := id.NewResetTokenID()
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})

	signed, err := token.SignedString(m.signingKey)
	if err != nil {
		return "", id.ResetTokenID{}, fmt.Errorf("sign reset token: %w", err)
	}
	return signed, tokenID, nil
}

// Parse validates a signed token and extracts its IDs.
func (m *Minter) Parse(signed string) (id.ResetTokenID, id.UserID, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(signed, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return m.signingKey, nil
	})
	if err != nil {
		return id.ResetTokenID{}, id.UserID{}, dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid reset token")
	}

	userID, err := id.ParseUserID(claims.UserID)
	if err != nil {
		return id.ResetTokenID{}, id.UserID{}, err
	}
	tokenID, err := id.ParseResetTokenID(claims.ID)
	if err != nil {
		return id.ResetTokenID{}, id.UserID{}, err
	}
	return tokenID, userID, nil
}
