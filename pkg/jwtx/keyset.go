package jwtx

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
)

var ErrNoKey = errors.New("jwtx: key not found")

// keySnapshot is immutable once published.
type keySnapshot struct {
	jwks JWKS
	pub  map[string]any // kid -> *rsa.PublicKey | ed25519.PublicKey | *ecdsa.PublicKey
}

// KeySet holds the issuer's public verification keys. Readers never block:
// every change publishes a fresh snapshot, so a refresh swaps the whole
// set at once.
type KeySet struct {
	cur     atomic.Pointer[keySnapshot]
	writeMu sync.Mutex
}

// NewKeySet returns an empty KeySet.
func NewKeySet() *KeySet {
	k := &KeySet{}
	k.cur.Store(&keySnapshot{pub: map[string]any{}})
	return k
}

// AddJWK parses j and adds it, replacing any key with the same kid.
func (k *KeySet) AddJWK(j JWK) error {
	key, err := publicKeyFromJWK(j)
	if err != nil {
		return err
	}

	k.writeMu.Lock()
	defer k.writeMu.Unlock()

	old := k.cur.Load()
	next := &keySnapshot{pub: make(map[string]any, len(old.pub)+1)}
	for _, existing := range old.jwks.Keys {
		if existing.Kid != j.Kid {
			next.jwks.Keys = append(next.jwks.Keys, existing)
			next.pub[existing.Kid] = old.pub[existing.Kid]
		}
	}
	next.jwks.Keys = append(next.jwks.Keys, j)
	next.pub[j.Kid] = key
	k.cur.Store(next)
	return nil
}

// ResetFromJWKS replaces every key. Keys marked for encryption are ignored.
// If any signing key is invalid the current set is kept.
func (k *KeySet) ResetFromJWKS(jwks JWKS) error {
	next := &keySnapshot{pub: make(map[string]any, len(jwks.Keys))}
	for i, j := range jwks.Keys {
		if j.Use == "enc" {
			continue
		}
		if j.Kid == "" {
			return fmt.Errorf("jwtx: key %d has no kid", i)
		}
		if _, dup := next.pub[j.Kid]; dup {
			return fmt.Errorf("jwtx: duplicate kid %q", j.Kid)
		}
		key, err := publicKeyFromJWK(j)
		if err != nil {
			return fmt.Errorf("jwtx: kid %q: %w", j.Kid, err)
		}
		next.pub[j.Kid] = key
		next.jwks.Keys = append(next.jwks.Keys, j)
	}

	k.writeMu.Lock()
	defer k.writeMu.Unlock()
	k.cur.Store(next)
	return nil
}

// Get returns the public key for kid.
func (k *KeySet) Get(kid string) (any, error) {
	if pk, ok := k.cur.Load().pub[kid]; ok {
		return pk, nil
	}
	return nil, ErrNoKey
}

// JWKS returns the loaded keys.
func (k *KeySet) JWKS() JWKS { return k.cur.Load().jwks }

// IsReady reports whether at least one key is loaded.
func (k *KeySet) IsReady() bool { return len(k.cur.Load().pub) > 0 }

func decodeB64(field, s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil || len(b) == 0 {
		return nil, fmt.Errorf("jwtx: bad %s", field)
	}
	return b, nil
}

func publicKeyFromJWK(j JWK) (any, error) {
	switch j.Kty {
	case "OKP":
		if j.Crv != "Ed25519" {
			return nil, fmt.Errorf("jwtx: unsupported OKP curve %q", j.Crv)
		}
		x, err := decodeB64("x", j.X)
		if err != nil {
			return nil, err
		}
		if len(x) != ed25519.PublicKeySize {
			return nil, errors.New("jwtx: invalid Ed25519 public key size")
		}
		return ed25519.PublicKey(x), nil

	case "EC":
		if j.Crv != "P-256" {
			return nil, fmt.Errorf("jwtx: unsupported EC curve %q", j.Crv)
		}
		x, err := decodeB64("x", j.X)
		if err != nil {
			return nil, err
		}
		y, err := decodeB64("y", j.Y)
		if err != nil {
			return nil, err
		}
		if len(x) > 32 || len(y) > 32 {
			return nil, errors.New("jwtx: EC coordinate too long")
		}
		// Uncompressed point 0x04||X||Y; ecdh rejects points off the curve.
		point := make([]byte, 65)
		point[0] = 4
		copy(point[33-len(x):33], x)
		copy(point[65-len(y):], y)
		if _, err := ecdh.P256().NewPublicKey(point); err != nil {
			return nil, fmt.Errorf("jwtx: invalid P-256 point: %w", err)
		}
		return &ecdsa.PublicKey{
			Curve: elliptic.P256(),
			X:     new(big.Int).SetBytes(x),
			Y:     new(big.Int).SetBytes(y),
		}, nil

	case "RSA":
		n, err := decodeB64("n", j.N)
		if err != nil {
			return nil, err
		}
		e, err := decodeB64("e", j.E)
		if err != nil {
			return nil, err
		}
		if len(e) > 4 {
			return nil, errors.New("jwtx: RSA exponent too large")
		}
		exp := int(new(big.Int).SetBytes(e).Int64())
		if exp < 3 || exp%2 == 0 {
			return nil, errors.New("jwtx: invalid RSA exponent")
		}
		if len(n)*8 < 2048 {
			return nil, errors.New("jwtx: RSA modulus shorter than 2048 bits")
		}
		return &rsa.PublicKey{N: new(big.Int).SetBytes(n), E: exp}, nil

	default:
		return nil, fmt.Errorf("jwtx: unsupported kty %q", j.Kty)
	}
}
