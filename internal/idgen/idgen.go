// Package idgen allocates deposit identifiers.
package idgen

//go:generate mockgen -source=idgen.go -destination=mock_idgen.go -package=idgen

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

type Generator interface {
	Next(ctx context.Context, owner string, createdAt int64) (string, error)
}

// Sequence hands out strictly increasing nonces that survive restarts.
type Sequence interface {
	NextNonce(ctx context.Context) (int64, error)
}

// KeccakGenerator renders ids as 0x-prefixed 16 byte values: eight bytes of
// keccak256(owner, createdAt, nonce) followed by the big endian nonce. The
// nonce suffix makes ids unique without relying on the hash.
type KeccakGenerator struct {
	seq Sequence
}

func NewKeccakGenerator(seq Sequence) *KeccakGenerator {
	return &KeccakGenerator{seq: seq}
}

func (g *KeccakGenerator) Next(ctx context.Context, owner string, createdAt int64) (string, error) {
	nonce, err := g.seq.NextNonce(ctx)
	if err != nil {
		return "", fmt.Errorf("can't allocate deposit nonce: %w", err)
	}
	return Derive(owner, createdAt, nonce), nil
}

func Derive(owner string, createdAt, nonce int64) string {
	var buf [8]byte

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(owner))
	binary.BigEndian.PutUint64(buf[:], uint64(createdAt))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(nonce))
	h.Write(buf[:])
	sum := h.Sum(nil)

	id := make([]byte, 0, 16)
	id = append(id, sum[:8]...)
	id = append(id, buf[:]...)
	return "0x" + hex.EncodeToString(id)
}
