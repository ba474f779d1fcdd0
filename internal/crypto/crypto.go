// Package crypto seals exported history files under a passphrase.
package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// WipeBytes overwrites a byte slice with zeroes. Call this to remove key
// material from memory as soon as it is no longer needed.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

type KDFParams struct {
	Salt     []byte
	Time     uint32
	MemoryKB uint32
	Threads  uint8
}

const (
	RecommendedTime    uint32 = 3
	RecommendedMemory  uint32 = 64 * 1024 // 64 MB in KiB
	RecommendedThreads uint8  = 4

	saltLen = 16
	keyLen  = 32
)

// magic prefixes every sealed export.
var magic = []byte("RPGSEAL1")

var (
	ErrNotSealed     = errors.New("not a sealed rpg export")
	ErrWrongPassword = errors.New("wrong passphrase or corrupted export")
	ErrEmptyPassword = errors.New("passphrase must not be empty")
)

// DefaultKDFParams returns the recommended Argon2id parameters with a
// fresh random salt.
func DefaultKDFParams() (KDFParams, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return KDFParams{}, fmt.Errorf("generating salt: %w", err)
	}
	return KDFParams{
		Salt:     salt,
		Time:     RecommendedTime,
		MemoryKB: RecommendedMemory,
		Threads:  RecommendedThreads,
	}, nil
}

func DeriveKey(password string, p KDFParams) []byte {
	return argon2.IDKey([]byte(password), p.Salt, p.Time, p.MemoryKB, p.Threads, keyLen)
}

func EncryptAES256GCM(plaintext, key []byte) ([]byte, error) {
	if len(key) != keyLen {
		return nil, errors.New("key must be 32 bytes for AES-256")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	// Prepend nonce to ciphertext
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func DecryptAES256GCM(ciphertext, key []byte) ([]byte, error) {
	if len(key) != keyLen {
		return nil, errors.New("key must be 32 bytes for AES-256")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}
	nonce, rest := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, rest, nil)
}

// Seal encrypts plaintext under a key derived from passphrase with p.
// The output layout is
//
//	magic | time u32 | memory u32 | threads u8 | salt | nonce | ciphertext
//
// so Open needs nothing but the passphrase.
func Seal(passphrase string, plaintext []byte, p KDFParams) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassword
	}
	if len(p.Salt) != saltLen {
		return nil, fmt.Errorf("salt must be %d bytes", saltLen)
	}
	key := DeriveKey(passphrase, p)
	defer WipeBytes(key)

	enc, err := EncryptAES256GCM(plaintext, key)
	if err != nil {
		return nil, fmt.Errorf("encrypting export: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(magic)
	_ = binary.Write(&buf, binary.BigEndian, p.Time)
	_ = binary.Write(&buf, binary.BigEndian, p.MemoryKB)
	buf.WriteByte(p.Threads)
	buf.Write(p.Salt)
	buf.Write(enc)
	return buf.Bytes(), nil
}

// SealExport seals with the recommended parameters.
func SealExport(passphrase string, plaintext []byte) ([]byte, error) {
	p, err := DefaultKDFParams()
	if err != nil {
		return nil, err
	}
	return Seal(passphrase, plaintext, p)
}

// OpenExport reverses Seal.
func OpenExport(passphrase string, sealed []byte) ([]byte, error) {
	const headerLen = 4 + 4 + 1 + saltLen
	if !bytes.HasPrefix(sealed, magic) || len(sealed) < len(magic)+headerLen {
		return nil, ErrNotSealed
	}
	rest := sealed[len(magic):]
	p := KDFParams{
		Time:     binary.BigEndian.Uint32(rest[0:4]),
		MemoryKB: binary.BigEndian.Uint32(rest[4:8]),
		Threads:  rest[8],
		Salt:     rest[9 : 9+saltLen],
	}
	if p.Time == 0 || p.Threads == 0 {
		return nil, ErrNotSealed
	}
	key := DeriveKey(passphrase, p)
	defer WipeBytes(key)

	plaintext, err := DecryptAES256GCM(rest[headerLen:], key)
	if err != nil {
		return nil, ErrWrongPassword
	}
	return plaintext, nil
}

// IsSealed reports whether data starts with the sealed export header.
func IsSealed(data []byte) bool {
	return bytes.HasPrefix(data, magic)
}
