package cypherdsl

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/text/unicode/norm"
)

// DomainStatement is the domain prefix for statement content hashing.
// Version suffix enables future algorithm migration.
const DomainStatement = "cypherdsl/statement/v1"

// ContentHash computes a content-addressed identity for a statement.
//
// The hash is taken over the NFC-normalized rendered text with the default
// dialect version, so two statements that render identically share an
// identity regardless of how they were constructed.
//
// Format: SHA256(domain + 0x00 + NFC(rendered))
// The null byte separator prevents domain/data boundary ambiguity.
func ContentHash(s *Statement) string {
	rendered := norm.NFC.String(s.String())
	h := sha256.New()
	h.Write([]byte(DomainStatement))
	h.Write([]byte{0x00})
	h.Write([]byte(rendered))
	return hex.EncodeToString(h.Sum(nil))
}
