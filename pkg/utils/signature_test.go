package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSignature_KnownVector(t *testing.T) {
	sig := GenerateSignature("20240815021122", "FAKEGOOGLE", "FG-00001", 30000, "RkFLRVBBU1NXT1JEMTIzNA==")

	assert.Equal(t, "MTRjYzAyNmM4ZDNlZWVlMjM1N2MwZGNlYTk3YTEzMGMyOTQ5MDE3MGY5YjZjNTdhNTY1ZWY4MmY5Nzk0MTI1Ng==", sig)
}

func TestGenerateSignature_Deterministic(t *testing.T) {
	a := GenerateSignature("20240815021122", "FAKEGOOGLE", "FG-00001", 30000, "RkFLRVBBU1NXT1JEMTIzNA==")
	b := GenerateSignature("20240815021122", "FAKEGOOGLE", "FG-00001", 30000, "RkFLRVBBU1NXT1JEMTIzNA==")
	assert.Equal(t, a, b)
}

func TestGenerateSignature_EveryFieldMatters(t *testing.T) {
	base := GenerateSignature("20240815021122", "FAKEGOOGLE", "FG-00001", 30000, "RkFLRVBBU1NXT1JEMTIzNA==")

	variants := map[string]string{
		"timestamp": GenerateSignature("20240815021123", "FAKEGOOGLE", "FG-00001", 30000, "RkFLRVBBU1NXT1JEMTIzNA=="),
		"key":       GenerateSignature("20240815021122", "FAKEPEOPLE", "FG-00001", 30000, "RkFLRVBBU1NXT1JEMTIzNA=="),
		"ref":       GenerateSignature("20240815021122", "FAKEGOOGLE", "FG-00002", 30000, "RkFLRVBBU1NXT1JEMTIzNA=="),
		"amount":    GenerateSignature("20240815021122", "FAKEGOOGLE", "FG-00001", 30001, "RkFLRVBBU1NXT1JEMTIzNA=="),
		"password":  GenerateSignature("20240815021122", "FAKEGOOGLE", "FG-00001", 30000, "RkFLRVBBU1NXT1JEMTIzNQ=="),
	}

	for field, sig := range variants {
		assert.NotEqual(t, base, sig, field)
	}
}
