package sealedpii

import (
	"strings"
	"testing"
)

var benchCipher *Cipher

func init() {
	benchCipher, _ = New(NewStaticKeyProvider(testSecret))
}

func BenchmarkEncrypt_100B(b *testing.B) {
	data := strings.Repeat("x", 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = benchCipher.Encrypt(data)
	}
}

func BenchmarkEncrypt_10KB(b *testing.B) {
	data := strings.Repeat("x", 10*1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = benchCipher.Encrypt(data)
	}
}

func BenchmarkDecrypt_100B(b *testing.B) {
	e, _ := benchCipher.Encrypt(strings.Repeat("x", 100))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = benchCipher.Decrypt(e)
	}
}

func BenchmarkDecrypt_JSONObject(b *testing.B) {
	e, _ := benchCipher.Encrypt(map[string]any{"bankName": "Banco X", "accountNumber": "123456"})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = benchCipher.Decrypt(e)
	}
}

func BenchmarkEmailHash(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = benchCipher.EmailHash("Alice@Example.com")
	}
}

func BenchmarkEncryptBankInfo(b *testing.B) {
	info := BankInfo{BankName: "Banco X", AccountNumber: "123-456", RoutingNumber: "987 654", AccountType: "checking"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = benchCipher.EncryptBankInfo(info)
	}
}

func BenchmarkDecryptFields(b *testing.B) {
	fields := []string{"email", "taxId", "phone"}
	enc, _ := benchCipher.EncryptFields(map[string]any{
		"email": "a@b.com",
		"taxId": "12-3456789",
		"phone": "555-0100",
		"name":  "Jo",
	}, fields)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = benchCipher.DecryptFields(enc, fields)
	}
}
