package sealedpii_test

import (
	"fmt"

	"github.com/ai8future/sealedpii"
)

func Example() {
	// In production use sealedpii.NewEnvKeyProvider() instead.
	provider := sealedpii.NewStaticKeyProvider("0123456789abcdef0123456789abcdef")

	c, err := sealedpii.New(provider)
	if err != nil {
		panic(err)
	}

	envelope, err := c.Encrypt("Hello, World!")
	if err != nil {
		panic(err)
	}

	d, err := c.Decrypt(envelope)
	if err != nil {
		panic(err)
	}

	fmt.Println(d.Kind(), d.Text())
	// Output: text Hello, World!
}

func Example_searchableHash() {
	c, _ := sealedpii.New(sealedpii.NewStaticKeyProvider("0123456789abcdef0123456789abcdef"))

	// Case and surrounding whitespace do not change the lookup key.
	h1, _ := c.EmailHash(" Alice@Example.COM ")
	h2, _ := c.EmailHash("alice@example.com")
	fmt.Println("Same hash:", h1 == h2)
	fmt.Println("Length:", len(h1))

	cond, _ := c.EmailSearchCondition("email_hash", "alice@example.com", 1)
	fmt.Println("SQL:", cond.SQL)

	// Output:
	// Same hash: true
	// Length: 64
	// SQL: email_hash = $1
}

func Example_bankInfo() {
	c, _ := sealedpii.New(sealedpii.NewStaticKeyProvider("0123456789abcdef0123456789abcdef"))

	envelope, _ := c.EncryptBankInfo(sealedpii.BankInfo{
		BankName:      "Banco X",
		AccountNumber: "123-456",
		RoutingNumber: "987 654",
		AccountType:   "checking",
	})

	record, _ := c.DecryptBankInfo(envelope)
	fmt.Println(record.AccountNumber, record.RoutingNumber, record.AccountType)

	expected, _ := record.ComputeChecksum()
	fmt.Println("Intact:", c.VerifyIntegrity(envelope, expected))

	// Output:
	// 123456 987654 checking
	// Intact: true
}

func Example_fields() {
	c, _ := sealedpii.New(sealedpii.NewStaticKeyProvider("0123456789abcdef0123456789abcdef"))

	seller := map[string]any{"name": "Jo", "taxId": "12-3456789"}
	stored, _ := c.EncryptFields(seller, []string{"taxId"})

	stored["taxId"] = "corrupted"
	loaded, _ := c.DecryptFields(stored, []string{"taxId"}, sealedpii.WithPolicy(sealedpii.BestEffort))
	fmt.Println(loaded["name"], loaded["taxId"])

	_, err := c.DecryptFields(stored, []string{"taxId"}, sealedpii.WithPolicy(sealedpii.FailFast))
	fmt.Println(err != nil)

	// Output:
	// Jo <nil>
	// true
}
