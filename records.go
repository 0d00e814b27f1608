package sealedpii

import (
	"fmt"
	"strconv"
	"time"
)

// timestampLayout matches JavaScript's Date.prototype.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// BankInfo is the bank account data supplied during seller onboarding.
type BankInfo struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	RoutingNumber string `json:"routingNumber"`
	AccountType   string `json:"accountType"`
}

// BankInfoRecord is the sanitized, timestamped record stored inside a bank
// info envelope.
type BankInfoRecord struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"` // digits only
	RoutingNumber string `json:"routingNumber"` // digits only
	AccountType   string `json:"accountType"`
	EncryptedAt   string `json:"encryptedAt"`
	Checksum      string `json:"checksum"`
}

// LicenseRecord is the record stored inside a license envelope.
type LicenseRecord struct {
	Number      string `json:"number"`
	State       string `json:"state"`
	EncryptedAt string `json:"encryptedAt"`
	Checksum    string `json:"checksum"`
}

// EncryptBankInfo sanitizes bank details, stamps them and encrypts the record.
//
// Account and routing numbers are reduced to digits; the bank name is trimmed.
// The checksum covers bank name, account type and the encryption instant
// only; it does not protect the account or routing numbers.
func (c *Cipher) EncryptBankInfo(info BankInfo) (Envelope, error) {
	now := c.config.now().UTC()
	bankName := NormalizeTrim(info.BankName)

	record := BankInfoRecord{
		BankName:      bankName,
		AccountNumber: NormalizeDigits(info.AccountNumber),
		RoutingNumber: NormalizeDigits(info.RoutingNumber),
		AccountType:   info.AccountType,
		EncryptedAt:   now.Format(timestampLayout),
		Checksum:      bankChecksum(bankName, info.AccountType, now.UnixMilli()),
	}
	return c.Encrypt(record)
}

// DecryptBankInfo decrypts a bank info envelope.
// Returns ErrCorruptData if the record is missing or lacks the account or
// routing number.
func (c *Cipher) DecryptBankInfo(e Envelope) (*BankInfoRecord, error) {
	d, err := c.Decrypt(e)
	if err != nil {
		return nil, err
	}
	if d.Kind() != KindJSON {
		return nil, fmt.Errorf("%w: bank info is %s", ErrCorruptData, d.Kind())
	}

	var record BankInfoRecord
	if err := d.Unmarshal(&record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	if record.AccountNumber == "" || record.RoutingNumber == "" {
		return nil, fmt.Errorf("%w: missing account or routing number", ErrCorruptData)
	}
	return &record, nil
}

// EncryptLicenseNumber encrypts a professional license number and its
// issuing state, both uppercased and trimmed.
func (c *Cipher) EncryptLicenseNumber(number, state string) (Envelope, error) {
	number = NormalizeUpperTrim(number)
	state = NormalizeUpperTrim(state)

	record := LicenseRecord{
		Number:      number,
		State:       state,
		EncryptedAt: c.config.now().UTC().Format(timestampLayout),
		Checksum:    licenseChecksum(number, state),
	}
	return c.Encrypt(record)
}

// DecryptLicenseNumber decrypts a license envelope.
// Returns ErrCorruptData if the record is missing or has no number.
func (c *Cipher) DecryptLicenseNumber(e Envelope) (*LicenseRecord, error) {
	d, err := c.Decrypt(e)
	if err != nil {
		return nil, err
	}
	if d.Kind() != KindJSON {
		return nil, fmt.Errorf("%w: license is %s", ErrCorruptData, d.Kind())
	}

	var record LicenseRecord
	if err := d.Unmarshal(&record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	if record.Number == "" {
		return nil, fmt.Errorf("%w: missing license number", ErrCorruptData)
	}
	return &record, nil
}

// ComputeChecksum recomputes the checksum from the record's own fields.
// The encryption instant is recovered from EncryptedAt.
func (r *BankInfoRecord) ComputeChecksum() (string, error) {
	at, err := time.Parse(time.RFC3339Nano, r.EncryptedAt)
	if err != nil {
		return "", fmt.Errorf("%w: encryptedAt: %w", ErrCorruptData, err)
	}
	return bankChecksum(r.BankName, r.AccountType, at.UnixMilli()), nil
}

// ComputeChecksum recomputes the checksum from the record's own fields.
func (r *LicenseRecord) ComputeChecksum() string {
	return licenseChecksum(r.Number, r.State)
}

func bankChecksum(bankName, accountType string, millis int64) string {
	return sha256Hex(bankName + "-" + accountType + "-" + strconv.FormatInt(millis, 10))
}

func licenseChecksum(number, state string) string {
	return sha256Hex(number + "-" + state)
}
