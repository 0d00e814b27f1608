package sealedpii

import "fmt"

// maxParamNumber is the PostgreSQL maximum parameter number.
const maxParamNumber = 65535

// isValidColumnName checks if a column name is safe for SQL interpolation.
// Must start with letter or underscore, followed by alphanumeric/underscore.
func isValidColumnName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			// First character: letter or underscore only (PostgreSQL requirement)
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_') {
				return false
			}
		} else {
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || r == '_') {
				return false
			}
		}
	}
	return true
}

// SearchCondition holds a SQL WHERE clause fragment and its arguments
// for an equality lookup on a hash column.
type SearchCondition struct {
	SQL  string // SQL fragment like "email_hash = $1"
	Args []any  // The hash value(s)
}

// HashCondition builds "<column> = $<paramOffset>" for a precomputed hash.
// An empty hash yields "FALSE" (NULL values can't match).
//
// Panics if column is not a plain identifier or paramOffset is out of range;
// both are programmer errors.
func HashCondition(column, hash string, paramOffset int) *SearchCondition {
	if !isValidColumnName(column) {
		panic("sealedpii: invalid column name (must start with letter/underscore, contain only alphanumeric/underscore)")
	}
	if paramOffset < 1 || paramOffset > maxParamNumber {
		panic(fmt.Sprintf("sealedpii: invalid paramOffset (must be 1-%d)", maxParamNumber))
	}

	if hash == "" {
		return &SearchCondition{SQL: "FALSE"}
	}
	return &SearchCondition{
		SQL:  fmt.Sprintf("%s = $%d", column, paramOffset),
		Args: []any{hash},
	}
}

// EmailSearchCondition hashes email with EmailHash and builds a condition on column.
//
// Example:
//
//	cond, err := c.EmailSearchCondition("email_hash", "Alice@Example.COM", 1)
//	query := "SELECT id FROM sellers WHERE " + cond.SQL
//	rows, _ := db.Query(query, cond.Args...)
func (c *Cipher) EmailSearchCondition(column, email string, paramOffset int) (*SearchCondition, error) {
	if NormalizeEmail(email) == "" {
		return HashCondition(column, "", paramOffset), nil
	}
	h, err := c.EmailHash(email)
	if err != nil {
		return nil, err
	}
	return HashCondition(column, h, paramOffset), nil
}

// LicenseSearchCondition hashes the license with LicenseHash and builds a
// condition on column.
func (c *Cipher) LicenseSearchCondition(column, number, state string, paramOffset int) (*SearchCondition, error) {
	if number == "" {
		return HashCondition(column, "", paramOffset), nil
	}
	h, err := c.LicenseHash(number, state)
	if err != nil {
		return nil, err
	}
	return HashCondition(column, h, paramOffset), nil
}
