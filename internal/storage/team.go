package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Address kinds accepted for team payment addresses.
const (
	AddressUPI  = "upi"
	AddressLTC  = "ltc"
	AddressUSDT = "usdt"
)

func IsAddressKind(kind string) bool {
	switch strings.ToLower(kind) {
	case AddressUPI, AddressLTC, AddressUSDT:
		return true
	default:
		return false
	}
}

func (s *Store) SetAddress(ctx context.Context, userID, kind, address string) error {
	kind = strings.ToLower(kind)
	if !IsAddressKind(kind) {
		return fmt.Errorf("unknown address kind %q", kind)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO team_addresses (user_id, kind, address, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, kind) DO UPDATE SET
			address = excluded.address,
			updated_at = excluded.updated_at
	`, userID, kind, address, time.Now().Unix())
	return err
}

// GetAddress returns the saved address, or "" when none is stored.
func (s *Store) GetAddress(ctx context.Context, userID, kind string) (string, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT address FROM team_addresses WHERE user_id = ? AND kind = ?
	`, userID, strings.ToLower(kind))

	var address string
	if err := row.Scan(&address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return address, nil
}

func (s *Store) ListAddresses(ctx context.Context, userID string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, address FROM team_addresses WHERE user_id = ? ORDER BY kind
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make(map[string]string)
	for rows.Next() {
		var kind, address string
		if err := rows.Scan(&kind, &address); err != nil {
			return nil, err
		}
		addresses[kind] = address
	}
	return addresses, rows.Err()
}
