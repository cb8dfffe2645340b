package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
	"github.com/chainsafe/fabric-notary-gateway/pkg/keys"
)

type pgStore struct {
	db     *bun.DB
	cipher keys.KeyCipher
}

// NewPostgresStore creates a PostgreSQL wallet. Private keys are encrypted with cipher before
// they reach the database.
func NewPostgresStore(db *bun.DB, cipher keys.KeyCipher) *pgStore {
	return &pgStore{db: db, cipher: cipher}
}

func (s *pgStore) Get(ctx context.Context, label string) (*identity.Credential, error) {
	dao := new(CredentialDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("label = ?", label).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	key, err := s.cipher.Decrypt(label, dao.PrivateKeyEncrypted)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt credential %s: %w", label, err)
	}

	return &identity.Credential{
		Version:     dao.Version,
		Type:        dao.Type,
		MSPID:       dao.MSPID,
		Certificate: dao.Certificate,
		PrivateKey:  string(key),
	}, nil
}

func (s *pgStore) Put(ctx context.Context, label string, cred *identity.Credential) error {
	if err := cred.Validate(); err != nil {
		return err
	}

	encrypted, err := s.cipher.Encrypt(label, []byte(cred.PrivateKey))
	if err != nil {
		return fmt.Errorf("failed to encrypt credential %s: %w", label, err)
	}

	dao := &CredentialDao{
		Label:               label,
		Type:                cred.Type,
		Version:             cred.Version,
		MSPID:               cred.MSPID,
		Certificate:         cred.Certificate,
		PrivateKeyEncrypted: encrypted,
		UpdatedAt:           time.Now(),
	}

	_, err = s.db.NewInsert().
		Model(dao).
		On("CONFLICT (label) DO UPDATE").
		Set("type = EXCLUDED.type").
		Set("version = EXCLUDED.version").
		Set("msp_id = EXCLUDED.msp_id").
		Set("certificate = EXCLUDED.certificate").
		Set("private_key_encrypted = EXCLUDED.private_key_encrypted").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

func (s *pgStore) Exists(ctx context.Context, label string) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*CredentialDao)(nil)).
		Where("label = ?", label).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check credential exists: %w", err)
	}
	return exists, nil
}

func (s *pgStore) Remove(ctx context.Context, label string) error {
	_, err := s.db.NewDelete().
		Model((*CredentialDao)(nil)).
		Where("label = ?", label).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}

func (s *pgStore) List(ctx context.Context) ([]string, error) {
	var labels []string
	err := s.db.NewSelect().
		Model((*CredentialDao)(nil)).
		Column("label").
		Order("label ASC").
		Scan(ctx, &labels)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	return labels, nil
}
