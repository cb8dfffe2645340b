package wallet

import (
	"time"

	"github.com/uptrace/bun"
)

// CredentialDao is a data access object that maps directly to the 'wallet_credentials' table in PostgreSQL.
type CredentialDao struct {
	bun.BaseModel       `bun:"table:wallet_credentials,alias:wc"`
	ID                  int64     `bun:"id,pk,autoincrement"`
	Label               string    `bun:"label,unique,notnull,type:varchar(255)"`
	Type                string    `bun:"type,notnull,type:varchar(32)"`
	Version             int       `bun:"version,notnull"`
	MSPID               string    `bun:"msp_id,notnull,type:varchar(255)"`
	Certificate         string    `bun:"certificate,notnull,type:text"`
	PrivateKeyEncrypted string    `bun:"private_key_encrypted,notnull,type:text"`
	CreatedAt           time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt           time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
