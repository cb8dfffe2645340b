package walletdb

import (
	"context"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/fabric-notary-gateway/pkg/pgutil/migrations"
	"github.com/chainsafe/fabric-notary-gateway/pkg/wallet"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateSchema(ctx, db, &wallet.CredentialDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &wallet.CredentialDao{}, "msp_id")
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &wallet.CredentialDao{})
	})
}
