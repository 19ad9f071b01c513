package postgresql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/lumina-hotels/hris-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
)

type stubTx struct {
	pgx.Tx
}

func TestGetQuerier_ReturnsTransactionFromContext(t *testing.T) {
	db := &database.DB{}
	tx := stubTx{}
	ctx := context.WithValue(context.Background(), "tx", tx)

	q := GetQuerier(ctx, db)

	assert.Equal(t, tx, q)
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	db := &database.DB{}

	q := GetQuerier(context.Background(), db)

	assert.Equal(t, db.Pool, q)
}
