package db

import (
	"context"
	"database/sql"
	"time"

	"todo-api/internal/domain/model"
)

const healthPingTimeout = 2 * time.Second

type SQLHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLHealthDBGateway)(nil)

func NewSQLHealthDBGateway(db *sql.DB) *SQLHealthDBGateway {
	return &SQLHealthDBGateway{DB: db}
}

func (gateway *SQLHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := gateway.DB.PingContext(ctx); err != nil {
		return model.ComponentDown(err)
	}
	return model.ComponentUp()
}
