package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"todo-api/internal/domain/entity"
)

// SQLTodoGateway stores todo items through database/sql. Queries are written with ? placeholders
// and rewritten to $n for the postgres driver.
type SQLTodoGateway struct {
	DB      *sql.DB
	queries todoQueries
}

type todoQueries struct {
	insert   string
	update   string
	findByID string
	findAll  string
	exists   string
	delete   string
}

var _ TodoGateway = (*SQLTodoGateway)(nil)

func NewSQLTodoGateway(db *sql.DB, driverName string) *SQLTodoGateway {
	bind := func(query string) string { return rebind(driverName, query) }
	return &SQLTodoGateway{
		DB: db,
		queries: todoQueries{
			insert:   bind(`INSERT INTO todos (description, completed) VALUES (?, ?) RETURNING id`),
			update:   bind(`UPDATE todos SET description = ?, completed = ? WHERE id = ?`),
			findByID: bind(`SELECT id, description, completed FROM todos WHERE id = ?`),
			findAll:  `SELECT id, description, completed FROM todos ORDER BY id`,
			exists:   bind(`SELECT EXISTS(SELECT 1 FROM todos WHERE id = ?)`),
			delete:   bind(`DELETE FROM todos WHERE id = ?`),
		},
	}
}

func (gateway *SQLTodoGateway) Save(ctx context.Context, item entity.TodoItem) (*entity.TodoItem, error) {
	if item.ID == 0 {
		err := gateway.DB.QueryRowContext(ctx, gateway.queries.insert, item.Description, item.Completed).Scan(&item.ID)
		if err != nil {
			return nil, err
		}
		return &item, nil
	}

	result, err := gateway.DB.ExecContext(ctx, gateway.queries.update, item.Description, item.Completed, item.ID)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("update todo item %d: %w", item.ID, sql.ErrNoRows)
	}
	return &item, nil
}

func (gateway *SQLTodoGateway) FindByID(ctx context.Context, id int64) (*entity.TodoItem, error) {
	var item entity.TodoItem
	err := gateway.DB.QueryRowContext(ctx, gateway.queries.findByID, id).Scan(&item.ID, &item.Description, &item.Completed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (gateway *SQLTodoGateway) FindAll(ctx context.Context) (items []entity.TodoItem, err error) {
	rows, err := gateway.DB.QueryContext(ctx, gateway.queries.findAll)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	items = make([]entity.TodoItem, 0)
	for rows.Next() {
		var item entity.TodoItem
		if err := rows.Scan(&item.ID, &item.Description, &item.Completed); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (gateway *SQLTodoGateway) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := gateway.DB.QueryRowContext(ctx, gateway.queries.exists, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (gateway *SQLTodoGateway) DeleteByID(ctx context.Context, id int64) error {
	_, err := gateway.DB.ExecContext(ctx, gateway.queries.delete, id)
	return err
}

// rebind rewrites ? placeholders to $1, $2... for postgres
func rebind(driverName string, query string) string {
	if driverName != "postgres" {
		return query
	}

	var builder strings.Builder
	position := 0
	for _, r := range query {
		if r == '?' {
			position++
			builder.WriteByte('$')
			builder.WriteString(strconv.Itoa(position))
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
