package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
)

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

// Save inserts when item.ID is zero, otherwise updates description and completed of that row.
// Updating an absent row fails with sql.ErrNoRows instead of recreating it.
func (gateway *GormTodoGateway) Save(ctx context.Context, item entity.TodoItem) (*entity.TodoItem, error) {
	db := gateway.DB.WithContext(ctx)
	if item.ID == 0 {
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}

	result := db.Model(&entity.TodoItem{ID: item.ID}).Updates(map[string]any{
		"description": item.Description,
		"completed":   item.Completed,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("update todo item %d: %w", item.ID, sql.ErrNoRows)
	}
	return &item, nil
}

func (gateway *GormTodoGateway) FindByID(ctx context.Context, id int64) (*entity.TodoItem, error) {
	var item entity.TodoItem
	err := gateway.DB.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (gateway *GormTodoGateway) FindAll(ctx context.Context) ([]entity.TodoItem, error) {
	items := make([]entity.TodoItem, 0)
	if err := gateway.DB.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (gateway *GormTodoGateway) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := gateway.DB.WithContext(ctx).Model(&entity.TodoItem{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (gateway *GormTodoGateway) DeleteByID(ctx context.Context, id int64) error {
	return gateway.DB.WithContext(ctx).Delete(&entity.TodoItem{}, id).Error
}
