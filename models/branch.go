package models

import (
	"context"
	"time"

	"github.com/castellodata/payroll_backend/config"
	"github.com/castellodata/payroll_backend/utils"
)

type Branch struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null;unique" json:"name" binding:"required"`
	City      string    `gorm:"size:100" json:"city"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewBranch struct {
	Name string `json:"name" binding:"required"`
	City string `json:"city"`
}

func CreateBranch(ctx context.Context, input *NewBranch) (*Branch, error) {
	if err := utils.ValidateUnique[Branch](ctx, "name", input.Name, 0); err != nil {
		return nil, err
	}

	db := config.GetDB()
	branch := Branch{
		Name:     input.Name,
		City:     input.City,
		IsActive: utils.NewTrue(),
	}
	if err := db.WithContext(ctx).Create(&branch).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func GetBranch(ctx context.Context, id int) (*Branch, error) {
	return utils.FetchModel[Branch](ctx, id)
}

func ListBranches(ctx context.Context) ([]*Branch, error) {
	db := config.GetDB()
	var branches []*Branch
	if err := db.WithContext(ctx).Order("name ASC").Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}
