package project_dto

import (
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	"github.com/go-playground/validator/v10"
)

type CreateProjectRequest struct {
	Name           string     `json:"name" validate:"required,min=1,max=255"`
	Status         *string    `json:"status,omitempty" validate:"omitempty,projectStatus"`
	Priority       string     `json:"priority" validate:"required,projectPriority"`
	StartDate      time.Time  `json:"start_date" validate:"required"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	EstimatedHours float64    `json:"estimated_hours" validate:"omitempty,gte=0"`
}

type UpdateProjectRequest struct {
	Name           *string    `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Status         *string    `json:"status,omitempty" validate:"omitempty,projectStatus"`
	Priority       *string    `json:"priority,omitempty" validate:"omitempty,projectPriority"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty" validate:"omitempty,gte=0"`
}

type ParamProjectID struct {
	ID string `params:"project_id" validate:"required,uuid"`
}

type ListProjectFilter struct {
	Status   *string `query:"status,omitempty" validate:"omitempty,projectStatus"`
	Priority *string `query:"priority,omitempty" validate:"omitempty,projectPriority"`
	Limit    int     `query:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Page     int     `query:"page,omitempty" validate:"omitempty,min=1"`
}

func IsValidProjectStatus(fl validator.FieldLevel) bool {
	return entity.ProjectStatus(fl.Field().String()).IsValid()
}

func IsValidProjectPriority(fl validator.FieldLevel) bool {
	return entity.ProjectPriority(fl.Field().String()).IsValid()
}
