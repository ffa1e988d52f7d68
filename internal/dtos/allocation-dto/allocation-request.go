package allocation_dto

import (
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/go-playground/validator/v10"
)

type CreateAllocationRequest struct {
	ResourceID        string             `json:"resource_id" validate:"required,uuid"`
	ProjectID         string             `json:"project_id" validate:"required,uuid"`
	AllocatedHours    float64            `json:"allocated_hours" validate:"required,gt=0,max=168"`
	WeeklyAllocations map[string]float64 `json:"weekly_allocations,omitempty"`
	StartDate         time.Time          `json:"start_date" validate:"required"`
	EndDate           *time.Time         `json:"end_date,omitempty"`
	Role              string             `json:"role" validate:"required,min=1,max=128"`
}

type UpdateAllocationRequest struct {
	AllocatedHours    *float64           `json:"allocated_hours,omitempty" validate:"omitempty,gt=0,max=168"`
	WeeklyAllocations map[string]float64 `json:"weekly_allocations,omitempty"`
	StartDate         *time.Time         `json:"start_date,omitempty"`
	EndDate           *time.Time         `json:"end_date,omitempty"`
	Status            *string            `json:"status,omitempty" validate:"omitempty,allocationStatus"`
}

type SetWeekOverrideRequest struct {
	Hours float64 `json:"hours" validate:"gte=0,max=168"`
}

type ParamAllocationID struct {
	ID string `params:"allocation_id" validate:"required,uuid"`
}

type ParamAllocationWeek struct {
	ID   string `params:"allocation_id" validate:"required,uuid"`
	Week string `params:"week" validate:"required,isoWeek"`
}

type ListAllocationFilter struct {
	Week *string `query:"week,omitempty" validate:"omitempty,isoWeek"`
}

func IsValidAllocationStatus(fl validator.FieldLevel) bool {
	return entity.AllocationStatus(fl.Field().String()).IsValid()
}

func IsValidISOWeek(fl validator.FieldLevel) bool {
	return utils.IsValidISOWeek(fl.Field().String())
}
