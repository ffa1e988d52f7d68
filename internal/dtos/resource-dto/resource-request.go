package resource_dto

type CreateResourceRequest struct {
	Name                string  `json:"name" validate:"required,min=1,max=255"`
	Email               string  `json:"email" validate:"required,email"`
	Department          string  `json:"department" validate:"required,min=1,max=128"`
	Role                string  `json:"role" validate:"required,min=1,max=128"`
	WeeklyCapacityHours float64 `json:"weekly_capacity_hours" validate:"required,gt=0,max=168"`
}

type UpdateResourceRequest struct {
	Name                *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Department          *string  `json:"department,omitempty" validate:"omitempty,min=1,max=128"`
	Role                *string  `json:"role,omitempty" validate:"omitempty,min=1,max=128"`
	WeeklyCapacityHours *float64 `json:"weekly_capacity_hours,omitempty" validate:"omitempty,gt=0,max=168"`
	IsActive            *bool    `json:"is_active,omitempty"`
}

type ParamResourceID struct {
	ID string `params:"resource_id" validate:"required,uuid"`
}

type ListResourceFilter struct {
	Department *string `query:"department,omitempty" validate:"omitempty,min=1,max=128"`
	Active     *bool   `query:"active,omitempty"`
	Limit      int     `query:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Page       int     `query:"page,omitempty" validate:"omitempty,min=1"`
}
