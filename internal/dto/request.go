package dto

type AssignRoleRequest struct {
	Principal string `json:"principal" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=admin user guest"`
}
