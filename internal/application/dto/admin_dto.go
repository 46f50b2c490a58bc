package dto

// UserListRequest filtros del listado de usuarios del admin.
type UserListRequest struct {
	Role   string `query:"role" validate:"omitempty,oneof=USER ADMIN STYLIST"`
	Status string `query:"status" validate:"omitempty"`
	Limit  int    `query:"limit" validate:"min=0,max=100"`
	Offset int    `query:"offset" validate:"min=0"`
}

// UserListResponse página de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
