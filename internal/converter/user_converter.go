package converter

import (
	"github.com/lumedental/clinic-api/internal/delivery/dto"
	"github.com/lumedental/clinic-api/internal/domain/entity"
)

func UserToResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
