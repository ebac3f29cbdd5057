package usecases

import (
	"context"

	"sitios/internal/domain/user"
)

type ListUsersQuery struct {
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users []user.DisplayInfo
	Total int64
}

// ListUsersUseCase pages through all accounts. Admin only, enforced at the
// route level.
type ListUsersUseCase struct {
	userRepo user.Repository
}

func NewListUsersUseCase(userRepo user.Repository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	users, total, err := uc.userRepo.List(ctx, query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}

	infos := make([]user.DisplayInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, u.GetDisplayInfo())
	}
	return &ListUsersResult{Users: infos, Total: total}, nil
}
