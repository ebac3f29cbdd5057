package mappers

import (
	"fmt"

	"sitios/internal/domain/user"
	vo "sitios/internal/domain/user/valueobjects"
	"sitios/internal/infrastructure/persistence/models"
	"sitios/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.UserModel) (*user.User, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *user.User) (*models.UserModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	name, err := vo.NewName(model.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create name value object: %w", err)
	}

	role := authorization.ParseUserRole(model.Role)

	userEntity, err := user.ReconstructUser(
		model.ID,
		email,
		name,
		role,
		model.PasswordHash,
		model.TwoFactorSecret,
		model.TwoFactorEnabled,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return userEntity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:               entity.ID(),
		Email:            entity.Email().String(),
		Name:             entity.Name().String(),
		Role:             entity.Role().String(),
		PasswordHash:     entity.PasswordHash(),
		TwoFactorSecret:  entity.TwoFactorSecret(),
		TwoFactorEnabled: entity.TwoFactorEnabled(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *UserMapperImpl) ToEntities(modelList []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map user %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
