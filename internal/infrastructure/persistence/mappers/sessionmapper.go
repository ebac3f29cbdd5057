package mappers

import (
	"sitios/internal/domain/user"
	"sitios/internal/infrastructure/persistence/models"
)

// SessionMapper handles the conversion between session entities and models
type SessionMapper interface {
	ToDomain(model *models.SessionModel) *user.Session
	ToModel(session *user.Session) *models.SessionModel
}

type SessionMapperImpl struct{}

func NewSessionMapper() SessionMapper {
	return &SessionMapperImpl{}
}

func (m *SessionMapperImpl) ToDomain(model *models.SessionModel) *user.Session {
	if model == nil {
		return nil
	}
	return &user.Session{
		ID:             model.ID,
		UserID:         model.UserID,
		IPAddress:      model.IPAddress,
		UserAgent:      model.UserAgent,
		DeviceName:     model.DeviceName,
		Location:       model.Location,
		StartedAt:      model.StartedAt,
		LastActivityAt: model.LastActivityAt,
		EndedAt:        model.EndedAt,
		Active:         model.Active,
	}
}

func (m *SessionMapperImpl) ToModel(session *user.Session) *models.SessionModel {
	if session == nil {
		return nil
	}
	return &models.SessionModel{
		ID:             session.ID,
		UserID:         session.UserID,
		IPAddress:      session.IPAddress,
		UserAgent:      session.UserAgent,
		DeviceName:     session.DeviceName,
		Location:       session.Location,
		StartedAt:      session.StartedAt,
		LastActivityAt: session.LastActivityAt,
		EndedAt:        session.EndedAt,
		Active:         session.Active,
	}
}
