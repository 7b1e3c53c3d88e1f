package services

import (
	"encoding/json"

	"gorm.io/gorm"

	apperrors "creditflow/internal/errors"
	"creditflow/internal/logger"
	"creditflow/internal/models"
	"creditflow/internal/pagination"
)

// historyService appends to the audit shadow table.
type historyService struct {
	db *gorm.DB
}

// NewHistoryService creates a new HistoryServicer.
func NewHistoryService(db *gorm.DB) HistoryServicer {
	return &historyService{db: db}
}

// Record appends one history row. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *historyService) Record(actorID uint, action, entityType string, entityID uint, ipAddress string, changes map[string]interface{}) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal history changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.History{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		IPAddress:  ipAddress,
		Changes:    changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create history entry",
			"error", err,
			"actor_id", actorID,
			"action", action,
			"entity_type", entityType,
			"entity_id", entityID,
		)
	}
}

// ListEntityHistory retrieves the change history of one entity, newest first.
func (s *historyService) ListEntityHistory(entityType string, entityID uint, page pagination.PageRequest) (*pagination.PageResponse[models.History], error) {
	page.Defaults()

	base := s.db.Model(&models.History{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.History
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}
