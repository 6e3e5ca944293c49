package emergency

import (
	"context"

	"github.com/piresc/pathclear/internal/pkg/models"
)

// EmergencyGW reaches the services outside the emergency domain
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/pathclear/services/emergency EmergencyGW
type EmergencyGW interface {
	// Deliver sends alert to recipient, honouring ctx cancellation
	Deliver(ctx context.Context, recipient models.NearbyActor, alert *models.EmergencyAlert) error
	AwardEmergencyAssist(ctx context.Context, award *models.EmergencyAssistAward) (*models.AwardReceipt, error)
}
