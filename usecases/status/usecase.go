package status

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"dgiibot/clients"
	"dgiibot/core/log"
	"dgiibot/models"
	"dgiibot/utils"
)

const (
	ReplyMissingAPIKey      = "La clave API de la DGII no está configurada."
	ReplyMissingEnvironment = "Para 'VerificarEstado', debes seleccionar un ambiente."
	ReplyUpstreamError      = "Hubo un error al consultar el servicio de la DGII."

	HeaderServicesStatus     = "**Estatus de Servicios:**"
	HeaderMaintenanceWindows = "**Ventanas de Mantenimiento:**"
)

// EnvironmentHeader is the reply header for VerificarEstado
func EnvironmentHeader(environment models.StatusEnvironment) string {
	return fmt.Sprintf("**Estado del Ambiente %s:**", environment.Label())
}

// StatusUseCase answers /dgii_status invocations against the DGII status API
type StatusUseCase struct {
	statusClient clients.DGIIStatusClient
}

// NewStatusUseCase creates a new instance of StatusUseCase
func NewStatusUseCase(statusClient clients.DGIIStatusClient) *StatusUseCase {
	return &StatusUseCase{statusClient: statusClient}
}

// ProcessStatusCommand runs one invocation. ack is called before any upstream request;
// the returned reply is Deferred whenever ack succeeded.
func (u *StatusUseCase) ProcessStatusCommand(
	ctx context.Context,
	command models.StatusCommand,
	ack models.AckFunc,
) models.Reply {
	logger := log.With("event_id", command.EventID, "service", command.Service)
	logger.Info("📋 Starting to process status command", "user_id", command.UserID)

	if !u.statusClient.IsConfigured() {
		logger.Warn("⚠️ DGII API key not configured - rejecting status command")
		return models.Reply{Content: ReplyMissingAPIKey}
	}

	if err := ack(ctx); err != nil {
		logger.Error("❌ Failed to defer interaction reply", "error", err)
		return models.Reply{Content: ReplyUpstreamError}
	}

	content, err := u.dispatch(ctx, logger, command)
	if err != nil {
		logger.Error("❌ Error fetching DGII status", "error", err, "upstream", clients.UpstreamDetail(err))
		return models.Reply{Content: ReplyUpstreamError, Deferred: true}
	}

	logger.Info("✅ Status command completed")
	return models.Reply{Content: content, Deferred: true}
}

func (u *StatusUseCase) dispatch(
	ctx context.Context,
	logger *slog.Logger,
	command models.StatusCommand,
) (string, error) {
	switch command.Service {
	case models.StatusServiceVerificarEstado:
		environment, ok := command.Environment.Get()
		if !ok {
			logger.Info("🔍 VerificarEstado invoked without ambiente")
			return ReplyMissingEnvironment, nil
		}
		raw, err := u.statusClient.CheckEnvironmentStatus(ctx, environment)
		if err != nil {
			return "", err
		}
		return formatRaw(EnvironmentHeader(environment), raw)

	case models.StatusServiceObtenerEstatus:
		raw, err := u.statusClient.GetServicesStatus(ctx)
		if err != nil {
			return "", err
		}
		projected, err := projectServicesStatus(raw)
		if err != nil {
			return "", err
		}
		payload, err := encodeIndented(projected)
		if err != nil {
			return "", err
		}
		return utils.FormatJSONBlock(HeaderServicesStatus, payload), nil

	case models.StatusServiceObtenerVentanasMantenimiento:
		raw, err := u.statusClient.GetMaintenanceWindows(ctx)
		if err != nil {
			return "", err
		}
		return formatRaw(HeaderMaintenanceWindows, raw)

	default:
		return "", fmt.Errorf("unknown DGII service %q", command.Service)
	}
}

func formatRaw(header string, raw json.RawMessage) (string, error) {
	payload, err := prettyJSON(raw)
	if err != nil {
		return "", err
	}
	return utils.FormatJSONBlock(header, payload), nil
}
