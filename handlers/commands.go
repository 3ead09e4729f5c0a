package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"dgiibot/models"
)

const (
	StatusCommandName     = "dgii_status"
	serviceOptionName     = "servicio"
	environmentOptionName = "ambiente"
	statusCommandDesc     = "Consulta el estado de los servicios de la DGII."
	serviceOptionDesc     = "El servicio de la DGII a consultar"
	environmentOptionDesc = "El ambiente a verificar (para VerificarEstado)"
)

// StatusCommandDefinition describes /dgii_status for registration
func StatusCommandDefinition() *discordgo.ApplicationCommand {
	serviceChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.StatusServices))
	for _, service := range models.StatusServices {
		serviceChoices = append(serviceChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  service.DisplayName(),
			Value: string(service),
		})
	}

	environmentChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.StatusEnvironments))
	for _, environment := range models.StatusEnvironments {
		environmentChoices = append(environmentChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  environment.Label(),
			Value: int(environment),
		})
	}

	return &discordgo.ApplicationCommand{
		Name:        StatusCommandName,
		Description: statusCommandDesc,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        serviceOptionName,
				Description: serviceOptionDesc,
				Required:    true,
				Choices:     serviceChoices,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        environmentOptionName,
				Description: environmentOptionDesc,
				Required:    false,
				Choices:     environmentChoices,
			},
		},
	}
}

// mapToStatusCommand reads the servicio and ambiente options of a /dgii_status interaction
func mapToStatusCommand(
	eventID string,
	userID string,
	data discordgo.ApplicationCommandInteractionData,
) (models.StatusCommand, error) {
	command := models.StatusCommand{
		EventID:     eventID,
		UserID:      userID,
		Environment: mo.None[models.StatusEnvironment](),
	}

	for _, option := range data.Options {
		switch option.Name {
		case serviceOptionName:
			value, ok := option.Value.(string)
			if !ok {
				return models.StatusCommand{}, fmt.Errorf("option %s is not a string", serviceOptionName)
			}
			command.Service = models.StatusService(value)
		case environmentOptionName:
			if option.Value == nil {
				continue
			}
			value, ok := option.Value.(float64)
			if !ok {
				return models.StatusCommand{}, fmt.Errorf("option %s is not a number", environmentOptionName)
			}
			command.Environment = mo.Some(models.StatusEnvironment(int(value)))
		}
	}

	if command.Service == "" {
		return models.StatusCommand{}, fmt.Errorf("missing required option %s", serviceOptionName)
	}
	return command, nil
}
