package handlers

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dgiibot/models"
)

func TestStatusCommandDefinition(t *testing.T) {
	command := StatusCommandDefinition()

	assert.Equal(t, "dgii_status", command.Name)
	require.Len(t, command.Options, 2)

	service := command.Options[0]
	assert.Equal(t, "servicio", service.Name)
	assert.Equal(t, discordgo.ApplicationCommandOptionString, service.Type)
	assert.True(t, service.Required)
	require.Len(t, service.Choices, 3)
	assert.Equal(t, "Obtener Estatus de Servicios", service.Choices[0].Name)
	assert.Equal(t, "ObtenerEstatus", service.Choices[0].Value)
	assert.Equal(t, "VerificarEstado", service.Choices[2].Value)

	environment := command.Options[1]
	assert.Equal(t, "ambiente", environment.Name)
	assert.Equal(t, discordgo.ApplicationCommandOptionInteger, environment.Type)
	assert.False(t, environment.Required)
	require.Len(t, environment.Choices, 3)
	assert.Equal(t, "PreCertificacion", environment.Choices[0].Name)
	assert.Equal(t, 1, environment.Choices[0].Value)
	assert.Equal(t, "Produccion", environment.Choices[2].Name)
	assert.Equal(t, 3, environment.Choices[2].Value)
}

func TestMapToStatusCommand(t *testing.T) {
	t.Run("service only", func(t *testing.T) {
		data := discordgo.ApplicationCommandInteractionData{
			Name: StatusCommandName,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "servicio", Type: discordgo.ApplicationCommandOptionString, Value: "ObtenerEstatus"},
			},
		}

		command, err := mapToStatusCommand("evt_1", "user-1", data)

		require.NoError(t, err)
		assert.Equal(t, "evt_1", command.EventID)
		assert.Equal(t, "user-1", command.UserID)
		assert.Equal(t, models.StatusServiceObtenerEstatus, command.Service)
		assert.False(t, command.Environment.IsPresent())
	})

	t.Run("service with environment", func(t *testing.T) {
		data := discordgo.ApplicationCommandInteractionData{
			Name: StatusCommandName,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "servicio", Type: discordgo.ApplicationCommandOptionString, Value: "VerificarEstado"},
				{Name: "ambiente", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(2)},
			},
		}

		command, err := mapToStatusCommand("evt_1", "user-1", data)

		require.NoError(t, err)
		assert.Equal(t, models.StatusServiceVerificarEstado, command.Service)
		environment, ok := command.Environment.Get()
		require.True(t, ok)
		assert.Equal(t, models.StatusEnvironment(2), environment)
	})

	t.Run("missing service", func(t *testing.T) {
		data := discordgo.ApplicationCommandInteractionData{
			Name: StatusCommandName,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "ambiente", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(1)},
			},
		}

		_, err := mapToStatusCommand("evt_1", "user-1", data)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required option servicio")
	})

	t.Run("environment with wrong type", func(t *testing.T) {
		data := discordgo.ApplicationCommandInteractionData{
			Name: StatusCommandName,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "servicio", Type: discordgo.ApplicationCommandOptionString, Value: "VerificarEstado"},
				{Name: "ambiente", Type: discordgo.ApplicationCommandOptionInteger, Value: "2"},
			},
		}

		_, err := mapToStatusCommand("evt_1", "user-1", data)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "option ambiente is not a number")
	})
}
