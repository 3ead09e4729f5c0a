package models

import (
	"encoding/json"
	"fmt"

	"github.com/samber/mo"
)

type StatusService string

const (
	StatusServiceObtenerEstatus               StatusService = "ObtenerEstatus"
	StatusServiceObtenerVentanasMantenimiento StatusService = "ObtenerVentanasMantenimiento"
	StatusServiceVerificarEstado              StatusService = "VerificarEstado"
)

// StatusServices lists the services in the order they are offered to users
var StatusServices = []StatusService{
	StatusServiceObtenerEstatus,
	StatusServiceObtenerVentanasMantenimiento,
	StatusServiceVerificarEstado,
}

// DisplayName is the label shown for the service in the command picker
func (s StatusService) DisplayName() string {
	switch s {
	case StatusServiceObtenerEstatus:
		return "Obtener Estatus de Servicios"
	case StatusServiceObtenerVentanasMantenimiento:
		return "Obtener Ventanas de Mantenimiento"
	case StatusServiceVerificarEstado:
		return "Verificar Estado de Ambiente"
	default:
		return string(s)
	}
}

// StatusEnvironment is a deployment tier of the DGII e-CF platform
type StatusEnvironment int

const (
	StatusEnvironmentPreCertificacion StatusEnvironment = 1
	StatusEnvironmentCertificacion    StatusEnvironment = 2
	StatusEnvironmentProduccion       StatusEnvironment = 3
)

var StatusEnvironments = []StatusEnvironment{
	StatusEnvironmentPreCertificacion,
	StatusEnvironmentCertificacion,
	StatusEnvironmentProduccion,
}

// Label returns the environment name. Anything outside 1 and 2 reads as Produccion.
func (e StatusEnvironment) Label() string {
	switch e {
	case StatusEnvironmentPreCertificacion:
		return "PreCertificacion"
	case StatusEnvironmentCertificacion:
		return "Certificacion"
	default:
		return "Produccion"
	}
}

func (e StatusEnvironment) String() string {
	return fmt.Sprintf("%d", int(e))
}

// StatusCommand is one /dgii_status invocation
type StatusCommand struct {
	EventID     string
	UserID      string
	Service     StatusService
	Environment mo.Option[StatusEnvironment]
}

// ServiceStatus is the projection of one ObtenerEstatus element. Missing fields render as null.
type ServiceStatus struct {
	Servicio json.RawMessage `json:"servicio"`
	Estatus  json.RawMessage `json:"estatus"`
	Ambiente json.RawMessage `json:"ambiente"`
}
