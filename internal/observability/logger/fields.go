package logger

import (
	"time"

	"go.uber.org/zap"
)

// =================================================================================
// CAMPOS ESTÁNDAR - HTTP
// =================================================================================

// RequestID crea un campo para el ID del request.
func RequestID(v string) zap.Field {
	return zap.String("request_id", v)
}

// Method crea un campo para el método HTTP.
func Method(v string) zap.Field {
	return zap.String("method", v)
}

// Path crea un campo para el path del request.
func Path(v string) zap.Field {
	return zap.String("path", v)
}

// Host crea un campo para el hostname del request.
func Host(v string) zap.Field {
	return zap.String("host", v)
}

// Status crea un campo para el status code HTTP.
func Status(v int) zap.Field {
	return zap.Int("status", v)
}

// Duration crea un campo para la duración del request.
func Duration(v time.Duration) zap.Field {
	return zap.Duration("duration", v)
}

// DurationMs crea un campo para la duración en milisegundos.
func DurationMs(v int64) zap.Field {
	return zap.Int64("duration_ms", v)
}

// Bytes crea un campo para los bytes de respuesta.
func Bytes(v int) zap.Field {
	return zap.Int("bytes", v)
}

// ClientIP crea un campo para la IP del cliente.
func ClientIP(v string) zap.Field {
	return zap.String("client_ip", v)
}

// =================================================================================
// CAMPOS ESTÁNDAR - NEGOCIO
// =================================================================================

// Tenant crea un campo para el tenant resuelto del request.
func Tenant(v string) zap.Field {
	return zap.String("tenant", v)
}

// SourceTenant crea un campo para el tenant origen de una copia cross-tenant.
func SourceTenant(v string) zap.Field {
	return zap.String("source_tenant", v)
}

// TargetTenant crea un campo para el tenant destino de una copia cross-tenant.
func TargetTenant(v string) zap.Field {
	return zap.String("target_tenant", v)
}

// EntityType crea un campo para el tipo de entidad de contenido.
func EntityType(v string) zap.Field {
	return zap.String("entity_type", v)
}

// EntityID crea un campo para el id numérico de una entidad.
func EntityID(v int64) zap.Field {
	return zap.Int64("entity_id", v)
}

// Resolution crea un campo para la decisión de conflicto (skip/replace/create-new).
func Resolution(v string) zap.Field {
	return zap.String("resolution", v)
}

// Email crea un campo para el email (usar con cuidado en prod).
func Email(v string) zap.Field {
	return zap.String("email", v)
}

// =================================================================================
// CAMPOS ESTÁNDAR - SISTEMA
// =================================================================================

// Component crea un campo para el componente/módulo.
func Component(v string) zap.Field {
	return zap.String("component", v)
}

// Op crea un campo para la operación actual.
func Op(v string) zap.Field {
	return zap.String("op", v)
}

// Layer crea un campo para la capa (controller, service, repository).
func Layer(v string) zap.Field {
	return zap.String("layer", v)
}

// Err crea un campo para un error.
func Err(err error) zap.Field {
	return zap.Error(err)
}

// =================================================================================
// CAMPOS GENÉRICOS
// =================================================================================

// Count crea un campo para un conteo.
func Count(v int) zap.Field {
	return zap.Int("count", v)
}

// String crea un campo string genérico.
func String(key, v string) zap.Field {
	return zap.String(key, v)
}

// Int crea un campo int genérico.
func Int(key string, v int) zap.Field {
	return zap.Int(key, v)
}

// Bool crea un campo bool genérico.
func Bool(key string, v bool) zap.Field {
	return zap.Bool(key, v)
}

// Any crea un campo genérico para cualquier tipo.
func Any(key string, v any) zap.Field {
	return zap.Any(key, v)
}
