// Package logger provides a singleton Zap logger with context-based scoping.
//
// # Design Decisions
//
//   - Singleton: Una sola instancia global inicializada con Init().
//   - Context Scoping: Cada request puede tener su propio logger "scoped" con campos
//     adicionales (request_id, tenant, etc.) sin crear un nuevo core.
//   - Environments: "dev" usa consola con colores, "prod" usa JSON.
//   - Levels: debug, info, warn, error (configurable via LOG_LEVEL).
//
// # Usage
//
// Inicialización (una vez en main.go):
//
//	logger.Init(logger.Config{
//	    Env:   cfg.App.Env,            // "dev" o "prod"
//	    Level: os.Getenv("LOG_LEVEL"), // "debug", "info", "warn", "error"
//	})
//	defer logger.Sync()
//
// En controllers/services (con contexto):
//
//	log := logger.From(ctx)
//	log.Info("project updated", logger.Tenant(t), logger.EntityID(id))
//
// Sin contexto (fallback a singleton):
//
//	logger.L().Info("application started")
package logger
