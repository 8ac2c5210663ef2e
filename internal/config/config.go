package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Bloque app (opcional en YAML). Si no está, queda "dev".
	App struct {
		// dev | staging | prod
		Env string `yaml:"env"`
	} `yaml:"app"`

	Server struct {
		Addr               string   `yaml:"addr"`
		MetricsAddr        string   `yaml:"metrics_addr"`
		CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
		// AdminBaseURL es la URL base de la marca interna donde vive el panel.
		// Requests de admin que llegan por el host externo redirigen acá.
		AdminBaseURL string `yaml:"admin_base_url"`
	} `yaml:"server"`

	// Tenants: tabla explícita host → tenant. Se valida en el arranque.
	Tenants struct {
		Internal BrandConfig `yaml:"internal"`
		External BrandConfig `yaml:"external"`
	} `yaml:"tenants"`

	Storage struct {
		// driver: postgres | memory
		Driver   string `yaml:"driver"`
		DSN      string `yaml:"dsn"`
		Postgres struct {
			MaxOpenConns    int    `yaml:"max_open_conns"`
			MaxIdleConns    int    `yaml:"max_idle_conns"`
			ConnMaxLifetime string `yaml:"conn_max_lifetime"`
		} `yaml:"postgres"`
	} `yaml:"storage"`

	Cache struct {
		Kind  string `yaml:"kind"` // memory | redis
		Redis struct {
			Addr   string `yaml:"addr"`
			DB     int    `yaml:"db"`
			Prefix string `yaml:"prefix"`
		} `yaml:"redis"`
		Memory struct {
			DefaultTTL string `yaml:"default_ttl"`
		} `yaml:"memory"`
	} `yaml:"cache"`

	Auth struct {
		// JWTSecret firma los tokens de sesión del admin (HS256).
		JWTSecret  string `yaml:"jwt_secret"`
		SessionTTL string `yaml:"session_ttl"`
		Session    struct {
			CookieName string `yaml:"cookie_name"`
			Domain     string `yaml:"domain"`
			SameSite   string `yaml:"samesite"`
			Secure     bool   `yaml:"secure"`
		} `yaml:"session"`
		// SignInPath: destino del redirect cuando un path de admin no trae sesión.
		SignInPath string `yaml:"signin_path"`
	} `yaml:"auth"`

	Rate struct {
		Enabled bool `yaml:"enabled"`
		Contact struct {
			Limit  int    `yaml:"limit"`
			Window string `yaml:"window"`
		} `yaml:"contact"`
	} `yaml:"rate"`

	SMTP struct {
		Host               string `yaml:"host"`
		Port               int    `yaml:"port"`
		Username           string `yaml:"username"`
		Password           string `yaml:"password"`
		From               string `yaml:"from"`
		InsecureSkipVerify bool   `yaml:"insecure_skip_verify"` // sólo dev
	} `yaml:"smtp"`

	Contact struct {
		// To: casilla que recibe los mensajes del formulario de contacto.
		To string `yaml:"to"`
	} `yaml:"contact"`

	Flags struct {
		Migrate bool `yaml:"migrate"`
	} `yaml:"flags"`
}

// BrandConfig describe una marca: hosts exactos y etiqueta visible.
type BrandConfig struct {
	Hosts []string `yaml:"hosts"`
	Label string   `yaml:"label"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	c.applyEnvOverrides()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFromEnv arma la config solo con env vars (sin YAML). Útil en dev y tests.
func LoadFromEnv() (*Config, error) {
	var c Config
	c.applyDefaults()
	c.applyEnvOverrides()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MetricsAddr == "" {
		c.Server.MetricsAddr = ":9090"
	}
	if c.Server.AdminBaseURL == "" {
		c.Server.AdminBaseURL = "http://localhost:8080"
	}
	if len(c.Tenants.Internal.Hosts) == 0 {
		c.Tenants.Internal.Hosts = []string{"briantpm.com", "www.briantpm.com", "localhost"}
	}
	if c.Tenants.Internal.Label == "" {
		c.Tenants.Internal.Label = "briantpm.com"
	}
	if len(c.Tenants.External.Hosts) == 0 {
		c.Tenants.External.Hosts = []string{"brianthomastpm.com", "www.brianthomastpm.com"}
	}
	if c.Tenants.External.Label == "" {
		c.Tenants.External.Label = "brianthomastpm.com"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "memory"
	}
	if c.Cache.Kind == "" {
		c.Cache.Kind = "memory"
	}
	if c.Cache.Memory.DefaultTTL == "" {
		c.Cache.Memory.DefaultTTL = "2m"
	}
	if c.Auth.SessionTTL == "" {
		c.Auth.SessionTTL = "12h"
	}
	if c.Auth.Session.CookieName == "" {
		c.Auth.Session.CookieName = "folio_session"
	}
	if c.Auth.Session.SameSite == "" {
		c.Auth.Session.SameSite = "Lax"
	}
	if c.Auth.SignInPath == "" {
		c.Auth.SignInPath = "/admin/sign-in"
	}
	if c.Rate.Contact.Limit == 0 {
		c.Rate.Contact.Limit = 5
	}
	if c.Rate.Contact.Window == "" {
		c.Rate.Contact.Window = "10m"
	}
}

// ---- Helpers env ----

func getEnvStr(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}
func getEnvInt(key string) (int, bool) {
	if s, ok := getEnvStr(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i, true
		}
	}
	return 0, false
}
func getEnvBool(key string) (bool, bool) {
	if s, ok := getEnvStr(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b, true
		}
	}
	return false, false
}
func getEnvCSV(key string) ([]string, bool) {
	if s, ok := getEnvStr(key); ok {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, true
	}
	return nil, false
}

// applyEnvOverrides pisa el YAML con variables de entorno.
func (c *Config) applyEnvOverrides() {
	if v, ok := getEnvStr("APP_ENV"); ok {
		c.App.Env = strings.ToLower(v)
	}

	// SERVER
	if v, ok := getEnvStr("SERVER_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := getEnvStr("METRICS_ADDR"); ok {
		c.Server.MetricsAddr = v
	}
	if v, ok := getEnvCSV("SERVER_CORS_ALLOWED_ORIGINS"); ok {
		c.Server.CORSAllowedOrigins = v
	}
	if v, ok := getEnvStr("ADMIN_BASE_URL"); ok {
		c.Server.AdminBaseURL = v
	}

	// TENANTS
	if v, ok := getEnvCSV("TENANT_INTERNAL_HOSTS"); ok {
		c.Tenants.Internal.Hosts = v
	}
	if v, ok := getEnvStr("TENANT_INTERNAL_LABEL"); ok {
		c.Tenants.Internal.Label = v
	}
	if v, ok := getEnvCSV("TENANT_EXTERNAL_HOSTS"); ok {
		c.Tenants.External.Hosts = v
	}
	if v, ok := getEnvStr("TENANT_EXTERNAL_LABEL"); ok {
		c.Tenants.External.Label = v
	}

	// STORAGE
	if v, ok := getEnvStr("STORAGE_DRIVER"); ok {
		c.Storage.Driver = v
	}
	if v, ok := getEnvStr("STORAGE_DSN"); ok {
		c.Storage.DSN = v
	}
	if v, ok := getEnvInt("POSTGRES_MAX_OPEN_CONNS"); ok {
		c.Storage.Postgres.MaxOpenConns = v
	}
	if v, ok := getEnvInt("POSTGRES_MAX_IDLE_CONNS"); ok {
		c.Storage.Postgres.MaxIdleConns = v
	}
	if v, ok := getEnvStr("POSTGRES_CONN_MAX_LIFETIME"); ok {
		c.Storage.Postgres.ConnMaxLifetime = v
	}

	// CACHE
	if v, ok := getEnvStr("CACHE_KIND"); ok {
		c.Cache.Kind = v
	}
	if v, ok := getEnvStr("REDIS_ADDR"); ok {
		c.Cache.Redis.Addr = v
	}
	if v, ok := getEnvInt("REDIS_DB"); ok {
		c.Cache.Redis.DB = v
	}
	if v, ok := getEnvStr("REDIS_PREFIX"); ok {
		c.Cache.Redis.Prefix = v
	}
	if v, ok := getEnvStr("CACHE_MEMORY_DEFAULT_TTL"); ok {
		c.Cache.Memory.DefaultTTL = v
	}

	// AUTH
	if v, ok := getEnvStr("AUTH_JWT_SECRET"); ok {
		c.Auth.JWTSecret = v
	}
	if v, ok := getEnvStr("AUTH_SESSION_TTL"); ok {
		c.Auth.SessionTTL = v
	}
	if v, ok := getEnvStr("AUTH_SESSION_COOKIE_NAME"); ok {
		c.Auth.Session.CookieName = v
	}
	if v, ok := getEnvStr("AUTH_SESSION_DOMAIN"); ok {
		c.Auth.Session.Domain = v
	}
	if v, ok := getEnvStr("AUTH_SESSION_SAMESITE"); ok {
		c.Auth.Session.SameSite = v
	}
	if v, ok := getEnvBool("AUTH_SESSION_SECURE"); ok {
		c.Auth.Session.Secure = v
	}
	if v, ok := getEnvStr("AUTH_SIGNIN_PATH"); ok {
		c.Auth.SignInPath = v
	}

	// RATE
	if v, ok := getEnvBool("RATE_ENABLED"); ok {
		c.Rate.Enabled = v
	}
	if v, ok := getEnvInt("RATE_CONTACT_LIMIT"); ok {
		c.Rate.Contact.Limit = v
	}
	if v, ok := getEnvStr("RATE_CONTACT_WINDOW"); ok {
		c.Rate.Contact.Window = v
	}

	// SMTP / CONTACT
	if v, ok := getEnvStr("SMTP_HOST"); ok {
		c.SMTP.Host = v
	}
	if v, ok := getEnvInt("SMTP_PORT"); ok {
		c.SMTP.Port = v
	}
	if v, ok := getEnvStr("SMTP_USERNAME"); ok {
		c.SMTP.Username = v
	}
	if v, ok := getEnvStr("SMTP_PASSWORD"); ok {
		c.SMTP.Password = v
	}
	if v, ok := getEnvStr("SMTP_FROM"); ok {
		c.SMTP.From = v
	}
	if v, ok := getEnvBool("SMTP_INSECURE_SKIP_VERIFY"); ok {
		c.SMTP.InsecureSkipVerify = v
	}
	if v, ok := getEnvStr("CONTACT_TO"); ok {
		c.Contact.To = v
	}

	// FLAGS
	if v, ok := getEnvBool("FLAGS_MIGRATE"); ok {
		c.Flags.Migrate = v
	}
}

// Validate chequea valores críticos. Una config rota frena el arranque.
func (c *Config) Validate() error {
	if c.Storage.Driver == "postgres" && strings.TrimSpace(c.Storage.DSN) == "" {
		return fmt.Errorf("storage.dsn requerido con driver postgres")
	}
	if c.IsProd() && strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("auth.jwt_secret requerido en prod")
	}
	for _, d := range []string{
		c.Storage.Postgres.ConnMaxLifetime,
		c.Cache.Memory.DefaultTTL,
		c.Auth.SessionTTL,
		c.Rate.Contact.Window,
	} {
		if d != "" {
			if _, err := time.ParseDuration(d); err != nil {
				return fmt.Errorf("duración inválida %q: %w", d, err)
			}
		}
	}
	return nil
}

// IsProd indica si corremos en producción (deshabilita overrides de testing).
func (c *Config) IsProd() bool {
	return strings.EqualFold(c.App.Env, "prod")
}

// SessionTTL parsea la duración de sesión (ya validada en Load).
func (c *Config) SessionTTL() time.Duration {
	d, err := time.ParseDuration(c.Auth.SessionTTL)
	if err != nil {
		return 12 * time.Hour
	}
	return d
}

// ContactWindow parsea la ventana del rate limit de contacto.
func (c *Config) ContactWindow() time.Duration {
	d, err := time.ParseDuration(c.Rate.Contact.Window)
	if err != nil {
		return 10 * time.Minute
	}
	return d
}
