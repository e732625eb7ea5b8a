package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Backends de almacenamiento soportados.
const (
	BackendPostgres = "postgres"
	BackendSupabase = "supabase"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Supabase    Supabase    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	DailyDigest DailyDigest `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	// Backend selecciona la capa de acceso a datos: postgres (directo,
	// esquema inglés) o supabase (PostgREST, tablas en español).
	Backend string `mapstructure:"storage_backend"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Supabase guarda el endpoint del backend alojado y su credencial.
// Ambos son obligatorios cuando el backend seleccionado es "supabase";
// su ausencia se reporta como estado "no configurado", nunca un panic.
type Supabase struct {
	URL     string `mapstructure:"supabase_url"`
	AnonKey string `mapstructure:"supabase_anon_key"`
}

// Auth contiene el único par de credenciales de operador que protege la
// aplicación. El verificador es intercambiable (ver usecases/authenticating),
// la configuración sólo alimenta la implementación estática.
type Auth struct {
	Username string `mapstructure:"auth_username"`
	Password string `mapstructure:"auth_password"`
}

type DailyDigest struct {
	CronSchedule string `mapstructure:"daily_digest_cron"`
	Enabled      bool   `mapstructure:"daily_digest_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("STORAGE_BACKEND", BackendPostgres)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/tiendacontrol")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SUPABASE_URL", "")
	viper.SetDefault("SUPABASE_ANON_KEY", "")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Par de credenciales del operador. Reemplaza al login embebido del
	// panel original; se puede sobreescribir por entorno.
	viper.SetDefault("AUTH_USERNAME", "Supervisor")
	viper.SetDefault("AUTH_PASSWORD", "14081980Armin")

	viper.SetDefault("DAILY_DIGEST_CRON", "0 7 * * *") // Todos los días a las 7h
	viper.SetDefault("DAILY_DIGEST_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carga el archivo .env buscando en las ubicaciones habituales.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No fue posible obtener el directorio actual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Archivo .env cargado desde:", location)
			return
		}
	}

	logrus.Warn("No se encontró archivo .env en ninguna ubicación conocida")
}
