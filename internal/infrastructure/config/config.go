package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	GRPCServer GRPCServer
	Database   Database
	Prometheus Prometheus
}

type HTTPServer struct {
	Address string
	Port    int
}

type GRPCServer struct {
	Address string
	Port    int
}

type Database struct {
	Driver     string
	Username   string
	Password   string
	Host       string
	Port       string
	DbName     string
	SQLitePath string
	Migrate    bool
}

// DSN returns the postgres connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		d.Username,
		d.Password,
		d.Host,
		d.Port,
		d.DbName)
}

type Prometheus struct {
	Address string
	Port    int
}

func MustLoad() *Config {
	cfg, err := Load("./config")
	if err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}
	return cfg
}

// Load reads config.yaml from dir. Values can be overridden with BLOG_*
// environment variables, e.g. BLOG_DATABASE_DRIVER=sqlite.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("blog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 8000)

	v.SetDefault("grpc_server.address", "0.0.0.0")
	v.SetDefault("grpc_server.port", 50054)

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "blog-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "blog")
	v.SetDefault("database.sqlite_path", "db.sqlite3")
	v.SetDefault("database.migrate", true)

	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9104)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	config := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address: v.GetString("http_server.address"),
			Port:    v.GetInt("http_server.port"),
		},
		GRPCServer: GRPCServer{
			Address: v.GetString("grpc_server.address"),
			Port:    v.GetInt("grpc_server.port"),
		},
		Database: Database{
			Driver:     v.GetString("database.driver"),
			Username:   v.GetString("database.username"),
			Password:   v.GetString("database.password"),
			Host:       v.GetString("database.host"),
			Port:       v.GetString("database.port"),
			DbName:     v.GetString("database.db_name"),
			SQLitePath: v.GetString("database.sqlite_path"),
			Migrate:    v.GetBool("database.migrate"),
		},
		Prometheus: Prometheus{
			Address: v.GetString("prometheus.address"),
			Port:    v.GetInt("prometheus.port"),
		},
	}

	switch config.Database.Driver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown database driver %q", config.Database.Driver)
	}

	return config, nil
}
