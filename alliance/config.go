package alliance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for the message service application.
type Config struct {
	HTTPAddr string `yaml:"http_addr"`

	// LedgerBackend selects the account store: "mem" (seeded demo data) or
	// "pg" (requires LedgerDSN).
	LedgerBackend string `yaml:"ledger_backend"`
	LedgerDSN     string `yaml:"ledger_dsn"`

	// SchemaPath points at the pain.001 XSD used for XML validation. The
	// schema is an external input, never compiled in; leaving it empty makes
	// every pain.001 validation report invalid with an explanatory issue.
	SchemaPath string `yaml:"schema_path"`
	// Pain001Namespace overrides the generated document namespace when a
	// schema profile other than the default revision is in use.
	Pain001Namespace string `yaml:"pain001_namespace"`

	// Transport capability flags, decided once at startup. Only enabled
	// transports are registered; there is no availability probing at send
	// time.
	Transports TransportConfig `yaml:"transports"`
}

type TransportConfig struct {
	LocalLogPath string `yaml:"local_log_path"`

	SMTPEnabled  bool   `yaml:"smtp_enabled"`
	SMTPAddr     string `yaml:"smtp_addr"`
	SMTPUsername string `yaml:"smtp_username"`
	SMTPPassword string `yaml:"smtp_password"`
	SMTPFrom     string `yaml:"smtp_from"`
	SMTPTo       string `yaml:"smtp_to"`

	SFTPEnabled   bool   `yaml:"sftp_enabled"`
	SFTPAddr      string `yaml:"sftp_addr"`
	SFTPUsername  string `yaml:"sftp_username"`
	SFTPPassword  string `yaml:"sftp_password"`
	SFTPRemoteDir string `yaml:"sftp_remote_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:      "localhost:9090",
		LedgerBackend: "mem",
		Transports: TransportConfig{
			LocalLogPath: "swift_send_log.txt",
		},
	}
}

// LoadConfig reads a YAML config file over the defaults, then applies env
// overrides for the deployment-sensitive values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.LedgerBackend = getenv("LEDGER_BACKEND", cfg.LedgerBackend)
	cfg.LedgerDSN = getenv("DB_DSN", cfg.LedgerDSN)
	cfg.SchemaPath = getenv("PAIN001_SCHEMA", cfg.SchemaPath)

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
