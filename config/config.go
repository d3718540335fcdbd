package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath es donde se busca el archivo de configuración cuando no se
// pasa -config. Si no existe, se corre con los defaults.
const DefaultPath = "config/config.yaml"

// Config es la configuración completa del wizard y sus herramientas.
type Config struct {
	Wizard   WizardConfig   `yaml:"wizard"`
	Base     BaseConfig     `yaml:"base"`
	Backtest BacktestConfig `yaml:"backtest"`
	Ranking  RankingConfig  `yaml:"ranking"`
	Log      LogConfig      `yaml:"log"`
}

// WizardConfig controla la selección de jogos.
type WizardConfig struct {
	Modo    string `yaml:"modo"`    // conservador | agressivo
	Ultimos int    `yaml:"ultimos"` // ventana de concursos recientes
	Finais  int    `yaml:"finais"`  // cuántos jogos entrega la selección
	Pagina  int    `yaml:"pagina"`  // candidatos materializados por página

	// Umbrales de filtrado. Son operativos, no invariantes: se ajustan acá
	// y no en el código.
	MaxRepetidasConservador int     `yaml:"max_repetidas_conservador"`
	MaxRepetidasAgressivo   int     `yaml:"max_repetidas_agressivo"`
	MaxSequencia            int     `yaml:"max_sequencia"`
	ScoreMinimo             float64 `yaml:"score_minimo"`

	Saida string `yaml:"saida"` // archivo de jogos de salida
}

// BaseConfig apunta a la base histórica de concursos.
type BaseConfig struct {
	Path string `yaml:"path"` // .csv, .xlsx o .db/.sqlite
}

// BacktestConfig controla el backtest de jogos contra la base.
type BacktestConfig struct {
	Ultimos int `yaml:"ultimos"` // ventana de concursos a cruzar
}

// RankingConfig controla el ranking acumulado sobre los CSVs de backtest.
type RankingConfig struct {
	Dir        string `yaml:"dir"`         // directorio con los backtest_*.csv
	Top        int    `yaml:"top"`         // cuántos jogos entran al TXT final
	MinAcertos int    `yaml:"min_acertos"` // umbral de alerta sobre max_acertos
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si
// existe. Un path explícito que no existe es error; el DefaultPath ausente
// solo significa correr con defaults.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
		// sin archivo: defaults + env
	default:
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están
// presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOTO_BASE"); v != "" {
		cfg.Base.Path = v
	}
	if v := os.Getenv("LOTO_MODO"); v != "" {
		cfg.Wizard.Modo = v
	}
	if v := os.Getenv("LOTO_ULTIMOS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Wizard.Ultimos = n
			cfg.Backtest.Ultimos = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Wizard.Modo == "" {
		cfg.Wizard.Modo = "conservador"
	}
	if cfg.Wizard.Ultimos <= 0 {
		cfg.Wizard.Ultimos = 20
	}
	if cfg.Wizard.Finais <= 0 {
		cfg.Wizard.Finais = 5
	}
	if cfg.Wizard.Pagina <= 0 {
		cfg.Wizard.Pagina = 50_000
	}
	if cfg.Wizard.MaxRepetidasConservador <= 0 {
		cfg.Wizard.MaxRepetidasConservador = 10
	}
	if cfg.Wizard.MaxRepetidasAgressivo <= 0 {
		cfg.Wizard.MaxRepetidasAgressivo = 14
	}
	if cfg.Wizard.MaxSequencia <= 0 {
		cfg.Wizard.MaxSequencia = 4
	}
	if cfg.Base.Path == "" {
		cfg.Base.Path = "dados/base_limpa.xlsx"
	}
	if cfg.Backtest.Ultimos <= 0 {
		cfg.Backtest.Ultimos = 20
	}
	if cfg.Ranking.Dir == "" {
		cfg.Ranking.Dir = "outputs"
	}
	if cfg.Ranking.Top <= 0 {
		cfg.Ranking.Top = 30
	}
	if cfg.Ranking.MinAcertos <= 0 {
		cfg.Ranking.MinAcertos = 13
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
