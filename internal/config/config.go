package config

import (
	"os"
	"strconv"

	"github.com/alexiusacademia/goifd/internal/loads"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variables read by Load
const (
	EnvAddr       = "GOIFD_ADDR"
	EnvRate       = "GOIFD_RATE"
	EnvBurst      = "GOIFD_BURST"
	EnvSamples    = "GOIFD_SAMPLES"
	EnvMaxSamples = "GOIFD_MAX_SAMPLES"
)

// Server holds the settings of the HTTP API
type Server struct {
	Addr       string  // listen address
	Rate       float64 // requests per second per client
	Burst      int     // requests allowed at once per client
	Samples    int     // default samples per segment
	MaxSamples int     // largest samples value a request may ask for
}

// Default returns the settings used when nothing is configured
func Default() Server {
	return Server{
		Addr:       ":8080",
		Rate:       5,
		Burst:      10,
		Samples:    loads.DefaultSamples,
		MaxSamples: loads.MaxSamples,
	}
}

// Load reads the settings from the environment. Variables from the given
// .env files are loaded first; a missing file is not an error.
func Load(files ...string) (Server, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return Server{}, errors.Wrapf(err, "could not load environment file (%s)", f)
		}
	}

	cfg := Default()
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}

	var err error
	if cfg.Rate, err = floatEnv(EnvRate, cfg.Rate); err != nil {
		return Server{}, err
	}
	if cfg.Burst, err = intEnv(EnvBurst, cfg.Burst); err != nil {
		return Server{}, err
	}
	if cfg.Samples, err = intEnv(EnvSamples, cfg.Samples); err != nil {
		return Server{}, err
	}
	if cfg.MaxSamples, err = intEnv(EnvMaxSamples, cfg.MaxSamples); err != nil {
		return Server{}, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings are usable
func (s Server) Validate() error {
	if s.Addr == "" {
		return errors.New("listen address is empty")
	}
	if s.Rate <= 0 {
		return errors.Errorf("%s must be positive, got %g", EnvRate, s.Rate)
	}
	if s.Burst < 1 {
		return errors.Errorf("%s must be at least 1, got %d", EnvBurst, s.Burst)
	}
	if s.Samples < 2 {
		return errors.Errorf("%s must be at least 2, got %d", EnvSamples, s.Samples)
	}
	if s.MaxSamples < s.Samples {
		return errors.Errorf("%s (%d) is below %s (%d)", EnvMaxSamples, s.MaxSamples, EnvSamples, s.Samples)
	}
	return nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return f, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return n, nil
}
