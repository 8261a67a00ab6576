package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	envPrefix      = "SPECTRA_"
	defaultEnvFile = ".env"
)

// envName maps a flag name to its variable, e.g. sample-rate to
// SPECTRA_SAMPLE_RATE.
func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// applyEnv fills flags that were not given on the command line from
// SPECTRA_* variables. The process environment wins over envFile. A missing
// default env file is not an error.
func applyEnv(flags *pflag.FlagSet, envFile string) error {
	fileVars, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || flags.Changed("env-file") {
			return fmt.Errorf("reading env file %s: %w", envFile, err)
		}
		fileVars = nil
	}

	var setErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if setErr != nil || f.Changed || f.Name == "env-file" || f.Name == "help" {
			return
		}
		name := envName(f.Name)
		v, ok := os.LookupEnv(name)
		if !ok {
			v, ok = fileVars[name]
		}
		if !ok {
			return
		}
		if err := flags.Set(f.Name, v); err != nil {
			setErr = fmt.Errorf("invalid %s=%q: %w", name, v, err)
		}
	})
	return setErr
}
