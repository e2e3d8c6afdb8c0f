package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/AdguardTeam/golibs/errors"
	"github.com/AdguardTeam/golibs/validate"
	"gopkg.in/yaml.v3"
)

const (
	defaultCapacity = 128
	defaultCount    = 64
)

// config is the configuration of the demo.
type config struct {
	// Capacity is the bound the first sieve is precomputed up to.  Values
	// below 3 precompute nothing.
	Capacity int `yaml:"capacity"`

	// Count is the number of primes drawn from the second sieve.
	Count int `yaml:"count"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`

	// Progress shows progress bars on stderr.
	Progress bool `yaml:"progress"`
}

// type check
var _ validate.Interface = (*config)(nil)

// Validate implements the [validate.Interface] interface for *config.
func (c *config) Validate() (err error) {
	if c == nil {
		return errors.ErrNoValue
	}

	return validate.NotNegative("count", c.Count)
}

// parseConfig reads the configuration from the optional YAML file given with
// -config and applies the flags in args over it.
func parseConfig(args []string, output io.Writer) (conf *config, err error) {
	defer func() { err = errors.Annotate(err, "parsing config: %w") }()

	conf = &config{
		Capacity: defaultCapacity,
		Count:    defaultCount,
	}

	flags := flag.NewFlagSet("primes", flag.ContinueOnError)
	flags.SetOutput(output)

	confPath := flags.String("config", "", "path to a YAML configuration file")
	capacity := flags.Int("capacity", defaultCapacity, "precompute primes up to this number")
	count := flags.Int("count", defaultCount, "number of sequential primes to draw")
	verbose := flags.Bool("v", false, "enable debug logging")
	progress := flags.Bool("progress", false, "show progress bars")

	err = flags.Parse(args)
	if err != nil {
		// Don't wrap the error since it's informative enough as is.
		return nil, err
	}

	if *confPath != "" {
		err = readConfigFile(*confPath, conf)
		if err != nil {
			return nil, err
		}
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "capacity":
			conf.Capacity = *capacity
		case "count":
			conf.Count = *count
		case "v":
			conf.Verbose = *verbose
		case "progress":
			conf.Progress = *progress
		}
	})

	err = conf.Validate()
	if err != nil {
		return nil, err
	}

	return conf, nil
}

// readConfigFile decodes the YAML file at path into conf.  Fields missing from
// the file keep their current values.
func readConfigFile(path string, conf *config) (err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		// Don't wrap the error since it's informative enough as is.
		return err
	}

	err = yaml.Unmarshal(b, conf)
	if err != nil {
		return fmt.Errorf("unmarshalling %q: %w", path, err)
	}

	return nil
}
