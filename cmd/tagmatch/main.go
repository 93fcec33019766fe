package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/snowshoe/tagmatch/core"
	"github.com/snowshoe/tagmatch/options"
	"github.com/snowshoe/tagmatch/tagdef"
)

type config struct {
	patternID    int
	referenceDef string
	dots         string
	patternsPath string
	optionsPath  string
	jsonOut      bool
	debug        bool
	cpuProfile   bool
}

func main() {
	os.Exit(realMain())
}

// realMain returns the process exit code so deferred cleanup, the CPU
// profile in particular, runs before main exits.
func realMain() int {
	cfg := config{}
	flag.IntVar(&cfg.patternID, "pattern", 0, "reference tag pattern id")
	flag.StringVar(&cfg.referenceDef, "ref", "", "reference definition, overrides -pattern")
	flag.StringVar(&cfg.dots, "dots", "", "comma separated input dots; read one set per line from stdin when empty")
	flag.StringVar(&cfg.patternsPath, "patterns", "", "YAML tag pattern table")
	flag.StringVar(&cfg.optionsPath, "config", "", "YAML match options")
	flag.BoolVar(&cfg.jsonOut, "json", false, "print the full result as JSON")
	flag.BoolVar(&cfg.debug, "debug", false, "debug logging")
	flag.BoolVar(&cfg.cpuProfile, "cpuprofile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if cfg.cpuProfile {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		defer p.Stop()
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Errorf("tagmatch: %v", err)
		return 1
	}
	return 0
}

func run(cfg config, in io.Reader, out io.Writer) error {
	if cfg.debug {
		log.SetLevel(log.DebugLevel)
	}

	opts, err := loadOptions(cfg)
	if err != nil {
		return err
	}
	referenceDef, err := loadReference(cfg, opts.PatternSize)
	if err != nil {
		return err
	}

	matcher, err := core.NewMatcher(opts)
	if err != nil {
		return err
	}

	if cfg.dots != "" {
		return matchOne(matcher, referenceDef, cfg.dots, cfg.jsonOut, out)
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := matchOne(matcher, referenceDef, line, cfg.jsonOut, out); err != nil {
			// one bad line should not stop the batch
			log.Errorf("%v", err)
			fmt.Fprintln(out, "!")
		}
	}
	return scanner.Err()
}

func loadOptions(cfg config) (*options.MatchOptions, error) {
	opts := options.NewMatchOptions(nil)
	if cfg.optionsPath != "" {
		var err error
		if opts, err = options.LoadMatchOptions(cfg.optionsPath); err != nil {
			return nil, err
		}
	}
	opts.SetDebug(cfg.debug)
	return opts, nil
}

func loadReference(cfg config, patternSize int) (string, error) {
	if cfg.referenceDef != "" {
		return cfg.referenceDef, nil
	}

	table := tagdef.Builtin
	if cfg.patternsPath != "" {
		f, err := os.Open(cfg.patternsPath)
		if err != nil {
			return "", fmt.Errorf("open patterns: %w", err)
		}
		defer f.Close()
		if table, err = tagdef.LoadTable(f, patternSize); err != nil {
			return "", err
		}
	}
	return table.Lookup(cfg.patternID)
}

func matchOne(matcher *core.Matcher, referenceDef string, dots string, jsonOut bool, out io.Writer) error {
	id := uuid.New()
	logger := log.WithField("match_id", id.String())

	res, err := matcher.Match(referenceDef, dots)
	if err != nil {
		return fmt.Errorf("match %s: %w", id, err)
	}
	logger.WithFields(log.Fields{
		"score":       res.Score,
		"orientation": res.Orientation,
		"factor":      res.Factor,
	}).Debug("matched")

	if jsonOut {
		enc := json.NewEncoder(out)
		return enc.Encode(res)
	}

	if res.Matched {
		_, err = fmt.Fprintln(out, "A")
	} else {
		_, err = fmt.Fprintln(out, "_")
	}
	return err
}
