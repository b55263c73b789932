// Command 9pdump prints the 9P messages found in a byte stream, such
// as a capture of one direction of a client/server conversation.
//
//	9pdump requests capture.client.9p
//	9pdump -msize 65536 responses capture.server.9p
//
// With no file argument, 9pdump reads from standard input. Frames that
// frame correctly but fail payload validation are reported and
// skipped; a framing error stops the dump, since the remainder of the
// stream cannot be trusted.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/erinyes/ninep"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config is the tool configuration, read from an optional YAML file.
type Config struct {
	// Msize is the maximum frame size accepted, as if it had been
	// negotiated on a live connection.
	Msize uint32 `yaml:"msize"`

	// Version is the protocol version to assume.
	Version string `yaml:"version"`
}

var defaultLogFormatter = &log.TextFormatter{}

// infoFormatter overrides the default format for Info() log events to
// provide an easier to read output
type infoFormatter struct {
}

func (f *infoFormatter) Format(entry *log.Entry) ([]byte, error) {
	if entry.Level == log.InfoLevel {
		return append([]byte(entry.Message), '\n'), nil
	}
	return defaultLogFormatter.Format(entry)
}

func printHelp() {
	fmt.Printf("USAGE: %s [options] COMMAND [file]\n\n", filepath.Base(os.Args[0]))
	fmt.Printf("Commands:\n")
	fmt.Printf("  requests    Dump a stream of client messages (T-messages)\n")
	fmt.Printf("  responses   Dump a stream of server messages (R-messages)\n")
	fmt.Printf("  help        Print this message\n")
	fmt.Printf("\n")
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
}

func readConfig(path string, cfg *Config) {
	if path == "" {
		return
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file %q: %v", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		log.Fatalf("Failed to parse config file %q: %v", path, err)
	}
}

func openInput(args []string) (*os.File, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(args[0])
	return f, pkgerrors.Wrap(err, "open input")
}

func main() {
	flag.Usage = printHelp
	flagQuiet := flag.Bool("q", false, "Quiet execution")
	flagVerbose := flag.Bool("v", false, "Verbose execution")
	flagConfig := flag.String("config", "", "Read msize and version defaults from a YAML file")
	flagMsize := flag.Uint("msize", 0, "Maximum frame size accepted (0 keeps the config file value or the protocol default)")
	flag.Parse()

	// Set up logging
	log.SetFormatter(new(infoFormatter))
	log.SetLevel(log.InfoLevel)
	if *flagQuiet && *flagVerbose {
		fmt.Printf("Can't set quiet and verbose flag at the same time\n")
		os.Exit(1)
	}
	if *flagQuiet {
		log.SetLevel(log.ErrorLevel)
	}
	if *flagVerbose {
		// Switch back to the standard formatter
		log.SetFormatter(defaultLogFormatter)
		log.SetLevel(log.DebugLevel)
	}

	cfg := Config{Msize: ninep.DefaultMaxSize, Version: ninep.Version}
	readConfig(*flagConfig, &cfg)
	if *flagMsize != 0 {
		cfg.Msize = uint32(*flagMsize)
	}

	args := flag.Args()
	if len(args) < 1 {
		printHelp()
		os.Exit(1)
	}
	switch args[0] {
	case "requests":
		os.Exit(dump(cfg, args[1:], true))
	case "responses":
		os.Exit(dump(cfg, args[1:], false))
	case "help":
		printHelp()
	default:
		fmt.Printf("%q is not a valid command.\n\n", args[0])
		printHelp()
		os.Exit(1)
	}
}

func dump(cfg Config, args []string, requests bool) int {
	in, err := openInput(args)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer in.Close()

	p := ninep.NewParser(cfg.Msize, cfg.Version)
	d := ninep.NewDecoder(in, p)

	exit := 0
	n := 0
	for d.Next() {
		h := d.Header()
		var msg interface{}
		var derr error
		if requests {
			msg, derr = d.Request()
		} else {
			msg, derr = d.Response()
		}
		if derr != nil {
			// The frame itself was sliced cleanly, so the dump can
			// continue at the next frame boundary.
			log.Errorf("frame %d (type %d, tag %d): %v", n, h.Type, h.Tag, derr)
			exit = 1
			n++
			continue
		}
		fmt.Printf("%5d %v\n", h.Tag, msg)
		n++
	}
	if err := d.Err(); err != nil {
		log.Errorf("after %d messages: %v", n, err)
		exit = 1
	}
	log.Debugf("dumped %d messages", n)
	return exit
}
