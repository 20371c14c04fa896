package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/chronofmt/codec"
	"github.com/reoring/chronofmt/gotime"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "print":
		printCmd(os.Args[2:])
	case "parse":
		parseCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "chronofmt CLI\n\nUsage:\n  chronofmt print -pattern 'yyyy-MM-dd HH:mm:ss' [-zone Europe/Berlin]\n  chronofmt parse -pattern 'yyyy-MM-dd' [-zone UTC]\n  chronofmt print -patterns patterns.yaml -name iso\n\nNotes:\n  - print reads RFC3339 instants from stdin, one per line, and writes the\n    pattern rendering.\n  - parse reads pattern-formatted lines from stdin and writes JSON records\n    with the resolved instant.\n  - A patterns file maps names to pattern strings:\n      patterns:\n        iso: \"yyyy-MM-dd'T'HH:mm:ssZZZZ\"")
}

// patternsFile is the YAML layout of a named pattern set.
type patternsFile struct {
	Patterns map[string]string `yaml:"patterns"`
}

type layoutFlags struct {
	pattern  string
	patterns string
	name     string
	zone     string
}

func (lf *layoutFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&lf.pattern, "pattern", "", "layout pattern string")
	fs.StringVar(&lf.patterns, "patterns", "", "YAML file of named patterns")
	fs.StringVar(&lf.name, "name", "", "pattern name within -patterns")
	fs.StringVar(&lf.zone, "zone", "UTC", "IANA zone name")
}

func (lf *layoutFlags) resolve(fs *flag.FlagSet) (*codec.TimeCodec, *gotime.Zone) {
	pattern := lf.pattern
	if pattern == "" {
		if lf.patterns == "" || lf.name == "" {
			fs.Usage()
			os.Exit(2)
		}
		data, err := os.ReadFile(lf.patterns)
		if err != nil {
			fatalf("reading patterns file: %v", err)
		}
		var pf patternsFile
		if err := yaml.Unmarshal(data, &pf); err != nil {
			fatalf("parsing patterns file: %v", err)
		}
		p, ok := pf.Patterns[lf.name]
		if !ok {
			fatalf("pattern %q not found in %s", lf.name, lf.patterns)
		}
		pattern = p
	}

	loc, err := time.LoadLocation(lf.zone)
	if err != nil {
		fatalf("loading zone %q: %v", lf.zone, err)
	}
	zone := gotime.NewZone(loc)

	c, err := codec.Pattern(pattern, zone)
	if err != nil {
		fatalf("compiling pattern: %v", err)
	}
	return c, zone
}

func printCmd(args []string) {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	var lf layoutFlags
	lf.register(fs)
	_ = fs.Parse(args)
	c, _ := lf.resolve(fs)

	ctx := context.Background()
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339Nano, line)
		if err != nil {
			fatalf("parsing instant %q: %v", line, err)
		}
		out, err := c.Encode(ctx, t)
		if err != nil {
			fatalf("printing %q: %v", line, err)
		}
		fmt.Println(out)
	}
	if err := sc.Err(); err != nil {
		fatalf("reading stdin: %v", err)
	}
}

// parseResult is one JSON output record of the parse subcommand.
type parseResult struct {
	Input string `json:"input"`
	Time  string `json:"time,omitempty"`
	Error string `json:"error,omitempty"`
}

func parseCmd(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	var lf layoutFlags
	lf.register(fs)
	_ = fs.Parse(args)
	c, _ := lf.resolve(fs)

	ctx := context.Background()
	enc := json.NewEncoder(os.Stdout)
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		res := parseResult{Input: line}
		if t, err := c.Decode(ctx, line); err != nil {
			res.Error = err.Error()
		} else {
			res.Time = t.Format(time.RFC3339Nano)
		}
		if err := enc.Encode(res); err != nil {
			fatalf("writing output: %v", err)
		}
	}
	if err := sc.Err(); err != nil {
		fatalf("reading stdin: %v", err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "chronofmt: "+format+"\n", a...)
	os.Exit(1)
}
