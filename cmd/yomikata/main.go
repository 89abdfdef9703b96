package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/k0kubun/pp"
	"github.com/rs/zerolog"
	"github.com/tidwall/pretty"

	"github.com/tassa-yoniso-manasi-karoto/yomikata"
)

type config struct {
	DataDir string        `env:"YOMIKATA_DATA_DIR" env-description:"directory holding the dictionary assets"`
	Debug   bool          `env:"YOMIKATA_DEBUG" env-default:"false"`
	Timeout time.Duration `env:"YOMIKATA_LOAD_TIMEOUT" env-default:"30s"`
}

func main() {
	jsonOut := flag.Bool("json", false, "print entries as prettified JSON")
	dump := flag.Bool("dump", false, "dump the full result struct")
	flag.Parse()

	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read environment: %v\n", err)
		os.Exit(1)
	}

	if cfg.Debug {
		yomikata.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			With().Timestamp().Logger()
	}

	query := strings.Join(flag.Args(), "")
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: yomikata [-json|-dump] TEXT")
		os.Exit(2)
	}

	provider := yomikata.DefaultDirProvider()
	if cfg.DataDir != "" {
		provider = yomikata.DirProvider{Dir: cfg.DataDir}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	dicts, err := yomikata.Load(ctx, provider)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	result := dicts.Search(query)

	switch {
	case *dump:
		pp.Println(result)
	case *jsonOut:
		b, err := json.Marshal(result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to marshal result: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(pretty.Pretty(b))
	default:
		printResult(query, result)
	}
}

func printResult(query string, result yomikata.SearchResult) {
	matched := string([]rune(query)[:result.SelectedTextLength])
	color.Bold.Printf("%s", matched)
	if rest := strings.TrimPrefix(query, matched); rest != "" {
		color.Gray.Printf("%s", rest)
	}
	fmt.Printf("  (%d entries)\n", len(result.Entries))

	for _, e := range result.Entries {
		color.Cyan.Printf("%s", e.Headword)
		if e.Reading != "" {
			color.Yellow.Printf(" [%s]", e.Reading)
		}
		for _, a := range e.PitchAccents {
			color.Magenta.Printf(" [%d]", a)
		}
		fmt.Printf("  %s\n", strings.Join(e.Glosses, "; "))
	}
}
