// Command symspellctl is an interactive REPL over a symspell.SymSpell
// engine: load a dictionary, then correct words or phrases typed at stdin.
// Grounded in the teacher's cmd/main.go loop and
// other_examples/0xEodum-SymSpell__main.go's correctWords/correctSingleWord
// split.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/FanaticPythoner/symspellwhookspy/internal/corrector"
	"github.com/FanaticPythoner/symspellwhookspy/internal/customdict"
	"github.com/FanaticPythoner/symspellwhookspy/internal/dictfile"
	"github.com/FanaticPythoner/symspellwhookspy/internal/logger"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/config"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/options"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/symspell"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.Log.Level)
	log := logger.Default("symspellctl")

	engine := symspell.NewSymSpell(
		options.WithMaxDictionaryEditDistance(cfg.Engine.MaxDictionaryEditDistance),
		options.WithPrefixLength(cfg.Engine.PrefixLength),
		options.WithCountThreshold(cfg.Engine.CountThreshold),
	)

	log.Infof("loading dictionary from %s", cfg.Engine.DictionaryPath)
	n, err := dictfile.Load(engine, cfg.Engine.DictionaryPath, dictfile.DefaultOptions)
	if err != nil {
		log.Fatalf("loading dictionary: %v", err)
	}
	log.Infof("loaded %d dictionary entries", n)

	var dict *customdict.CustomDict
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		dict = customdict.New(client)
	}

	sc, err := corrector.NewSpellCorrector(engine, dict, corrector.DefaultConfig)
	if err != nil {
		log.Fatalf("init corrector: %v", err)
	}

	fmt.Println("Type a word or phrase to correct. Enter 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "quit") {
			break
		}

		result := sc.CorrectText(input)
		fmt.Printf("original:  %s\n", result.Original)
		fmt.Printf("corrected: %s\n", result.Corrected)
		for _, info := range result.Suggestions {
			if len(info.Suggestions) > 0 {
				fmt.Printf("  %s -> %s\n", info.Token, strings.Join(info.Suggestions, ", "))
			}
		}
		fmt.Println("---")
	}
	if err := scanner.Err(); err != nil {
		log.Errorf("reading stdin: %v", err)
	}
}
