// Package main is a command line tool for nostr keys: generate a new pair,
// convert a key between its hex and bech32 encodings, and mine vanity npubs
// with a chosen prefix/infix/suffix string.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"go-simpler.org/env"
	"go.uber.org/atomic"

	"github.com/AdamuAbba/nostr/bech32encoding"
	"github.com/AdamuAbba/nostr/chk"
	"github.com/AdamuAbba/nostr/keys"
	"github.com/AdamuAbba/nostr/lol"
	"github.com/AdamuAbba/nostr/log"
)

// bech32 data charset, the only ciphers that can appear in a vanity string.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const (
	PositionBeginning = iota
	PositionContains
	PositionEnding
)

type GenCmd struct{}

type ConvertCmd struct {
	Key string `arg:"positional,required" help:"a key in hex, nsec or npub form"`
}

type VanityCmd struct {
	String   string `arg:"positional,required" help:"the string you want to appear in the npub"`
	Position string `arg:"positional" default:"end" help:"[begin|contain|end] default: end"`
	Threads  int    `help:"number of threads to mine with - defaults to using all CPU threads available"`
}

var args struct {
	Gen     *GenCmd     `arg:"subcommand:gen" help:"generate a new key pair"`
	Convert *ConvertCmd `arg:"subcommand:convert" help:"print all encodings of a key"`
	Vanity  *VanityCmd  `arg:"subcommand:vanity" help:"mine an npub containing a string"`
}

type Config struct {
	LogLevel string `env:"LOG_LEVEL" default:"info" usage:"off|fatal|error|warn|info|debug|trace"`
}

func main() {
	cfg := &Config{}
	if err := env.Load(cfg, nil); chk.E(err) {
		os.Exit(1)
	}
	lol.SetLogLevel(cfg.LogLevel)
	p := arg.MustParse(&args)
	var err error
	switch {
	case args.Gen != nil:
		err = Gen()
	case args.Convert != nil:
		err = Convert(args.Convert.Key)
	case args.Vanity != nil:
		err = Vanity(args.Vanity.String, args.Vanity.Position,
			args.Vanity.Threads)
	default:
		p.WriteHelp(os.Stderr)
		os.Exit(0)
	}
	if err != nil {
		log.F.F("error: %s", err)
		os.Exit(1)
	}
}

// Gen generates a new key pair and prints every encoding of it.
func Gen() (err error) {
	var k *keys.Keys
	if k, err = keys.Generate(); chk.E(err) {
		return
	}
	return printKeys(k)
}

// Convert parses a key in any accepted encoding and prints every encoding of
// it. An npub yields only the public forms, since no secret key can be
// recovered from it.
func Convert(input string) (err error) {
	var k *keys.Keys
	if k, err = keys.ParseKeys(input); err != nil {
		if errors.Is(err, keys.ErrPublicKeyOnly) {
			var pub *keys.PublicKey
			if pub, err = keys.ParsePublicKey(input); chk.E(err) {
				return
			}
			return printPublic(pub)
		}
		return
	}
	return printKeys(k)
}

func printKeys(k *keys.Keys) (err error) {
	var nsec string
	if nsec, err = k.Secret().Nsec(); chk.E(err) {
		return
	}
	if err = printPublic(k.Public()); chk.E(err) {
		return
	}
	fmt.Printf("Secret key (hex): %s\n", k.Secret().Hex())
	fmt.Printf("Secret key (bech32): %s\n", nsec)
	return
}

func printPublic(pub *keys.PublicKey) (err error) {
	var npub string
	if npub, err = pub.Npub(); chk.E(err) {
		return
	}
	fmt.Printf("Public key (hex): %s\n", pub.Hex())
	fmt.Printf("Public key (bech32): %s\n", npub)
	return
}

// Vanity mines key pairs until one has an npub with the wanted string at the
// wanted position. Interrupt stops the search.
func Vanity(str, position string, threads int) (err error) {
	for i := range str {
		if !strings.ContainsRune(charset, rune(str[i])) {
			return fmt.Errorf(
				"found invalid character '%c' only ones from '%s' allowed",
				str[i], charset)
		}
	}
	var where int
	canonical := strings.ToLower(position)
	switch {
	case strings.HasPrefix(canonical, "begin"):
		where = PositionBeginning
	case strings.Contains(canonical, "contain"):
		where = PositionContains
	case strings.HasSuffix(canonical, "end"):
		where = PositionEnding
	}
	if threads == 0 {
		threads = runtime.NumCPU()
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	started := time.Now()
	resC := make(chan *keys.Keys, 1)
	counter := atomic.NewInt64(0)
	for i := 0; i < threads; i++ {
		log.D.F("starting up worker %d", i)
		go mine(ctx, str, where, resC, counter)
	}
	tick := time.NewTicker(time.Second * 5)
	defer tick.Stop()
	for {
		select {
		case <-tick.C:
			workingFor := time.Since(started)
			workingFor -= workingFor % time.Second
			fmt.Printf("working for %v, attempts %d\n",
				workingFor, counter.Load())
		case k := <-resC:
			log.I.F("found match in %d attempts over %v",
				counter.Load(), time.Since(started))
			return printKeys(k)
		case <-ctx.Done():
			log.I.Ln("interrupted")
			return nil
		}
	}
}

func mine(ctx context.Context, str string, where int, resC chan *keys.Keys,
	counter *atomic.Int64) {
	prefix := bech32encoding.PubHRP + "1"
	var k *keys.Keys
	var npub string
	var err error
	for ctx.Err() == nil {
		counter.Inc()
		if k, err = keys.Generate(); chk.E(err) {
			return
		}
		if npub, err = k.Public().Npub(); chk.E(err) {
			return
		}
		var found bool
		switch where {
		case PositionBeginning:
			found = strings.HasPrefix(npub, prefix+str)
		case PositionContains:
			found = strings.Contains(npub[len(prefix):], str)
		case PositionEnding:
			found = strings.HasSuffix(npub, str)
		}
		if !found {
			continue
		}
		select {
		case resC <- k:
		case <-ctx.Done():
		}
		return
	}
}
