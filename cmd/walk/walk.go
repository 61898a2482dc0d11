// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package walk implements the walk command, which lists and hashes the files below a directory.
package walk

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/prelude/bench"
	"github.com/matt-FFFFFF/prelude/cmd/cmdstate"
	"github.com/matt-FFFFFF/prelude/logging"
	"github.com/matt-FFFFFF/prelude/parallel"
	fswalk "github.com/matt-FFFFFF/prelude/walk"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	dirArg          = "dir"
	depthFlag       = "depth"
	hiddenFlag      = "hidden"
	patternFlag     = "pattern"
	parallelismFlag = "parallelism"
	sampleFlag      = "sample"
	seedFlag        = "seed"
	cliExitStr      = ""
	module          = "github.com/matt-FFFFFF/prelude/cmd/walk"
)

var (
	// ErrHashFile is returned when a file cannot be hashed.
	ErrHashFile = errors.New("failed to hash file")
	// ErrWriteOutput is returned when the listing cannot be written.
	ErrWriteOutput = errors.New("failed to write output")
)

// New returns the walk command.
func New() *cli.Command {
	return &cli.Command{
		Name:  "walk",
		Usage: "List the files below a directory with their SHA-256 digests",
		Description: `Walk a directory, optionally sample some of its files at random, and hash them in parallel.
Each file is printed as "<sha256>  <path>", followed by a summary line.
Hidden files and directories are skipped unless --hidden is given.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:  dirArg,
				Value: ".",
			},
		},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  depthFlag,
				Usage: "Maximum depth to descend, 1 lists only the top-level files. 0 means no limit.",
				Value: 0,
			},
			&cli.BoolFlag{
				Name:        hiddenFlag,
				Usage:       "Include files and directories whose names start with a dot",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.StringFlag{
				Name:     patternFlag,
				Usage:    "Only include files whose base name matches this glob, e.g. '*.go'",
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:    parallelismFlag,
				Aliases: []string{"p"},
				Usage: "Set the maximum number of files hashed concurrently. " +
					"Defaults to the number of CPU cores available.",
				Value: 0,
			},
			&cli.IntFlag{
				Name:  sampleFlag,
				Usage: "Hash only this many files, picked at random. 0 hashes every file.",
				Value: 0,
			},
			&cli.IntFlag{
				Name:  seedFlag,
				Usage: "Seed for --sample. A random seed is used when unset.",
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := logging.For(module).With("command", cmd.Name)
	ctx = logging.New(ctx, logger)

	dir := cmd.StringArg(dirArg)
	if dir == "" {
		dir = "."
	}

	fs := cmdstate.FsFactory()
	opts := []fswalk.Option{
		fswalk.WithMaxDepth(cmd.Int(depthFlag)),
		fswalk.WithPattern(cmd.String(patternFlag)),
		fswalk.WithHidden(fswalk.IncludeHidden(cmd.Bool(hiddenFlag))),
	}

	logger.Log(ctx, logging.LevelTrace, "walking", "dir", dir, "depth", cmd.Int(depthFlag))

	entries, err := bench.BenchmarkErr(ctx, bench.Msgf("walked %s", dir), func() ([]fswalk.Entry, error) {
		return fswalk.Files(ctx, fs, dir, opts...)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to walk %s: %s", dir, err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	if n := cmd.Int(sampleFlag); n > 0 {
		seed := rand.Uint64()
		if cmd.IsSet(seedFlag) {
			seed = uint64(cmd.Int(seedFlag))
		}

		logger.Debug("sampling files", "sample", n, "of", len(entries), "seed", seed)
		entries = sample(entries, n, seed)
	}

	digests, err := bench.BenchmarkErr(ctx, bench.Msgf("hashed %d files", len(entries)), func() ([]string, error) {
		return parallel.Map(ctx, entries, cmd.Int(parallelismFlag), func(ctx context.Context, e fswalk.Entry) (string, error) {
			logging.Trace(ctx, "hashing", "path", e.Path)
			return hashFile(fs, filepath.Join(dir, filepath.FromSlash(e.Path)))
		})
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to hash files in %s: %s", dir, err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	if err := writeListing(cmd.Root().Writer, entries, digests); err != nil {
		return err
	}

	return nil
}

func writeListing(w io.Writer, entries []fswalk.Entry, digests []string) error {
	var total int64

	sb := strings.Builder{}

	for i, e := range entries {
		total += e.Size

		sb.WriteString(digests[i])
		sb.WriteString("  ")
		sb.WriteString(e.Path)
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "files=%d bytes=%d\n", len(entries), total)

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	return nil
}

// sample returns n entries picked by a seeded shuffle, in path order.
func sample(entries []fswalk.Entry, n int, seed uint64) []fswalk.Entry {
	if n >= len(entries) {
		return entries
	}

	picked := slices.Clone(entries)
	r := rand.New(rand.NewPCG(seed, seed))
	r.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	picked = picked[:n]
	slices.SortFunc(picked, func(a, b fswalk.Entry) int {
		return strings.Compare(a.Path, b.Path)
	})

	return picked
}

func hashFile(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", errors.Join(ErrHashFile, err)
	}
	defer f.Close() //nolint:errcheck

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Join(ErrHashFile, fmt.Errorf("%s: %w", path, err))
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
