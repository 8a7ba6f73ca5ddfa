// SPDX-License-Identifier: MIT
package uir

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/uir/lexer"
	"gitlab.com/fisherprime/uir/types"
)

type (
	// BatchConfig defines configuration options for TokenizeBlocks.
	BatchConfig struct {
		Logger   logrus.FieldLogger
		Lexer    []lexer.Option
		PoolSize int
		Debug    bool
	}

	// BatchOption defines the BatchConfig functional option type.
	BatchOption func(*BatchConfig)
)

// Batch errors.
var (
	ErrBatch    = errors.New("failed to tokenize blocks")
	ErrPanicked = errors.New("recovery from panic")
)

// WithPoolSize configures the number of concurrent scans.
func WithPoolSize(size int) BatchOption { return func(c *BatchConfig) { c.PoolSize = size } }

// WithLexerOptions configures the Scanner of every block.
func WithLexerOptions(opts ...lexer.Option) BatchOption {
	return func(c *BatchConfig) { c.Lexer = append(c.Lexer, opts...) }
}

// WithBatchLogger configures the logger option.
func WithBatchLogger(logger logrus.FieldLogger) BatchOption {
	return func(c *BatchConfig) { c.Logger = logger }
}

// WithBatchDebug configures the debug option.
func WithBatchDebug(debug bool) BatchOption { return func(c *BatchConfig) { c.Debug = debug } }

// TokenizeBlocks tokenizes independent source blocks concurrently.
//
// The result holds the Tokens of each block at the block's index.
func TokenizeBlocks(ctx context.Context, blocks []string, options ...BatchOption) (results [][]lexer.Token, err error) {
	cfg := &BatchConfig{PoolSize: runtime.GOMAXPROCS(0)}
	for _, opt := range options {
		opt(cfg)
	}
	if cfg.PoolSize < 1 {
		cfg.PoolSize = runtime.GOMAXPROCS(0)
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrBatch, err)
		}
	}()

	if err = ctx.Err(); err != nil {
		return
	}
	if len(blocks) < 1 {
		results = [][]lexer.Token{}
		return
	}

	done := make(chan struct{}, len(blocks))
	errChan := make(chan error, len(blocks))

	pool, err := ants.NewPool(cfg.PoolSize,
		ants.WithLogger(cfg.Logger),
		ants.WithPanicHandler(func(r interface{}) { errChan <- fmt.Errorf("%w: %v", ErrPanicked, r) }),
	)
	if err != nil {
		return
	}
	defer pool.Release()

	// Workers write to out, only returned on success.
	out := make([][]lexer.Token, len(blocks))

	submitted := 0
	for index := range blocks {
		if err = ctx.Err(); err != nil {
			break
		}

		index := index
		if err = pool.Submit(func() {
			out[index] = lexer.New(blocks[index], cfg.Lexer...).Tokens()
			done <- struct{}{}
		}); err != nil {
			break
		}
		submitted++
	}

	if submitted > 0 {
		if monitorErr := types.MonitorChannels(ctx, submitted, done, errChan, "block"); monitorErr != nil && err == nil {
			err = monitorErr
		}
	}
	if err != nil {
		if cfg.Debug {
			cfg.Logger.Debugf("submitted %d of blocks: %s", submitted, spew.Sdump(blocks))
		}
		return
	}

	results = out

	return
}
