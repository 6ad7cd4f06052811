// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TFMV/DeliveryLine/internal/batch"
	"github.com/TFMV/DeliveryLine/pkg/api"
	"github.com/TFMV/DeliveryLine/pkg/config"
	"github.com/TFMV/DeliveryLine/pkg/db"
	"github.com/TFMV/DeliveryLine/pkg/lookup"
	"github.com/TFMV/DeliveryLine/pkg/utils"
	"github.com/TFMV/DeliveryLine/standardizer"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML config (defaults to $CONFIG_PATH)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Resolve(*configPath)
	if err != nil {
		utils.NewLogger("server").Fatal("Failed to load config: %v", err)
	}

	logger, err := utils.New("server", utils.LogOptions{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		utils.NewLogger("server").Fatal("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Build the tables before serving so no request pays for it
	svc := lookup.Default()
	logger.Info("Loaded %d street types and %d unit types", svc.StreetTypeCount(), svc.UnitTypeCount())

	// Create the database connection pool; without it only the run endpoints are off
	var runs api.RunStore
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	pool, err := db.NewConnection(connectCtx, cfg.DBCreds)
	cancel()
	if err != nil {
		logger.Warn("Database unavailable, run endpoints disabled: %v", err)
	} else {
		defer pool.Close()
		tables := db.TablesFromConfig(cfg)
		if err := db.EnsureSchema(ctx, pool, tables); err != nil {
			logger.Fatal("Failed to create schema: %v", err)
		}
		runs = batch.NewPGStore(pool, tables)
		logger.Info("Database connection pool created successfully")
	}

	// Set up the HTTP server
	h := api.NewHandler(
		standardizer.New(svc),
		cfg.Normalizer.Capacity,
		batch.Options{Workers: cfg.Batch.Workers, BatchSize: cfg.Batch.BatchSize, Capacity: cfg.Normalizer.Capacity},
		runs,
		logger,
	)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           api.NewRouter(cfg.Server.Mode, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown failed: %v", err)
		}
	}()

	logger.Info("Starting server on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server failed: %v", err)
	}
	logger.Info("Server stopped")
}
