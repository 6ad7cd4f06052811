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

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TFMV/DeliveryLine/internal/batch"
	"github.com/TFMV/DeliveryLine/pkg/db"
	"github.com/TFMV/DeliveryLine/pkg/utils"
	"github.com/TFMV/DeliveryLine/standardizer"
)

// MaxBatchLines caps the lines accepted by one batch parse request.
const MaxBatchLines = 1000

// RunStore is the storage behind the run endpoints.
type RunStore interface {
	batch.Store
	CreateNewRun(ctx context.Context, description string) (int, error)
	InsertLines(ctx context.Context, runID int, lines []batch.Line) error
	RunResults(ctx context.Context, runID, limit int) ([]batch.Result, error)
}

// ParseRequest is the body of POST /parse.
type ParseRequest struct {
	Line string `json:"line" binding:"required"`
}

// BatchParseRequest is the body of POST /parse/batch.
type BatchParseRequest struct {
	Lines []string `json:"lines" binding:"required,min=1,max=1000"`
}

// NormalizeRequest is the body of POST /normalize. A zero capacity uses the
// configured default.
type NormalizeRequest struct {
	Line     string `json:"line" binding:"required"`
	Capacity int    `json:"capacity" binding:"min=0"`
}

// ParseResponse is one parsed line.
type ParseResponse struct {
	Input      string                     `json:"input"`
	Shape      string                     `json:"shape"`
	Parsed     standardizer.ParsedAddress `json:"parsed"`
	Normalized string                     `json:"normalized"`
}

// Handler serves the parser over HTTP.
type Handler struct {
	std      *standardizer.Standardizer
	capacity int
	batch    batch.Options
	runs     RunStore
	logger   *utils.Logger
}

// NewHandler returns a Handler. runs may be nil, in which case the run
// endpoints answer 503.
func NewHandler(std *standardizer.Standardizer, capacity int, opts batch.Options, runs RunStore, logger *utils.Logger) *Handler {
	if std == nil {
		std = standardizer.New(nil)
	}
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	if opts.Capacity == 0 {
		opts.Capacity = capacity
	}
	return &Handler{std: std, capacity: capacity, batch: opts, runs: runs, logger: logger}
}

func (h *Handler) parseOne(line string) ParseResponse {
	a := h.std.Parse(line)
	return ParseResponse{
		Input:      line,
		Shape:      a.Shape().String(),
		Parsed:     a,
		Normalized: h.std.Normalize(line, h.capacity),
	}
}

// Parse handles POST /parse.
func (h *Handler) Parse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c.Writer, http.StatusBadRequest, err)
		return
	}
	utils.SendJSON(c.Writer, http.StatusOK, "", h.parseOne(req.Line))
}

// ParseBatch handles POST /parse/batch.
func (h *Handler) ParseBatch(c *gin.Context) {
	var req BatchParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c.Writer, http.StatusBadRequest, err)
		return
	}

	results := make([]ParseResponse, len(req.Lines))
	for i, line := range req.Lines {
		results[i] = h.parseOne(line)
	}
	utils.SendJSON(c.Writer, http.StatusOK, fmt.Sprintf("Parsed %d lines", len(results)), results)
}

// Normalize handles POST /normalize.
func (h *Handler) Normalize(c *gin.Context) {
	var req NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c.Writer, http.StatusBadRequest, err)
		return
	}
	capacity := req.Capacity
	if capacity == 0 {
		capacity = h.capacity
	}
	utils.SendJSON(c.Writer, http.StatusOK, "", gin.H{
		"input":      req.Line,
		"normalized": h.std.Normalize(req.Line, capacity),
	})
}

// LookupStreetType handles GET /lookup/street-type/:alias.
func (h *Handler) LookupStreetType(c *gin.Context) {
	alias := c.Param("alias")
	e, ok := h.std.Lookup().StreetType(alias)
	if !ok {
		utils.SendError(c.Writer, http.StatusNotFound, fmt.Errorf("unknown street type %q", alias))
		return
	}
	utils.SendJSON(c.Writer, http.StatusOK, "", e)
}

// LookupUnitType handles GET /lookup/unit-type/:alias.
func (h *Handler) LookupUnitType(c *gin.Context) {
	alias := c.Param("alias")
	e, ok := h.std.Lookup().UnitType(alias)
	if !ok {
		utils.SendError(c.Writer, http.StatusNotFound, fmt.Errorf("unknown unit type %q", alias))
		return
	}
	utils.SendJSON(c.Writer, http.StatusOK, "", e)
}

var errNoDatabase = errors.New("runs need a database connection")

// CreateRun handles POST /runs: a multipart line_id,street CSV is stored
// as a new run and parsed.
func (h *Handler) CreateRun(c *gin.Context) {
	if h.runs == nil {
		utils.SendError(c.Writer, http.StatusServiceUnavailable, errNoDatabase)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.SendError(c.Writer, http.StatusBadRequest, err)
		return
	}
	f, err := file.Open()
	if err != nil {
		utils.SendError(c.Writer, http.StatusInternalServerError, err)
		return
	}
	defer f.Close()

	src, err := db.NewCsvSource(f)
	if err != nil {
		utils.SendError(c.Writer, http.StatusBadRequest, err)
		return
	}
	var lines []batch.Line
	for src.Next() {
		values, _ := src.Values()
		lines = append(lines, batch.Line{ID: values[0].(int64), Street: values[1].(string)})
	}
	if err := src.Err(); err != nil {
		utils.SendError(c.Writer, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	runID, err := h.runs.CreateNewRun(ctx, c.DefaultPostForm("description", "Upload "+file.Filename))
	if err != nil {
		c.Error(err)
		utils.SendError(c.Writer, http.StatusInternalServerError, err)
		return
	}
	if err := h.runs.InsertLines(ctx, runID, lines); err != nil {
		c.Error(err)
		utils.SendError(c.Writer, http.StatusInternalServerError, err)
		return
	}

	summary, err := batch.ProcessStreetLines(ctx, h.runs, h.std, h.batch, runID, h.logger)
	if err != nil {
		c.Error(err)
		utils.SendError(c.Writer, http.StatusInternalServerError, err)
		return
	}
	utils.SendJSON(c.Writer, http.StatusCreated, fmt.Sprintf("Run %d parsed", runID), gin.H{
		"run_id":  runID,
		"summary": summary,
	})
}

// RunResults handles GET /runs/:id/results.
func (h *Handler) RunResults(c *gin.Context) {
	if h.runs == nil {
		utils.SendError(c.Writer, http.StatusServiceUnavailable, errNoDatabase)
		return
	}

	runID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendError(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid run id %q", c.Param("id")))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 || limit > MaxBatchLines {
		utils.SendError(c.Writer, http.StatusBadRequest, fmt.Errorf("limit must be between 1 and %d", MaxBatchLines))
		return
	}

	results, err := h.runs.RunResults(c.Request.Context(), runID, limit)
	if err != nil {
		c.Error(err)
		utils.SendError(c.Writer, http.StatusInternalServerError, err)
		return
	}
	utils.SendJSON(c.Writer, http.StatusOK, "", gin.H{
		"run_id":  runID,
		"results": results,
		"summary": batch.Summarize(results),
	})
}

// HealthCheckHandler handles health check requests
func HealthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		zuluTime := time.Now().UTC().Format(time.RFC3339)
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"zuluTime": zuluTime,
		})
	}
}
