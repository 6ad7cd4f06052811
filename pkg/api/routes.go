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

import "github.com/gin-gonic/gin"

// SetupRoutes registers the middleware and every endpoint on router.
func SetupRoutes(router *gin.Engine, h *Handler) {
	router.Use(RequestID(), RequestLogger(h.logger), ErrorHandler(h.logger))

	router.GET("/health", HealthCheckHandler())

	jsonBody := router.Group("/", RequestValidator())
	jsonBody.POST("/parse", h.Parse)
	jsonBody.POST("/parse/batch", h.ParseBatch)
	jsonBody.POST("/normalize", h.Normalize)

	lookup := router.Group("/lookup")
	lookup.GET("/street-type/:alias", h.LookupStreetType)
	lookup.GET("/unit-type/:alias", h.LookupUnitType)

	runs := router.Group("/runs")
	runs.POST("", h.CreateRun)
	runs.GET("/:id/results", h.RunResults)
}

// NewRouter returns a gin engine in mode with every route registered.
func NewRouter(mode string, h *Handler) *gin.Engine {
	gin.SetMode(mode)
	router := gin.New()
	router.Use(gin.Recovery())
	SetupRoutes(router, h)
	return router
}

