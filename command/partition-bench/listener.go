// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// time allowed for in-flight scrapes when stopping
const shutdownTimeout = 2 * time.Second

// serves /metrics until shutdown
type metricsListener struct {
	log      *logger.L
	listen   string
	gatherer prometheus.Gatherer
}

func (m *metricsListener) Run(args interface{}, shutdown <-chan struct{}) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:    m.listen,
		Handler: mux,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		m.log.Warnf("metrics listener on: %s", m.listen)
		err := server.ListenAndServe()
		if http.ErrServerClosed != err {
			m.log.Criticalf("metrics listener error: %s", err)
		}
	}()

	select {
	case <-shutdown:
	case <-done:
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); nil != err {
		m.log.Errorf("metrics listener shutdown error: %s", err)
	}
	<-done
}
