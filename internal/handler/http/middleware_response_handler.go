// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// intercepts WriteHeader and Write calls to capture the status code and the
// body size for logging and metrics.
//
// WriteHeader is forwarded to the underlying writer exactly once; subsequent
// calls are ignored, mirroring the [http.ResponseWriter] contract.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until WriteHeader (or an implicit one via Write) runs.
	status      int
	wroteHeader bool

	// size is the running total of body bytes written.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implicitly sends a 200 header when none was written yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// statusCode reports the written status, treating "nothing written" as 200
// the way net/http does.
func (w *responseWriter) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// wrapResponseWriter reuses w when an outer middleware already wrapped it.
func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{ResponseWriter: w}
}
