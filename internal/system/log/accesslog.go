/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package log

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/asgardeo/portfolio/internal/system/constants"
)

const clfTimeLayout = "02/Jan/2006:15:04:05 -0700"

// AccessLogHandler writes one Apache Common Log Format line per request. The request id, the
// latency and, for cached endpoints, the X-Cache status are attached as fields.
func AccessLogHandler(logger *Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &responseRecorder{ResponseWriter: w}
		start := time.Now()
		next.ServeHTTP(rec, r)
		latency := time.Since(start)

		fields := []Field{
			String(LoggerKeyRequestID, r.Header.Get(constants.RequestIDHeaderName)),
			Duration("latency", latency),
		}
		if cacheStatus := rec.Header().Get(constants.CacheStatusHeaderName); cacheStatus != "" {
			fields = append(fields, String("cache", cacheStatus))
		}

		logger.Info(commonLogLine(r, rec.Status(), rec.size, start), fields...)
	})
}

// commonLogLine formats the request as `host - - [time] "METHOD uri proto" status size`.
// An empty body is reported as "-".
func commonLogLine(r *http.Request, status, size int, at time.Time) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		host = r.RemoteAddr
	}
	bytesSent := "-"
	if size > 0 {
		bytesSent = strconv.Itoa(size)
	}

	return host + " - - [" + at.Format(clfTimeLayout) + `] "` + r.Method + " " + r.RequestURI + " " +
		r.Proto + `" ` + strconv.Itoa(status) + " " + bytesSent
}

// responseRecorder records the status code and the number of body bytes written.
type responseRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

// Status returns the recorded status. A handler that never called WriteHeader answered 200.
func (rec *responseRecorder) Status() int {
	if rec.status == 0 {
		return http.StatusOK
	}
	return rec.status
}

func (rec *responseRecorder) WriteHeader(code int) {
	if rec.status == 0 {
		rec.status = code
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.size += n
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rec *responseRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
