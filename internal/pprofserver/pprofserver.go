package pprofserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
)

func Handle(mux *http.ServeMux) {
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
}

func newServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	Handle(mux)
	return mux
}

// Launch a standard pprof server at ipv6 loopback address ::1 and given port
// so that it is not open to the world.
func Launch(port string, logger *slog.Logger) {
	go func() {
		addr := fmt.Sprintf("[::1]%s", port)
		logger.Info("starting pprof server", "addr", addr)
		server := &http.Server{
			Addr:    addr,
			Handler: newServeMux(),
		}
		if err := server.ListenAndServe(); err != nil {
			logger.Error("pprof server failed", "error", err)
		}
	}()
}
