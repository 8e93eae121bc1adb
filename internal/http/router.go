package http

import (
	"net/http"
)

type RouterConfig struct {
	Auth       *AuthHandler
	EventTypes *EventTypeHandler
	Meetings   *MeetingHandler
	Sessions   SessionValidator
	Metrics    http.Handler
	Middleware []func(http.Handler) http.Handler
}

// NewRouter assembles the API surface. Routes that mutate the registry or
// expose derived meetings require a valid session; event type listing and
// sign-in do not.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	var requireSession func(http.Handler) http.Handler
	if cfg.Sessions != nil {
		requireSession = RequireSession(cfg.Sessions, nil)
	} else {
		requireSession = func(next http.Handler) http.Handler { return next }
	}

	if cfg.Auth != nil {
		mux.HandleFunc("/api/auth/signin", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				routeNotFound(w, r)
				return
			}
			cfg.Auth.SignIn(w, r)
		})
		mux.HandleFunc("/api/auth/signout", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				routeNotFound(w, r)
				return
			}
			cfg.Auth.SignOut(w, r)
		})
		mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				routeNotFound(w, r)
				return
			}
			cfg.Auth.Me(w, r)
		})
	}

	if cfg.EventTypes != nil {
		createEventType := requireSession(http.HandlerFunc(cfg.EventTypes.Create))
		mux.HandleFunc("/api/event-types", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.EventTypes.List(w, r)
			case http.MethodPost:
				createEventType.ServeHTTP(w, r)
			default:
				routeNotFound(w, r)
			}
		})
	}

	if cfg.Meetings != nil {
		listMeetings := requireSession(http.HandlerFunc(cfg.Meetings.List))
		mux.HandleFunc("/api/meetings", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				routeNotFound(w, r)
				return
			}
			listMeetings.ServeHTTP(w, r)
		})
	}

	if cfg.Metrics != nil {
		mux.Handle("/metrics", cfg.Metrics)
	}

	mux.HandleFunc("/", routeNotFound)

	var handler http.Handler = mux
	if len(cfg.Middleware) > 0 {
		for i := len(cfg.Middleware) - 1; i >= 0; i-- {
			if cfg.Middleware[i] != nil {
				handler = cfg.Middleware[i](handler)
			}
		}
	}

	return handler
}

// routeNotFound mirrors the JSON shape browsers already expect from the API
// for unmatched routes and unsupported methods alike.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)

	payload := errorResponse{
		Error:  "Route not found",
		Path:   r.URL.Path,
		Method: r.Method,
	}
	writeRawJSON(w, payload)
}
