package middleware

import "net/http"

type CORSMiddleware struct {
	allowedOrigin string
}

func NewCORSMiddleware(allowedOrigin string) *CORSMiddleware {
	return &CORSMiddleware{
		allowedOrigin: allowedOrigin,
	}
}

func (m *CORSMiddleware) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", m.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
