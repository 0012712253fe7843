package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	apperrors "github.com/jurnee/guidebook/internal/errors"
	"github.com/jurnee/guidebook/pkg/utils"
)

// Recovery is a middleware that recovers from panics
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v\n%s", err, debug.Stack())
				utils.Error(w, apperrors.InternalError("an unexpected error occurred"))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
