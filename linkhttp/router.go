// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package linkhttp serves read-only diagnostics for a link registry.
package linkhttp

import (
	"errors"
	"net/http"

	"code.hybscloud.com/link"
	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

// NewRouter returns a chi router exposing the links of reg:
//
//	GET /links       all links, ordered by id
//	GET /links/{id}  one link, 404 if unknown
func NewRouter(reg *link.Registry) http.Handler {
	router := chi.NewRouter()
	router.Use(accessLog(reg.Logger()))
	router.Get("/links", listHandler(reg))
	router.Get("/links/{id}", getHandler(reg))
	return router
}

func listHandler(reg *link.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := reg.All()
		states := make([]LinkState, 0, len(all))
		for _, l := range all {
			states = append(states, stateOf(l))
		}
		render.JSON(w, r, states)
	}
}

func getHandler(reg *link.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := reg.Lookup(chi.URLParam(r, "id"))
		if errors.Is(err, link.ErrUnknownLink) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, &ErrorResponse{
				ErrorType:    unknownLinkErrorType,
				ErrorMessage: err.Error(),
			})
			return
		}
		render.JSON(w, r, stateOf(l))
	}
}

func accessLog(log *logrus.Entry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.WithFields(logrus.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			}).Debug("diagnostics request")
			next.ServeHTTP(w, r)
		})
	}
}
