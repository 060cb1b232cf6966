package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signUp", h.signUp)
		r.Post("/login", h.login)
		r.Post("/googlelogin", h.googleLogin)
		r.Post("/checkUser", h.checkUser)

		r.Post("/forgetpassword", h.forgetPassword)
		r.Post("/otpvalidation", h.otpValidation)
		r.Post("/changepassword", h.changePassword)

		r.Get("/auth/google", h.googleAuthStart)
		r.Get("/auth/google/callback", h.googleAuthCallback)

		r.Get("/profile/{id}", h.getProfile)
		r.Get("/profiles", h.getAllProfiles)
		r.Get("/user/{id}/followers", h.followers)
		r.Get("/user/{id}/following", h.following)
	})

	// routes behind the bearer gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/user", h.updateProfile)
		r.Post("/user/{id}/follow", h.follow)
		r.Post("/user/{id}/unfollow", h.unfollow)

		r.Post("/post", h.createPost)
		r.Get("/post/{id}", h.getPost)
		r.Put("/post/{id}", h.updatePost)
		r.Delete("/post/{id}", h.deletePost)
		r.Put("/post/{id}/like", h.toggleLike)
		r.Get("/post/timeline/{id}", h.timeline)
	})

	return router
}
